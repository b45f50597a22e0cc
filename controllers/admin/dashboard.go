package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
)

// GET /admin/dashboard
func GetDashboardStats(dashboard *mockapi.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dashboard.Stats())
	}
}
