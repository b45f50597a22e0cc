package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/pricing"
)

// GetProducts lists the catalog with search, category filter, sorting, and
// pagination. Response shape: {data, meta}.
func GetProducts(products *mockapi.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := mockapi.ProductQuery{
			Page:     cast.ToInt(c.DefaultQuery("page", "1")),
			Limit:    cast.ToInt(c.DefaultQuery("limit", "10")),
			Search:   c.Query("search"),
			Category: c.Query("category"),
			Sort:     c.DefaultQuery("sort", pricing.SortNewest),
		}

		data, meta := products.List(query)
		c.JSON(http.StatusOK, gin.H{"data": data, "meta": meta})
	}
}

// GetCategories lists catalog categories with product counts.
func GetCategories(products *mockapi.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, products.Categories())
	}
}
