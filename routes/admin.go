package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/polockprog2/FreshMart-sub000/controllers/admin"
	orderControllers "github.com/polockprog2/FreshMart-sub000/controllers/order"
	productcontroller "github.com/polockprog2/FreshMart-sub000/controllers/product"
	userControllers "github.com/polockprog2/FreshMart-sub000/controllers/user"
	"github.com/polockprog2/FreshMart-sub000/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Dashboard & Users ───────────
		adminGroup.GET("/dashboard", adminController.GetDashboardStats(deps.Dashboard))
		adminGroup.GET("/users", userControllers.GetAllUsers(deps.Users))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.Products))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.Products))
			productAdmin.GET("", productcontroller.GetProducts(deps.Products))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.Products))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.Products))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(deps.Orders))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.Orders))
		}

		// ─────────── Banner Management ───────────
		bannerMgmt := adminGroup.Group("/banner")
		{
			bannerMgmt.GET("/", adminController.GetBanners(deps.Banners))
			bannerMgmt.POST("/", adminController.AddBanner(deps.Banners))
			bannerMgmt.PUT("/:id", adminController.UpdateBanner(deps.Banners))
			bannerMgmt.PUT("/:id/toggle", adminController.ToggleBannerStatus(deps.Banners))
			bannerMgmt.DELETE("/:id", adminController.DeleteBanner(deps.Banners))
		}
	}
}
