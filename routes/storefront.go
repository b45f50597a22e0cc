package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/polockprog2/FreshMart-sub000/controllers/admin"
	languageControllers "github.com/polockprog2/FreshMart-sub000/controllers/language"
	productcontroller "github.com/polockprog2/FreshMart-sub000/controllers/product"
)

// SetupStorefrontRoutes registers the public browse endpoints.
func SetupStorefrontRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(deps.Products))
	r.GET("/products/:id", productcontroller.GetProductByID(deps.Products))
	r.GET("/categories", productcontroller.GetCategories(deps.Products))

	// ──────────────── Promotions ────────────────
	r.GET("/banners/active", adminController.GetActiveBanners(deps.Banners))

	// ──────────────── Locale ────────────────
	r.GET("/language", languageControllers.GetLanguage(deps.Language))
	r.PUT("/language", languageControllers.SetLanguage(deps.Language))
}
