package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/store"
)

// Deps carries the repositories and stores the route handlers close over.
type Deps struct {
	Products  *mockapi.ProductRepo
	Orders    *mockapi.OrderRepo
	Users     *mockapi.UserRepo
	Dashboard *mockapi.Dashboard

	Cart     *store.Cart
	Auth     *store.Auth
	Banners  *store.Banners
	Language *store.Language
}

// SetupRoutes is the single entry‐point that wires up Auth, Storefront,
// User, Order, and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// 2️⃣ Public storefront reads
	SetupStorefrontRoutes(r, deps)

	// 3️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, deps)

	// 4️⃣ Order routes
	SetupOrderRoutes(r, deps)

	// 5️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, deps)
}
