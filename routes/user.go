package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/polockprog2/FreshMart-sub000/controllers/cart"
	orderControllers "github.com/polockprog2/FreshMart-sub000/controllers/order"
	userControllers "github.com/polockprog2/FreshMart-sub000/controllers/user"
	"github.com/polockprog2/FreshMart-sub000/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(deps.Auth))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(deps.Auth)) // PUT /user/

		// ──────────────── Saved Addresses ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.POST("/", userControllers.AddAddress(deps.Auth))         // POST /user/addresses
			addressGroup.PUT("/:id", userControllers.UpdateAddress(deps.Auth))    // PUT /user/addresses/:id
			addressGroup.DELETE("/:id", userControllers.DeleteAddress(deps.Auth)) // DELETE /user/addresses/:id
		}

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(deps.Cart))                             // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(deps.Cart, deps.Products))         // POST /user/cart
			cartGroup.PUT("/", cartControllers.UpdateCartItem(deps.Cart))                      // PUT /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Cart))        // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearCart(deps.Cart))                        // DELETE /user/cart
		}

		// ──────────────── Order History ────────────────
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(deps.Orders)) // GET /user/orders
	}
}
