package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/polockprog2/FreshMart-sub000/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")
	{
		// Create a new order from the current cart
		orders.POST("/place", orderControllers.PlaceOrderHandler(deps.Cart, deps.Orders, deps.Auth))

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(deps.Orders))

		// websocket endpoint for real-time order updates
		orders.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
	}
}
