package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/models"
	"github.com/polockprog2/FreshMart-sub000/store"
)

// -------- Request Structs --------

type DeliveryAddressInput struct {
	Street string `json:"street" binding:"required"`
	City   string `json:"city" binding:"required"`
	State  string `json:"state" binding:"required"`
	Zip    string `json:"zip" binding:"required"`
}

type PlaceOrderRequest struct {
	DeliveryAddress DeliveryAddressInput `json:"deliveryAddress" binding:"required"`
	PaymentMethod   string               `json:"paymentMethod" binding:"required"` // e.g. "card", "cod"
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Core Logic --------

// PlaceOrder snapshots the cart into a new order: derives totals from the
// current cart state, creates the order through the mock repository, and
// clears the cart. The order total is subtotal + tax + delivery fee by
// construction.
func PlaceOrder(cart *store.Cart, orders *mockapi.OrderRepo, authStore *store.Auth, req PlaceOrderRequest) (models.Order, error) {
	lines := cart.Lines()
	if len(lines) == 0 {
		return models.Order{}, errors.New("cart is empty")
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			Price:     l.Price,
			Image:     l.Image,
		})
	}

	totals := cart.Totals()

	order := models.Order{
		Date:        time.Now(),
		Status:      models.OrderStatusProcessing,
		Items:       items,
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		DeliveryFee: totals.DeliveryFee,
		Total:       totals.GrandTotal,
		DeliveryAddress: models.Address{
			Street: req.DeliveryAddress.Street,
			City:   req.DeliveryAddress.City,
			State:  req.DeliveryAddress.State,
			Zip:    req.DeliveryAddress.Zip,
		},
		PaymentMethod:     req.PaymentMethod,
		EstimatedDelivery: time.Now().Add(72 * time.Hour),
	}

	if user, ok := authStore.Current(); ok {
		order.UserID = user.ID
		order.CustomerEmail = user.Email
	}

	created := orders.Create(order)
	cart.Clear()
	broadcastNewOrder(created)
	return created, nil
}

// -------- Handlers --------

// POST /orders/place
func PlaceOrderHandler(cart *store.Cart, orders *mockapi.OrderRepo, authStore *store.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := PlaceOrder(cart, orders, authStore, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "data": order})
	}
}

// GET /orders
func GetAllOrdersHandler(orders *mockapi.OrderRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := mockapi.OrderQuery{
			Page:   cast.ToInt(c.DefaultQuery("page", "1")),
			Limit:  cast.ToInt(c.DefaultQuery("limit", "10")),
			Status: c.Query("status"),
			Search: c.Query("search"),
		}
		data, meta := orders.List(query)
		c.JSON(http.StatusOK, gin.H{"data": data, "meta": meta})
	}
}

// GET /orders/:orderID
func GetOrderByIDHandler(orders *mockapi.OrderRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		order, err := orders.Get(id)
		if err != nil {
			if errors.Is(err, mockapi.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /user/orders
func GetUserOrdersHandler(orders *mockapi.OrderRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, orders.ByUser(userIDVal.(int)))
	}
}

// PUT /admin/orders/:orderID/status
//
// The acknowledgement carries the new status, but the mock collection keeps
// the old one; a subsequent fetch shows no change.
func UpdateOrderStatusHandler(orders *mockapi.OrderRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := orders.UpdateStatus(orderID, newStatus)
		if err != nil {
			if errors.Is(err, mockapi.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "data": order})
	}
}
