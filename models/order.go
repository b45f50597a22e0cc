package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // Confirmed, being packed
	OrderStatusInTransit  OrderStatus = "in-transit" // Handed to the courier
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping
)

// ParseOrderStatus maps a request string to a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusInTransit):
		return OrderStatusInTransit, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID                string      `json:"id"` // e.g. ORD-2026-004
	UserID            int         `json:"userId,omitempty"`
	CustomerEmail     string      `json:"customerEmail"`
	Date              time.Time   `json:"date"`
	Status            OrderStatus `json:"status"`
	Items             []OrderItem `json:"items"`
	Subtotal          float64     `json:"subtotal"`
	Tax               float64     `json:"tax"`
	DeliveryFee       float64     `json:"deliveryFee"`
	Total             float64     `json:"total"`
	DeliveryAddress   Address     `json:"deliveryAddress"`
	PaymentMethod     string      `json:"paymentMethod"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
}

// OrderItem is the checkout-time snapshot of a cart line.
type OrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}
