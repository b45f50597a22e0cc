// Package pricing holds the checkout arithmetic and display helpers. All
// functions are pure; totals are recomputed from current cart state on every
// read rather than cached.
package pricing

import (
	"fmt"
	"math"

	"github.com/polockprog2/FreshMart-sub000/models"
)

const (
	// TaxRate is the flat sales tax applied to the cart subtotal.
	TaxRate = 0.08

	// FreeDeliveryThreshold is the subtotal above which delivery is free.
	FreeDeliveryThreshold = 50.0

	// StandardDeliveryFee applies at or below the free-delivery threshold.
	StandardDeliveryFee = 4.99
)

// FormatPrice renders a price for display, e.g. "$3.99".
func FormatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

// DiscountPercent computes the rounded percent off between the original and
// sale price. Returns 0 when there is no markdown.
func DiscountPercent(original, sale float64) int {
	if original <= 0 || sale >= original {
		return 0
	}
	return int(math.Round((original - sale) / original * 100))
}

// Subtotal sums price × quantity across cart lines.
func Subtotal(lines []models.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

// Tax applies the flat tax rate to a subtotal.
func Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

// DeliveryFee is waived only when the subtotal strictly exceeds the
// free-delivery threshold. A subtotal of exactly 50 still pays the fee.
func DeliveryFee(subtotal float64) float64 {
	if subtotal > FreeDeliveryThreshold {
		return 0
	}
	return StandardDeliveryFee
}

// GrandTotal is subtotal + tax + delivery fee.
func GrandTotal(subtotal float64) float64 {
	return subtotal + Tax(subtotal) + DeliveryFee(subtotal)
}

// ItemCount sums quantities across cart lines.
func ItemCount(lines []models.CartLine) int {
	var n int
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// Totals derives the full pricing summary for a set of cart lines.
func Totals(lines []models.CartLine) models.CartTotals {
	subtotal := Subtotal(lines)
	tax := Tax(subtotal)
	fee := DeliveryFee(subtotal)
	return models.CartTotals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		GrandTotal:  subtotal + tax + fee,
		Count:       ItemCount(lines),
	}
}
