package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/store"
)

type CartItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type QuantityInput struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"` // zero or negative removes the line
}

// GET /user/cart
func GetCart(cart *store.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items":  cart.Lines(),
			"totals": cart.Totals(),
		})
	}
}

// POST /user/cart
func AddCartItem(cart *store.Cart, products *mockapi.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := products.Get(input.ProductID)
		if err != nil {
			if errors.Is(err, mockapi.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cart.Add(product, input.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"items":  cart.Lines(),
			"totals": cart.Totals(),
		})
	}
}

// PUT /user/cart
func UpdateCartItem(cart *store.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart.SetQuantity(input.ProductID, input.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"items":  cart.Lines(),
			"totals": cart.Totals(),
		})
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(cart *store.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := cast.ToInt(c.Param("product_id"))
		if productID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		// Removing an absent line is a no-op, not an error.
		cart.Remove(productID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /user/cart
func ClearCart(cart *store.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
