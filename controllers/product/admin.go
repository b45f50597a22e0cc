package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/models"
)

// Admin product mutations. The mock catalog is fixed: these endpoints
// acknowledge success without changing what later listings return, matching
// the mock layer's documented behavior.

type ProductInput struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Price         float64 `json:"price" binding:"required,gte=0"`
	OriginalPrice float64 `json:"originalPrice"`
	Discount      int     `json:"discount" binding:"gte=0,lte=100"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	InStock       bool    `json:"inStock"`
	Unit          string  `json:"unit"`
}

func (in ProductInput) toModel() models.Product {
	original := in.OriginalPrice
	if original < in.Price {
		original = in.Price
	}
	return models.Product{
		Name:          in.Name,
		Category:      in.Category,
		Price:         in.Price,
		OriginalPrice: original,
		Discount:      in.Discount,
		Image:         in.Image,
		Description:   in.Description,
		InStock:       in.InStock,
		Unit:          in.Unit,
	}
}

// POST /admin/products
func CreateProduct(products *mockapi.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		created := products.Create(input.toModel())
		c.JSON(http.StatusCreated, gin.H{"message": "Product created", "data": created})
	}
}

// PUT /admin/products/:id
func UpdateProduct(products *mockapi.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updated, err := products.Update(id, input.toModel())
		if err != nil {
			if errors.Is(err, mockapi.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated", "data": updated})
	}
}

// DELETE /admin/products/:id
func DeleteProduct(products *mockapi.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if err := products.Delete(id); err != nil {
			if errors.Is(err, mockapi.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
