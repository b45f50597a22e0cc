package userControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polockprog2/FreshMart-sub000/models"
	"github.com/polockprog2/FreshMart-sub000/store"
)

type AddressInput struct {
	Type      string `json:"type" binding:"required"`
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Zip       string `json:"zip" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}

func (in AddressInput) toModel() models.Address {
	return models.Address{
		Type:      in.Type,
		Street:    in.Street,
		City:      in.City,
		State:     in.State,
		Zip:       in.Zip,
		IsDefault: in.IsDefault,
	}
}

// POST /user/addresses
func AddAddress(authStore *store.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		addr, err := authStore.AddAddress(input.toModel())
		if err != nil {
			mapAddressErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, addr)
	}
}

// PUT /user/addresses/:id
func UpdateAddress(authStore *store.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		addr, err := authStore.UpdateAddress(id, input.toModel())
		if err != nil {
			mapAddressErr(c, err)
			return
		}
		c.JSON(http.StatusOK, addr)
	}
}

// DELETE /user/addresses/:id
func DeleteAddress(authStore *store.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
			return
		}

		if err := authStore.DeleteAddress(id); err != nil {
			mapAddressErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}
