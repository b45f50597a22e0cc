package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/store"
)

// GET /user
func GetUser(authStore *store.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authStore.Current()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user
func UpdateUser(authStore *store.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input store.ProfileUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := authStore.UpdateProfile(input)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /admin/users
func GetAllUsers(users *mockapi.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, users.All())
	}
}

func mapAddressErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, mockapi.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
