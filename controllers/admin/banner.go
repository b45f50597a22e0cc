package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/models"
	"github.com/polockprog2/FreshMart-sub000/store"
)

type BannerInput struct {
	Title    string            `json:"title" binding:"required"`
	Subtitle string            `json:"subtitle"`
	ImageURL string            `json:"imageUrl" binding:"required"`
	Link     string            `json:"link"`
	Type     models.BannerType `json:"type" binding:"required,oneof=ad weekly-sale"`
	Priority int               `json:"priority"`
}

// GET /admin/banner
func GetBanners(banners *store.Banners) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, banners.All())
	}
}

// GET /banners/active
func GetActiveBanners(banners *store.Banners) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, banners.Active())
	}
}

// POST /admin/banner
func AddBanner(banners *store.Banners) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BannerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		banner := banners.Add(models.Banner{
			Title:    input.Title,
			Subtitle: input.Subtitle,
			ImageURL: input.ImageURL,
			Link:     input.Link,
			Type:     input.Type,
			Priority: input.Priority,
		})
		c.JSON(http.StatusCreated, gin.H{"message": "Banner added", "data": banner})
	}
}

// PUT /admin/banner/:id
func UpdateBanner(banners *store.Banners) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cast.ToInt64(c.Param("id"))
		var input store.BannerUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		banner, err := banners.Update(id, input)
		if err != nil {
			bannerErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Banner updated", "data": banner})
	}
}

// DELETE /admin/banner/:id
func DeleteBanner(banners *store.Banners) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cast.ToInt64(c.Param("id"))
		if err := banners.Delete(id); err != nil {
			bannerErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}

// PUT /admin/banner/:id/toggle
func ToggleBannerStatus(banners *store.Banners) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cast.ToInt64(c.Param("id"))
		banner, err := banners.ToggleStatus(id)
		if err != nil {
			bannerErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Banner status toggled", "data": banner})
	}
}

func bannerErr(c *gin.Context, err error) {
	if errors.Is(err, mockapi.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
