package languageControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polockprog2/FreshMart-sub000/store"
)

type LanguageInput struct {
	Code string `json:"code" binding:"required"`
}

// GET /language
func GetLanguage(language *store.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"code":         language.Current(),
			"translations": language.Table(),
		})
	}
}

// PUT /language
func SetLanguage(language *store.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LanguageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Language code is required"})
			return
		}

		if err := language.Set(input.Code); err != nil {
			if errors.Is(err, store.ErrUnknownLanguage) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language code"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"code":         language.Current(),
			"translations": language.Table(),
		})
	}
}
