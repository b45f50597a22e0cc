package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/polockprog2/FreshMart-sub000/auth"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.Login(deps.Auth))
		authGroup.POST("/register", auth.Register(deps.Auth))
		authGroup.POST("/logout", auth.Logout(deps.Auth))
	}
}
