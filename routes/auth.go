package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ilya88556/ecom-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(deps.DB, deps.Config.JWTSecret))
		authGroup.POST("/login", auth.LoginHandler(deps.DB, deps.Config.JWTSecret))
	}
}
