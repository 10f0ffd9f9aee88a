package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/Ilya88556/ecom-api/controllers/user"
	"github.com/Ilya88556/ecom-api/middleware"
)

// SetupUserRoutes registers the "/user" profile endpoints.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	user := r.Group("/user")
	user.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		user.GET("", userControllers.GetUser(deps.DB))
		user.PUT("", userControllers.UpdateUser(deps.DB))
	}
}
