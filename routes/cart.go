package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Ilya88556/ecom-api/controllers/cart"
	"github.com/Ilya88556/ecom-api/middleware"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires a valid token.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		cart.GET("", cartControllers.GetUserCart(deps.DB))
		cart.POST("/add_item", cartControllers.AddItem(deps.DB))
		cart.PATCH("/update-item", cartControllers.UpdateItem(deps.DB))
		cart.DELETE("/remove-item", cartControllers.RemoveItem(deps.DB))
	}
}
