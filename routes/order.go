package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/Ilya88556/ecom-api/controllers/order"
	"github.com/Ilya88556/ecom-api/middleware"
)

// SetupOrderRoutes registers all "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")

	// websocket endpoint for real-time order updates
	orders.GET("/ws", orderControllers.OrderWebSocketHandler)

	orders.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		orders.POST("", orderControllers.CreateOrderHandler(deps.DB, deps.Deliveries))
		orders.GET("", orderControllers.ListOrdersHandler(deps.DB))
		orders.GET("/:id", orderControllers.GetOrderHandler(deps.DB))
		orders.PATCH("/:id", orderControllers.CancelOrderHandler(deps.DB))
	}
}
