package routes

import (
	"github.com/gin-gonic/gin"

	deliveryControllers "github.com/Ilya88556/ecom-api/controllers/delivery"
)

// SetupDeliveryRoutes registers all "/delivery/*" endpoints.
func SetupDeliveryRoutes(r *gin.Engine, deps Deps) {
	del := r.Group("/delivery")
	{
		del.GET("/cities", deliveryControllers.CitiesHandler(deps.DB))
		del.GET("/addresses", deliveryControllers.AddressesHandler(deps.DB, deps.Deliveries))
	}
}
