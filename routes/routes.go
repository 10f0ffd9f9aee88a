package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ilya88556/ecom-api/config"
	delivery "github.com/Ilya88556/ecom-api/gateways/delivery"
	payment "github.com/Ilya88556/ecom-api/gateways/payment"
)

// Deps carries everything the route handlers need.
type Deps struct {
	DB         *gorm.DB
	Config     config.Config
	Payments   *payment.Factory
	Verifier   *payment.SignatureVerifier
	Deliveries *delivery.Factory
	NovaPoshta *delivery.NovaPoshta
}

// SetupRoutes registers every endpoint group on the engine.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupAuthRoutes(r, deps)
	SetupProductRoutes(r, deps)
	SetupCartRoutes(r, deps)
	SetupOrderRoutes(r, deps)
	SetupPaymentRoutes(r, deps)
	SetupDeliveryRoutes(r, deps)
	SetupUserRoutes(r, deps)
	SetupAdminRoutes(r, deps)
}
