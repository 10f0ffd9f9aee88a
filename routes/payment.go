package routes

import (
	"github.com/gin-gonic/gin"

	paymentControllers "github.com/Ilya88556/ecom-api/controllers/payment"
	"github.com/Ilya88556/ecom-api/middleware"
)

// SetupPaymentRoutes registers all "/payments/*" endpoints. The callback is
// hit by the gateways themselves, so it stays outside the token middleware;
// it is authenticated by signature instead.
func SetupPaymentRoutes(r *gin.Engine, deps Deps) {
	payments := r.Group("/payments")

	payments.POST("/callback", paymentControllers.CallbackHandler(deps.DB, deps.Payments, deps.Verifier))

	payments.Use(middleware.ValidateToken(deps.Config.JWTSecret))
	{
		payments.POST("/:order_id/process", paymentControllers.ProcessHandler(deps.DB, deps.Payments))
	}
}
