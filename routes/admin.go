package routes

import (
	"github.com/gin-gonic/gin"

	deliveryControllers "github.com/Ilya88556/ecom-api/controllers/delivery"
	orderControllers "github.com/Ilya88556/ecom-api/controllers/order"
	productControllers "github.com/Ilya88556/ecom-api/controllers/product"
	"github.com/Ilya88556/ecom-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API key middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey(deps.Config.AdminAPIKey))
	{
		productAdmin := admin.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(deps.DB))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(deps.DB))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(deps.DB))
		}

		categoryAdmin := admin.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(deps.DB))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(deps.DB))
		}

		admin.GET("/orders", orderControllers.ListAllOrdersHandler(deps.DB))

		deliveryAdmin := admin.Group("/delivery")
		{
			deliveryAdmin.POST("/sync-areas", deliveryControllers.SyncAreasHandler(deps.DB, deps.NovaPoshta))
			deliveryAdmin.POST("/sync-cities", deliveryControllers.SyncCitiesHandler(deps.DB, deps.NovaPoshta))
			deliveryAdmin.POST("/sync-warehouses", deliveryControllers.SyncWarehousesHandler(deps.DB, deps.NovaPoshta))
		}
	}
}
