package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/Ilya88556/ecom-api/controllers/product"
)

// SetupProductRoutes registers the public catalog endpoints.
func SetupProductRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(deps.DB))
		products.GET("/:id", productControllers.GetProductByID(deps.DB))
	}

	r.GET("/categories", productControllers.GetAllCategories(deps.DB))
}
