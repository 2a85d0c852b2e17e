package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/tripleAay/FarmApp-backend/controllers/product"
	"gorm.io/gorm"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	productGroup := r.Group("/products")
	{
		productGroup.GET("/:id", productControllers.GetProductByID(db))
	}
}
