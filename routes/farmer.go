package routes

import (
	"github.com/gin-gonic/gin"
	farmerControllers "github.com/tripleAay/FarmApp-backend/controllers/farmer"
	"github.com/tripleAay/FarmApp-backend/middleware"
	"github.com/tripleAay/FarmApp-backend/store"
	"gorm.io/gorm"
)

func SetupFarmerRoutes(r *gin.Engine, db *gorm.DB) {
	orders := store.NewOrderStore(db)

	farmerGroup := r.Group("/farmers")
	farmerGroup.Use(middleware.ValidateAPIKey)
	{
		farmerGroup.GET("/stats/:farmerId", farmerControllers.GetFarmerStats(db, orders))
	}
}
