package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/tripleAay/FarmApp-backend/controllers/order"
	"github.com/tripleAay/FarmApp-backend/events"
	"github.com/tripleAay/FarmApp-backend/middleware"
	"github.com/tripleAay/FarmApp-backend/store"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, pub *events.Publisher, uploadsDir string) {
	orders := store.NewOrderStore(db)

	orderGroup := r.Group("/orders")
	{
		// Checkout
		orderGroup.POST("/place/:userId", orderControllers.PlaceOrderHandler(orders, pub))

		// Lookups
		orderGroup.GET("/:orderId", orderControllers.GetOrderByIDHandler(orders))
		orderGroup.GET("/user/:userId", orderControllers.GetUserOrdersHandler(orders))

		// Buyer proof of payment
		orderGroup.POST("/:orderId/payment-proof", orderControllers.UploadPaymentProofHandler(orders, uploadsDir))

		// websocket endpoint for real-time order updates
		orderGroup.GET("/ws", orderControllers.OrderFeedHandler)

		// Farmer-facing surfaces, API-key protected
		farmerFacing := orderGroup.Group("")
		farmerFacing.Use(middleware.ValidateAPIKey)
		{
			farmerFacing.PATCH("/status", orderControllers.UpdateOrderStatusesHandler(orders, pub))
			farmerFacing.GET("/farmer/:farmerId", orderControllers.GetFarmerOrdersHandler(orders))
			farmerFacing.GET("/farmer/:farmerId/export", orderControllers.ExportFarmerOrdersToExcel(orders))
		}
	}
}
