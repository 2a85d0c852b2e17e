package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/tripleAay/FarmApp-backend/controllers/cart"
	"github.com/tripleAay/FarmApp-backend/store"
	"gorm.io/gorm"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	carts := store.NewCartStore(db)

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/:userId", cartControllers.GetCart(carts))                                // GET /cart/:userId
		cartGroup.GET("/:userId/contains/:productId", cartControllers.CheckIfInCart(carts))     // GET /cart/:userId/contains/:productId
		cartGroup.POST("/:userId/:productId", cartControllers.AddToCart(carts))                 // POST /cart/:userId/:productId
		cartGroup.PATCH("/:userId/:productId", cartControllers.AdjustCartItem(carts))           // PATCH /cart/:userId/:productId
		cartGroup.PATCH("/:userId/:productId/remove", cartControllers.RemoveCartItem(carts))    // PATCH /cart/:userId/:productId/remove
	}
}
