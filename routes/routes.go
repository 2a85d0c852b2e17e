package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tripleAay/FarmApp-backend/events"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the cart, order,
// farmer and product route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, pub *events.Publisher, uploadsDir string) {
	SetupCartRoutes(r, db)

	SetupOrderRoutes(r, db, pub, uploadsDir)

	SetupFarmerRoutes(r, db)

	SetupProductRoutes(r, db)
}
