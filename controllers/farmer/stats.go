package farmerControllers

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tripleAay/FarmApp-backend/models"
	"github.com/tripleAay/FarmApp-backend/store"
	"gorm.io/gorm"
)

type recentOrder struct {
	OrderID     string    `json:"orderId"`
	ProductName string    `json:"productName"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

type stockAlert struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// GET /farmers/stats/:farmerId
//
// Dashboard aggregates for one farmer: only the farmer's own lines count
// toward the money figures, even in mixed-farmer orders.
func GetFarmerStats(db *gorm.DB, orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		farmerID := c.Param("farmerId")

		var totalProducts int64
		if err := db.Model(&models.Product{}).Where("farmer_id = ?", farmerID).Count(&totalProducts).Error; err != nil {
			log.Printf("❌ Failed to count farmer products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch farmer stats"})
			return
		}

		farmerOrders, err := orders.ListByFarmer(farmerID)
		if err != nil {
			log.Printf("❌ Failed to fetch farmer orders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch farmer stats"})
			return
		}

		var pendingCount int
		var pendingAmount, totalEarnings float64
		var totalSold int
		recent := []recentOrder{}

		for _, order := range farmerOrders {
			var orderValue float64
			var orderUnits int
			firstProduct := "N/A"
			for _, line := range order.Lines {
				if line.FarmerID != farmerID {
					continue
				}
				if firstProduct == "N/A" {
					firstProduct = line.ProductName
				}
				orderValue += line.UnitPrice * float64(line.Quantity)
				orderUnits += line.Quantity
			}

			totalSold += orderUnits
			if order.Status == models.OrderStatusPending {
				pendingCount++
				pendingAmount += orderValue
			}
			if order.Paid {
				totalEarnings += orderValue
			}

			// farmerOrders is newest-first already
			if len(recent) < 5 {
				recent = append(recent, recentOrder{
					OrderID:     order.ID,
					ProductName: firstProduct,
					Status:      string(order.Status),
					Date:        order.PlacedAt,
				})
			}
		}

		alerts := []stockAlert{}
		if err := db.Model(&models.Product{}).
			Select("name", "stock").
			Where("farmer_id = ? AND stock < ?", farmerID, 5).
			Find(&alerts).Error; err != nil {
			log.Printf("❌ Failed to fetch stock alerts: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch farmer stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"stats": gin.H{
				"totalProducts":      totalProducts,
				"pendingOrdersCount": pendingCount,
				"pendingOrdersValue": formatNaira(pendingAmount),
				"totalEarnings":      formatNaira(totalEarnings),
				"totalSold":          totalSold,
			},
			"recentOrders": recent,
			"stockAlerts":  alerts,
		})
	}
}

// formatNaira renders an amount as whole naira with thousands separators,
// e.g. ₦12,500.
func formatNaira(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}
	return sign + "₦" + string(grouped)
}
