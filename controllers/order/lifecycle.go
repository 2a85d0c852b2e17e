package orderControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripleAay/FarmApp-backend/events"
	"github.com/tripleAay/FarmApp-backend/store"
)

type UpdateOrderStatusesRequest struct {
	Updates []store.StatusUpdate `json:"updates"`
}

// PATCH /orders/status
//
// Farmers push fulfillment transitions in bulk. Each entry is applied
// independently; the response carries bulk-write style counts.
func UpdateOrderStatusesHandler(orders *store.OrderStore, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result, err := orders.ApplyStatusUpdates(req.Updates)
		if err != nil {
			if errors.Is(err, store.ErrNoUpdates) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No status updates provided"})
				return
			}
			log.Printf("❌ Failed to apply status updates: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order statuses"})
			return
		}

		// Only transitions that were actually written are announced.
		for _, u := range result.Applied {
			if pub != nil {
				if err := pub.PublishOrderStatusChanged(c.Request.Context(), u.OrderID, u.Status); err != nil {
					log.Printf("❌ Failed to publish status change for %s: %v", u.OrderID, err)
				}
			}
			broadcastStatusChange(u.OrderID, u.Status)
		}

		c.JSON(http.StatusOK, result)
	}
}
