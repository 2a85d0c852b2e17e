package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tripleAay/FarmApp-backend/events"
	"github.com/tripleAay/FarmApp-backend/store"
)

// POST /orders/place/:userId
func PlaceOrderHandler(orders *store.OrderStore, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.Param("userId")

		order, err := orders.Place(buyerID)
		if err != nil {
			if errors.Is(err, store.ErrCartEmpty) {
				c.JSON(http.StatusNotAcceptable, gin.H{"error": "Cart is empty or missing"})
				return
			}
			log.Printf("❌ Failed to place order for %s: %v", buyerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		if pub != nil {
			if err := pub.PublishOrderPlaced(c.Request.Context(), order); err != nil {
				log.Printf("❌ Failed to publish order placed event: %v", err)
			}
		}
		broadcastOrderPlaced(order)

		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	}
}

// GET /orders/:orderId
func GetOrderByIDHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderId")
		if _, err := uuid.Parse(orderID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		order, err := orders.GetByID(orderID)
		if err != nil {
			if errors.Is(err, store.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			log.Printf("❌ Failed to fetch order %s: %v", orderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// GET /orders/user/:userId
func GetUserOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListByBuyer(c.Param("userId"))
		if err != nil {
			log.Printf("❌ Failed to fetch user orders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

// GET /orders/farmer/:farmerId
func GetFarmerOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListByFarmer(c.Param("farmerId"))
		if err != nil {
			log.Printf("❌ Failed to fetch farmer orders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

// POST /orders/:orderId/payment-proof
func UploadPaymentProofHandler(orders *store.OrderStore, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderId")
		if _, err := uuid.Parse(orderID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		file, err := c.FormFile("paymentProof")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "paymentProof file is required"})
			return
		}

		filename := orderID + "_" + filepath.Base(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(uploadsDir, filename)); err != nil {
			log.Printf("❌ Failed to save payment proof for %s: %v", orderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment proof"})
			return
		}

		order, err := orders.AttachPaymentProof(orderID, "/uploads/"+filename)
		if err != nil {
			if errors.Is(err, store.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			log.Printf("❌ Failed to attach payment proof to %s: %v", orderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment proof uploaded", "order": order})
	}
}
