package cartControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripleAay/FarmApp-backend/store"
)

type AdjustCartInput struct {
	Action string `json:"action" binding:"required,oneof=add remove"`
}

// POST /cart/:userId/:productId
func AddToCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.Param("userId")
		productID := c.Param("productId")

		cart, err := carts.AddLine(buyerID, productID)
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			log.Printf("❌ Failed to add product %s to cart: %v", productID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart", "cart": cart})
	}
}

// PATCH /cart/:userId/:productId
func AdjustCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.Param("userId")
		productID := c.Param("productId")

		var input AdjustCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := carts.AdjustLine(buyerID, productID, input.Action)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, store.ErrCartNotFound), errors.Is(err, store.ErrLineNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				log.Printf("❌ Failed to adjust cart item %s: %v", productID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

// PATCH /cart/:userId/:productId/remove
func RemoveCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.Param("userId")
		productID := c.Param("productId")

		cart, err := carts.RemoveLine(buyerID, productID)
		if err != nil {
			if errors.Is(err, store.ErrCartNotFound) || errors.Is(err, store.ErrLineNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Printf("❌ Failed to remove cart item %s: %v", productID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

// GET /cart/:userId
func GetCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := carts.GetCart(c.Param("userId"))
		if err != nil {
			log.Printf("❌ Failed to fetch cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		// A buyer without a cart sees an empty cart, not an error.
		c.JSON(http.StatusOK, gin.H{"products": lines})
	}
}

// GET /cart/:userId/contains/:productId
func CheckIfInCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		inCart, err := carts.ContainsProduct(c.Param("userId"), c.Param("productId"))
		if err != nil {
			log.Printf("❌ Failed to check cart membership: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"inCart": inCart})
	}
}
