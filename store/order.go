package store

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tripleAay/FarmApp-backend/models"
	"gorm.io/gorm"
)

// OrderStore owns the order ledger: checkout snapshots, lookups and the
// fulfillment status transitions farmers drive after placement.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// StatusUpdate is one entry of a bulk fulfillment update.
type StatusUpdate struct {
	OrderID string `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// BulkResult mirrors bulk-write counts: matched is how many order ids
// resolved, modified how many rows actually changed. Applied carries the
// updates that were actually written so callers fan out notifications only
// for real transitions.
type BulkResult struct {
	MatchedCount  int64          `json:"matchedCount"`
	ModifiedCount int64          `json:"modifiedCount"`
	Applied       []StatusUpdate `json:"-"`
}

// Place turns the buyer's cart into a Pending order and drains the cart.
// Both writes happen in one transaction so a created order always pairs
// with an emptied cart.
func (s *OrderStore) Place(buyerID string) (*models.Order, error) {
	var cart models.Cart
	if err := s.db.Preload("Lines", orderedLines).Where("buyer_id = ?", buyerID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartEmpty
		}
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrCartEmpty
	}

	order := models.Order{
		ID:            uuid.NewString(),
		BuyerID:       buyerID,
		Status:        models.OrderStatusPending,
		PaymentMethod: models.PaymentMethodOnDelivery,
		PlacedAt:      time.Now(),
	}
	for _, line := range cart.Lines {
		order.TotalPrice += line.LineTotal()
		order.Lines = append(order.Lines, models.OrderLine{
			OrderID:     order.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Thumbnail:   line.Thumbnail,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			FarmerID:    line.FarmerID,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).Update("total", 0).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByID loads one order with its lines.
func (s *OrderStore) GetByID(orderID string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Lines", orderedLines).First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListByBuyer returns the buyer's orders, newest first.
func (s *OrderStore) ListByBuyer(buyerID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Lines", orderedLines).
		Where("buyer_id = ?", buyerID).
		Order("placed_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByFarmer returns every order containing at least one of the farmer's
// products, newest first.
func (s *OrderStore) ListByFarmer(farmerID string) ([]models.Order, error) {
	var orders []models.Order
	sub := s.db.Model(&models.OrderLine{}).
		Select("order_id").
		Where("farmer_id = ?", farmerID)
	err := s.db.Preload("Lines", orderedLines).
		Where("id IN (?)", sub).
		Order("placed_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ApplyStatusUpdates writes a batch of fulfillment transitions. Items are
// applied independently: an unknown order id is skipped without blocking
// the rest, and a write failure on one order is logged and skipped too.
// Recognized target statuses trigger their derived fields; anything else
// is written as-is.
func (s *OrderStore) ApplyStatusUpdates(updates []StatusUpdate) (BulkResult, error) {
	if len(updates) == 0 {
		return BulkResult{}, ErrNoUpdates
	}

	var result BulkResult
	for _, u := range updates {
		var order models.Order
		if err := s.db.First(&order, "id = ?", u.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			log.Printf("❌ Failed to load order %s for status update: %v", u.OrderID, err)
			continue
		}
		result.MatchedCount++

		newStatus := models.OrderStatus(u.Status)
		changed := order.Status != newStatus

		switch newStatus {
		case models.OrderStatusShipped:
			promised := deliveryCutoff(time.Now())
			order.DateToBeDelivered = &promised
			order.Approved = true
			order.Paid = true
			order.TransactionID = NewTransactionID()
			changed = true
		case models.OrderStatusDelivered:
			delivered := time.Now()
			order.DateDelivered = &delivered
			order.TransactionID = NewTransactionID()
			changed = true
		case models.OrderStatusCancelled:
			order.TransactionID = NewTransactionID()
			changed = true
		}
		if !changed {
			continue
		}

		order.Status = newStatus
		if err := s.db.Save(&order).Error; err != nil {
			log.Printf("❌ Failed to update order %s status: %v", u.OrderID, err)
			continue
		}
		result.ModifiedCount++
		result.Applied = append(result.Applied, u)
	}
	return result, nil
}

// AttachPaymentProof records the uploaded proof-of-payment path on the
// order and returns the refreshed order.
func (s *OrderStore) AttachPaymentProof(orderID, path string) (*models.Order, error) {
	order, err := s.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(order).Update("payment_image", path).Error; err != nil {
		return nil, err
	}
	order.PaymentImage = path
	return order, nil
}

// deliveryCutoff promises delivery by 18:00 local time on the day the
// order ships, whatever the time of day the farmer marks it shipped.
func deliveryCutoff(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())
}

// NewTransactionID issues a best-effort unique payment reference, e.g.
// TXN-20260831142501-9f1c23ab.
func NewTransactionID() string {
	random := strings.Split(uuid.NewString(), "-")[0]
	return "TXN-" + time.Now().Format("20060102150405") + "-" + random
}
