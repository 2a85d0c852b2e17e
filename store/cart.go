package store

import (
	"errors"
	"time"

	"github.com/tripleAay/FarmApp-backend/models"
	"gorm.io/gorm"
)

// CartStore owns the per-buyer cart documents. Every mutation rewrites the
// cart as a whole (lines plus recomputed total) inside one transaction, so
// a reader never observes a partially updated cart.
type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// orderedLines pins line loads to insertion order.
func orderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// AddLine puts one unit of the product into the buyer's cart, creating the
// cart lazily and merging into an existing line when the product is
// already there. Product details are snapshotted at add time.
func (s *CartStore) AddLine(buyerID, productID string) (*models.Cart, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var cart models.Cart
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Lines", orderedLines).Where("buyer_id = ?", buyerID).First(&cart).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			cart = models.Cart{BuyerID: buyerID}
		}

		merged := false
		for i := range cart.Lines {
			if cart.Lines[i].ProductID == productID {
				cart.Lines[i].Quantity++
				merged = true
				break
			}
		}
		if !merged {
			cart.Lines = append(cart.Lines, models.CartLine{
				ProductID:   product.ID,
				ProductName: product.Name,
				Thumbnail:   product.Thumbnail,
				UnitPrice:   product.Price,
				FarmerID:    product.FarmerID,
				Quantity:    1,
				AddedAt:     time.Now(),
			})
		}
		return replaceCart(tx, &cart)
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AdjustLine moves a line's quantity one step in either direction.
// "add" behaves exactly like AddLine; "remove" requires the cart and the
// line to exist already and deletes the line when it reaches zero.
func (s *CartStore) AdjustLine(buyerID, productID, action string) (*models.Cart, error) {
	if action == "add" {
		return s.AddLine(buyerID, productID)
	}
	return s.decrementLine(buyerID, productID)
}

// RemoveLine decrements the line by one and deletes it at zero, the same
// floor behavior as AdjustLine's remove step.
func (s *CartStore) RemoveLine(buyerID, productID string) (*models.Cart, error) {
	return s.decrementLine(buyerID, productID)
}

func (s *CartStore) decrementLine(buyerID, productID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Lines", orderedLines).Where("buyer_id = ?", buyerID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		found := false
		for i := range cart.Lines {
			if cart.Lines[i].ProductID == productID {
				cart.Lines[i].Quantity--
				found = true
				break
			}
		}
		if !found {
			return ErrLineNotFound
		}
		// replaceCart drops any line whose quantity reached zero; the cart
		// row itself persists even when empty.
		return replaceCart(tx, &cart)
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCart returns the cart's lines. A buyer without a cart gets an empty
// slice, not an error.
func (s *CartStore) GetCart(buyerID string) ([]models.CartLine, error) {
	var cart models.Cart
	if err := s.db.Preload("Lines", orderedLines).Where("buyer_id = ?", buyerID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.CartLine{}, nil
		}
		return nil, err
	}
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	return cart.Lines, nil
}

// ContainsProduct reports whether the buyer's cart holds the product.
func (s *CartStore) ContainsProduct(buyerID, productID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.CartLine{}).
		Joins("JOIN carts ON carts.cart_id = cart_lines.cart_id").
		Where("carts.buyer_id = ? AND cart_lines.product_id = ?", buyerID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// replaceCart persists the cart as one document: lines with zero quantity
// are dropped, the total is recomputed, and the line rows are rewritten so
// the stored cart always matches the in-memory one exactly.
func replaceCart(tx *gorm.DB, cart *models.Cart) error {
	kept := make([]models.CartLine, 0, len(cart.Lines))
	total := 0.0
	for _, line := range cart.Lines {
		if line.Quantity <= 0 {
			continue
		}
		total += line.LineTotal()
		kept = append(kept, line)
	}
	cart.Lines = kept
	cart.Total = total

	if cart.CartID == 0 {
		return tx.Create(cart).Error
	}

	if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartLine{}).Error; err != nil {
		return err
	}
	lines := cart.Lines
	cart.Lines = nil
	if err := tx.Save(cart).Error; err != nil {
		cart.Lines = lines
		return err
	}
	for i := range lines {
		lines[i].ID = 0
		lines[i].CartID = cart.CartID
	}
	if len(lines) > 0 {
		if err := tx.Create(&lines).Error; err != nil {
			cart.Lines = lines
			return err
		}
	}
	cart.Lines = lines
	return nil
}
