package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	BuyerID   string     `gorm:"uniqueIndex" json:"buyer_id"` // one cart per buyer
	Lines     []CartLine `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"products"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartLine snapshots the product at add time so a later catalog price
// change does not reprice a line the buyer already added.
type CartLine struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	CartID      uint      `gorm:"index" json:"-"`
	ProductID   string    `gorm:"index" json:"product_id"`
	ProductName string    `json:"product_name"`
	Thumbnail   string    `json:"thumbnail"`
	UnitPrice   float64   `json:"price"`
	Quantity    int       `json:"quantity"` // at least 1 while the line exists
	FarmerID    string    `json:"farmer_id"`
	AddedAt     time.Time `json:"added_at"`
}

// LineTotal is the contribution of one line to the cart total.
func (l CartLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
