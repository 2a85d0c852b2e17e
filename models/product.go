package models

import "time"

// Product is the catalog entry farmers list for sale. The cart and order
// flows only read from it; listing, upload and editing live in the catalog
// service.
type Product struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `json:"category"`
	Thumbnail   string    `gorm:"not null" json:"thumbnail"`
	Featured    bool      `json:"featured"`
	FarmerID    string    `gorm:"index" json:"farmer_id"`
	Stock       int       `json:"stock"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
