package models

import "time"

type OrderStatus string

const (
	// Fulfillment flow: Pending → Shipped → Delivered, with Cancelled
	// reachable before delivery. Delivered and Cancelled are terminal.
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

const PaymentMethodOnDelivery = "Payment on Delivery"

// Order is a frozen copy of a cart taken at checkout. Lines and TotalPrice
// never change after creation; only the status and the fulfillment fields
// derived from it do.
type Order struct {
	ID                string      `gorm:"primaryKey" json:"id"`
	BuyerID           string      `gorm:"index" json:"buyer_id"`
	Lines             []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	TotalPrice        float64     `json:"total_price"`
	Status            OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	Paid              bool        `json:"paid"`
	Approved          bool        `json:"approved"`
	PaymentMethod     string      `json:"payment_method"`
	TransactionID     string      `json:"transaction_id"`
	PaymentImage      string      `json:"payment_image"` // proof-of-payment upload path
	PlacedAt          time.Time   `json:"placed_at"`
	DateToBeDelivered *time.Time  `json:"date_to_be_delivered"`
	DateDelivered     *time.Time  `json:"date_delivered"`
}

type OrderLine struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	OrderID     string  `gorm:"index" json:"-"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Thumbnail   string  `json:"thumbnail"`
	UnitPrice   float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	FarmerID    string  `json:"farmer_id"`
}
