package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tripleAay/FarmApp-backend/models"
)

const (
	OrderPlacedQueue        = "order.placed"
	OrderStatusChangedQueue = "order.status_changed"
)

// Publisher emits order lifecycle events for downstream consumers
// (notifications, farmer dashboards). It is optional: callers hold a nil
// *Publisher when no broker is configured.
type Publisher struct {
	ch *amqp.Channel
}

func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Declare queues so publish never fails on missing infra
	for _, q := range []string{OrderPlacedQueue, OrderStatusChangedQueue} {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("declare %s: %w", q, err)
		}
	}

	return &Publisher{ch: ch}, nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

type OrderPlaced struct {
	EventType  string     `json:"eventType"`
	OrderID    string     `json:"orderId"`
	BuyerID    string     `json:"buyerId"`
	TotalPrice float64    `json:"totalPrice"`
	Lines      []LineItem `json:"lines"`
	Timestamp  time.Time  `json:"timestamp"`
}

type LineItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	FarmerID  string  `json:"farmerId"`
}

type OrderStatusChanged struct {
	EventType string    `json:"eventType"`
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, o *models.Order) error {
	ev := OrderPlaced{
		EventType:  "OrderPlaced",
		OrderID:    o.ID,
		BuyerID:    o.BuyerID,
		TotalPrice: o.TotalPrice,
		Timestamp:  time.Now().UTC(),
	}
	for _, line := range o.Lines {
		ev.Lines = append(ev.Lines, LineItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
			FarmerID:  line.FarmerID,
		})
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderPlaced: %w", err)
	}
	return p.publishJSON(ctx, OrderPlacedQueue, body)
}

func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, orderID, status string) error {
	ev := OrderStatusChanged{
		EventType: "OrderStatusChanged",
		OrderID:   orderID,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderStatusChanged: %w", err)
	}
	return p.publishJSON(ctx, OrderStatusChangedQueue, body)
}

func (p *Publisher) publishJSON(ctx context.Context, routingKey string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		"",         // default exchange
		routingKey, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
