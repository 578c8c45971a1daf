package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/config"
	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/segmentio/kafka-go"
)

type OrderPlacedItem struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Currency  string `json:"currency"`
}

// OrderPlaced is published once per committed checkout.
type OrderPlaced struct {
	OrderID  int64             `json:"order_id"`
	UserID   int64             `json:"user_id"`
	PlacedAt time.Time         `json:"placed_at"`
	Status   string            `json:"status"`
	Total    string            `json:"total"`
	Currency string            `json:"currency"`
	Items    []OrderPlacedItem `json:"items"`
}

func NewOrderPlaced(o entities.Order) OrderPlaced {
	total := o.Total()
	event := OrderPlaced{
		OrderID:  o.ID,
		UserID:   o.UserID,
		PlacedAt: o.PlacedAt,
		Status:   string(o.Status),
		Total:    total.Amount.StringFixed(2),
		Currency: total.Currency,
		Items:    make([]OrderPlacedItem, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		event.Items = append(event.Items, OrderPlacedItem{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.Amount.StringFixed(2),
			Currency:  it.UnitPrice.Currency,
		})
	}
	return event
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer  MessageWriter
	timeout time.Duration
}

func NewKafkaPublisher(cfg config.Kafka) *kafkaPublisher {
	return NewPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.PlacedTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.PublishTimeout,
		RequiredAcks: kafka.RequireAll,
	}, cfg.PublishTimeout)
}

// NewPublisher bounds every publish by timeout. The deadline is detached from
// the caller's cancellation, so a client hanging up after commit does not
// drop the event.
func NewPublisher(writer MessageWriter, timeout time.Duration) *kafkaPublisher {
	return &kafkaPublisher{writer: writer, timeout: timeout}
}

// PublishOrderPlaced writes the event keyed by order id, so events of one
// order stay in one partition.
func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, order entities.Order) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	data, err := json.Marshal(NewOrderPlaced(order))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(order.ID, 10)),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
