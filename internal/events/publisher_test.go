package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/SergeyBogomolovv/shoppy/internal/events"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func testOrder() entities.Order {
	return entities.Order{
		ID:       42,
		UserID:   7,
		PlacedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Status:   entities.StatusPreparing,
		Items: []entities.OrderItem{
			{
				Product:   entities.Product{ID: 1},
				UnitPrice: entities.NewMoney(decimal.RequireFromString("10"), "USD"),
				Quantity:  2,
			},
			{
				Product:   entities.Product{ID: 2},
				UnitPrice: entities.NewMoney(decimal.RequireFromString("5"), "USD"),
				Quantity:  1,
			},
		},
	}
}

func TestPublishOrderPlaced(t *testing.T) {
	w := &recordingWriter{}
	p := events.NewPublisher(w, time.Second)

	require.NoError(t, p.PublishOrderPlaced(context.Background(), testOrder()))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "42", string(w.msgs[0].Key))

	var got events.OrderPlaced
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, int64(42), got.OrderID)
	assert.Equal(t, "25.00", got.Total)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "preparing", got.Status)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "10.00", got.Items[0].UnitPrice)
}

func TestPublishOrderPlaced_WriteError(t *testing.T) {
	errBroker := errors.New("broker unavailable")
	p := events.NewPublisher(&recordingWriter{err: errBroker}, time.Second)

	err := p.PublishOrderPlaced(context.Background(), testOrder())
	assert.ErrorIs(t, err, errBroker)
}

type stalledWriter struct{}

func (stalledWriter) WriteMessages(ctx context.Context, _ ...kafka.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stalledWriter) Close() error { return nil }

func TestPublishOrderPlaced_Timeout(t *testing.T) {
	p := events.NewPublisher(stalledWriter{}, 50*time.Millisecond)

	start := time.Now()
	err := p.PublishOrderPlaced(context.Background(), testOrder())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPublishOrderPlaced_CallerCanceled(t *testing.T) {
	w := &recordingWriter{}
	p := events.NewPublisher(w, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.PublishOrderPlaced(ctx, testOrder()))
	assert.Len(t, w.msgs, 1)
}

func TestNewOrderPlaced_EmptyOrder(t *testing.T) {
	event := events.NewOrderPlaced(entities.Order{ID: 1})
	assert.Equal(t, "0.00", event.Total)
	assert.Equal(t, entities.DefaultCurrency, event.Currency)
	assert.Empty(t, event.Items)
}
