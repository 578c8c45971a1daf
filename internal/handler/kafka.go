package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/config"
	"github.com/SergeyBogomolovv/shoppy/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id int64, rawStatus string) (entities.Order, error)
}

// MessageReader is the subset of *kafka.Reader used by the consumer.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MessageWriter is the subset of *kafka.Writer used for the DLQ.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	updater  StatusUpdater
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, updater StatusUpdater) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.StatusTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, updater)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, updater StatusUpdater) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: newValidator(),
		updater:  updater,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if !h.process(ctx, m) {
			continue
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// process applies one message and reports whether it may be committed.
// A message that fails and cannot be parked in the DLQ stays uncommitted.
func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) bool {
	statusEventsInProgress.Inc()
	defer statusEventsInProgress.Dec()
	start := time.Now()
	defer func() { statusEventDuration.Observe(time.Since(start).Seconds()) }()

	err := h.handleStatusEvent(ctx, m)
	if err == nil {
		statusEventsProcessed.Inc()
		return true
	}

	statusEventsFailed.Inc()
	h.logger.Error("failed to handle message",
		slog.String("topic", m.Topic),
		slog.Int64("offset", m.Offset),
		slog.Any("error", err),
	)

	if err := h.WriteToDLQ(ctx, m); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
		return false
	}
	statusEventsDLQ.Inc()
	return true
}

func (h *kafkaHandler) handleStatusEvent(ctx context.Context, m kafka.Message) error {
	var event StatusEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal status event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid status event: %w", err)
	}

	order, err := h.updater.UpdateStatus(ctx, event.OrderID, event.Status)
	if err != nil {
		return fmt.Errorf("failed to update order %d: %w", event.OrderID, err)
	}

	h.logger.Info("order status updated",
		slog.Int64("order_id", order.ID),
		slog.String("status", string(order.Status)),
	)
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
