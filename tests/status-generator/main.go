package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type StatusEvent struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

var statuses = []string{"prepared", "sent", "canceled", "referred", "delivered"}

func randomEvent(maxOrderID int64) StatusEvent {
	event := StatusEvent{
		OrderID: rand.Int63n(maxOrderID) + 1,
		Status:  statuses[rand.Intn(len(statuses))],
	}
	// Exercise the DLQ path now and then.
	if rand.Intn(10) == 0 {
		event.Status = "lost"
	}
	return event
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka bootstrap address")
	topic := flag.String("topic", "order.status", "status topic")
	maxOrderID := flag.Int64("orders", 20, "highest order id to target")
	interval := flag.Duration("interval", 2*time.Second, "delay between events")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:     kafka.TCP(*brokers),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			event := randomEvent(*maxOrderID)
			data, _ := json.Marshal(event)
			msg := kafka.Message{Key: []byte(strconv.FormatInt(event.OrderID, 10)), Value: data}
			if err := writer.WriteMessages(ctx, msg); err != nil {
				log.Println("failed to publish status event:", err)
				continue
			}
			log.Println("status event published", event.OrderID, event.Status)
		case <-ctx.Done():
			return
		}
	}
}
