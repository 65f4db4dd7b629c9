package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

// StockAlertPublisher pushes low-stock events onto a kafka topic.
// Delivery of the alert to merchants is handled downstream.
type StockAlertPublisher struct {
	writer *kafka.Writer
}

func NewStockAlertPublisher(brokers []string, topic string) *StockAlertPublisher {
	return &StockAlertPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *StockAlertPublisher) NotifyLowStock(ctx context.Context, event domain.LowStockEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ProductID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *StockAlertPublisher) Close() error {
	return p.writer.Close()
}
