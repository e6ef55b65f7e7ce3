// Package events publishes gift fulfillment events so the delivery bot
// can pick up newly placed orders.
package events

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"giftstore/internal/domain"
)

const giftTopic = "gift-orders"

// GiftPublisher writes gift-created events to Kafka.
type GiftPublisher struct {
	writer *kafka.Writer
	logger *log.Logger
}

// NewGiftPublisher builds a publisher for the given brokers.
func NewGiftPublisher(brokers []string, logger *log.Logger) *GiftPublisher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  giftTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &GiftPublisher{writer: w, logger: logger}
}

type giftCreatedEvent struct {
	GiftID        string    `json:"gift_id"`
	UserID        *string   `json:"user_id,omitempty"`
	Recipient     string    `json:"recipient"`
	ItemID        string    `json:"item_id"`
	ItemName      string    `json:"item_name"`
	PriceVBucks   int64     `json:"price_vbucks"`
	PriceUSDCents int64     `json:"price_usd_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublishGiftCreated emits one event keyed by gift ID.
func (p *GiftPublisher) PublishGiftCreated(ctx context.Context, gift domain.Gift) error {
	payload, err := json.Marshal(giftCreatedEvent{
		GiftID:        gift.ID,
		UserID:        gift.UserID,
		Recipient:     gift.Recipient,
		ItemID:        gift.ItemID,
		ItemName:      gift.ItemName,
		PriceVBucks:   gift.PriceVBucks,
		PriceUSDCents: gift.PriceUSDCents,
		CreatedAt:     gift.CreatedAt,
	})
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(gift.ID),
		Value: payload,
	})
	if err != nil {
		return err
	}
	p.logger.Printf("events: published gift id=%s recipient=%s", gift.ID, gift.Recipient)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *GiftPublisher) Close() error {
	return p.writer.Close()
}
