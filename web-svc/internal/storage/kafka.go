package storage

import (
	"context"
	"encoding/json"

	"restaurant-recommender/logging"
	"restaurant-recommender/web-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// Publish is a no-op when no writer is configured.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	if p.Writer == nil {
		logging.Debug().Str("type", event.Type).Msg("kafka writer not configured, skipping publish")
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key := event.SessionID
	if key == "" {
		key = event.Email
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}
