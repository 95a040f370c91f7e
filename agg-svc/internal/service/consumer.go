package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"restaurant-recommender/agg-svc/internal/domain"
	"restaurant-recommender/logging"
	"restaurant-recommender/metrics"
)

var errMissingQuery = errors.New("prediction event without locality or cuisine")

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface

	now func() time.Time
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		now:    time.Now,
	}
}

// Start reads until ctx is cancelled or the reader is closed. Bad messages
// are logged and skipped.
func (c *Consumer) Start(ctx context.Context) error {
	log := logging.Component("consumer")
	log.Info().Msg("starting event consumer")

	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Error().Err(err).Msg("error reading message")
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			metrics.EventsConsumed.WithLabelValues("unknown", "invalid").Inc()
			log.Warn().Err(err).Int64("offset", message.Offset).Msg("error unmarshaling message")
			continue
		}

		if err := c.Process(ctx, event); err != nil {
			log.Warn().Err(err).Str("type", event.Type).Msg("event not recorded")
		}
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = c.now()
	}

	var err error
	switch event.Type {
	case domain.EventPredictionResolved:
		if event.Locality == "" || event.Cuisine == "" {
			metrics.EventsConsumed.WithLabelValues(event.Type, "invalid").Inc()
			return errMissingQuery
		}
		err = c.Store.RecordPrediction(ctx, event)
	case domain.EventFeedbackSubmitted:
		err = c.Store.RecordFeedback(ctx, event)
	default:
		metrics.EventsConsumed.WithLabelValues("unknown", "invalid").Inc()
		return fmt.Errorf("%w: %q", domain.ErrUnknownEvent, event.Type)
	}

	if err != nil {
		metrics.EventsConsumed.WithLabelValues(event.Type, "failed").Inc()
		return err
	}
	metrics.EventsConsumed.WithLabelValues(event.Type, "recorded").Inc()
	return nil
}
