package service

import (
	"context"

	"restaurant-recommender/agg-svc/internal/domain"
	"restaurant-recommender/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordPrediction(ctx context.Context, event domain.Event) error
	RecordFeedback(ctx context.Context, event domain.Event) error
	TopQueries(ctx context.Context, date string, limit int64) ([]domain.QueryStat, error)
	Summary(ctx context.Context, date string) (domain.DailySummary, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	Process(ctx context.Context, event domain.Event) error
}

type InsightsInterface interface {
	TopQueries(ctx context.Context, period string, limit int) ([]domain.QueryStat, error)
	Summary(ctx context.Context, date string) (domain.DailySummary, error)
}

var (
	_ StoreInterface    = (*storage.RedisStore)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ InsightsInterface = (*Insights)(nil)
)
