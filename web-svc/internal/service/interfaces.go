package service

import (
	"context"

	"restaurant-recommender/web-svc/internal/domain"
)

type PredictorInterface interface {
	Predict(ctx context.Context, session *Session, locality, cuisine string) (domain.Outcome, error)
}

type FeedbackServiceInterface interface {
	Submit(ctx context.Context, form domain.FeedbackForm) (FeedbackReceipt, error)
	QRCode() ([]byte, error)
}

type SessionStoreInterface interface {
	Get(ctx context.Context, id string) (*Session, bool)
	Open(ctx context.Context) (*Session, error)
	Close(ctx context.Context, id string) error
}

// PredictionCache is scoped to one session. Set never overwrites an existing
// entry for the same key.
type PredictionCache interface {
	Get(ctx context.Context, key domain.QueryKey) (domain.PredictionResult, bool, error)
	Set(ctx context.Context, key domain.QueryKey, result domain.PredictionResult) error
	Discard(ctx context.Context) error
}

type CacheFactory interface {
	NewCache(sessionID string) PredictionCache
}

type PredictionBackend interface {
	Predict(ctx context.Context, locality, cuisine string) (domain.PredictionResult, error)
}

type Generator interface {
	Generate(key domain.QueryKey) domain.PredictionResult
}

type Mailer interface {
	Send(ctx context.Context, serviceID, templateID string, params map[string]string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type QRGenerator interface {
	Generate(link string) ([]byte, error)
}

var (
	_ PredictorInterface       = (*Predictor)(nil)
	_ FeedbackServiceInterface = (*FeedbackService)(nil)
	_ SessionStoreInterface    = (*SessionStore)(nil)
	_ Generator                = (*MockGenerator)(nil)
)
