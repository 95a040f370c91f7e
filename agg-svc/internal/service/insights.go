package service

import (
	"context"
	"errors"
	"time"

	"restaurant-recommender/agg-svc/internal/domain"
	"restaurant-recommender/agg-svc/internal/storage"
)

var (
	ErrInvalidPeriod = errors.New("period must be today or all")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
)

const (
	PeriodToday = "today"
	PeriodAll   = "all"

	defaultLimit = 10
	maxLimit     = 100
)

type Insights struct {
	store StoreInterface
	now   func() time.Time
}

func NewInsights(store StoreInterface) *Insights {
	return &Insights{store: store, now: time.Now}
}

func (s *Insights) TopQueries(ctx context.Context, period string, limit int) ([]domain.QueryStat, error) {
	var date string
	switch period {
	case "", PeriodAll:
	case PeriodToday:
		date = s.today()
	default:
		return nil, ErrInvalidPeriod
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.store.TopQueries(ctx, date, int64(limit))
}

// Summary defaults to the current UTC day.
func (s *Insights) Summary(ctx context.Context, date string) (domain.DailySummary, error) {
	if date == "" {
		date = s.today()
	} else if _, err := time.Parse(storage.DateLayout, date); err != nil {
		return domain.DailySummary{}, ErrInvalidDate
	}
	return s.store.Summary(ctx, date)
}

func (s *Insights) today() string {
	return s.now().UTC().Format(storage.DateLayout)
}
