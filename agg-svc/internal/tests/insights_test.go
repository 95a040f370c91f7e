package tests

import (
	"context"
	"testing"
	"time"

	"restaurant-recommender/agg-svc/internal/domain"
	"restaurant-recommender/agg-svc/internal/mocks"
	"restaurant-recommender/agg-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func TestInsights_TopQueries(t *testing.T) {
	tests := []struct {
		name         string
		period       string
		limit        int
		prepareMocks func(store *mocks.StoreInterface)
		wantErr      error
	}{
		{
			name:   "all time with default limit",
			period: "",
			prepareMocks: func(store *mocks.StoreInterface) {
				store.On("TopQueries", mock.Anything, "", int64(10)).Return([]domain.QueryStat{}, nil).Once()
			},
		},
		{
			name:   "today",
			period: service.PeriodToday,
			limit:  3,
			prepareMocks: func(store *mocks.StoreInterface) {
				store.On("TopQueries", mock.Anything, mock.MatchedBy(isDate), int64(3)).Return([]domain.QueryStat{}, nil).Once()
			},
		},
		{
			name:   "limit capped",
			period: service.PeriodAll,
			limit:  5000,
			prepareMocks: func(store *mocks.StoreInterface) {
				store.On("TopQueries", mock.Anything, "", int64(100)).Return([]domain.QueryStat{}, nil).Once()
			},
		},
		{
			name:         "bad period",
			period:       "week",
			prepareMocks: func(*mocks.StoreInterface) {},
			wantErr:      service.ErrInvalidPeriod,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewStoreInterface(t)
			testCase.prepareMocks(store)

			_, err := service.NewInsights(store).TopQueries(context.Background(), testCase.period, testCase.limit)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInsights_Summary(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("Summary", mock.Anything, "2024-03-05").Return(domain.DailySummary{Date: "2024-03-05"}, nil).Once()
	store.On("Summary", mock.Anything, mock.MatchedBy(isDate)).Return(domain.DailySummary{}, nil).Once()
	svc := service.NewInsights(store)

	got, err := svc.Summary(context.Background(), "2024-03-05")
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-05", got.Date)

	_, err = svc.Summary(context.Background(), "")
	assert.NoError(t, err)

	_, err = svc.Summary(context.Background(), "05/03/2024")
	assert.ErrorIs(t, err, service.ErrInvalidDate)
}
