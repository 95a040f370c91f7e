package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"restaurant-recommender/logging"
	"restaurant-recommender/metrics"
	"restaurant-recommender/web-svc/internal/domain"

	gobreaker "github.com/sony/gobreaker/v2"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const breakerName = "predict-backend"

// PredictClient calls the prediction backend once per query. It never
// retries; a tripped breaker fails fast so the caller can fall back.
type PredictClient struct {
	baseURL string
	client  HTTPClient
	cb      *gobreaker.CircuitBreaker[domain.PredictionResult]
}

func NewPredictClient(baseURL string, client HTTPClient) *PredictClient {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[domain.PredictionResult](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &PredictClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		cb:      cb,
	}
}

func (c *PredictClient) Predict(ctx context.Context, locality, cuisine string) (domain.PredictionResult, error) {
	result, err := c.cb.Execute(func() (domain.PredictionResult, error) {
		return c.do(ctx, locality, cuisine)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%w: %v", domain.ErrBreakerOpen, err)
		}
		metrics.BackendFailures.WithLabelValues(failureKind(err)).Inc()
		return domain.PredictionResult{}, err
	}
	return result, nil
}

func (c *PredictClient) do(ctx context.Context, locality, cuisine string) (domain.PredictionResult, error) {
	body, err := json.Marshal(map[string]string{
		"locality": strings.TrimSpace(locality),
		"cuisine":  strings.TrimSpace(cuisine),
	})
	if err != nil {
		return domain.PredictionResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.PredictionResult{}, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return domain.PredictionResult{}, &domain.HTTPStatusError{Code: resp.StatusCode}
	}

	var result domain.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.PredictionResult{}, fmt.Errorf("%w: %v", domain.ErrTimeout, err)
		}
		return domain.PredictionResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	switch result.Status {
	case domain.StatusSuccess, domain.StatusLocalityNotFound, domain.StatusCuisineNotFound:
	default:
		return domain.PredictionResult{}, fmt.Errorf("%w: status %q", domain.ErrMalformedResponse, result.Status)
	}
	if err := result.Validate(); err != nil {
		return domain.PredictionResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return result, nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrBreakerOpen):
		return "breaker_open"
	case errors.Is(err, domain.ErrTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrHTTPStatus):
		return "http_status"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	default:
		return "network"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
