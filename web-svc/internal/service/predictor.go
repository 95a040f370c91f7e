package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"restaurant-recommender/config"
	"restaurant-recommender/logging"
	"restaurant-recommender/metrics"
	"restaurant-recommender/web-svc/internal/domain"
)

var ErrMissingInput = errors.New("please enter both locality and cuisine")

// publishTimeout bounds a resolution event write once the caller has its answer.
const publishTimeout = 5 * time.Second

type Predictor struct {
	backend   PredictionBackend
	generator Generator
	publisher EventPublisher
	policy    string
	timeout   time.Duration

	pending sync.WaitGroup
}

// NewPredictor wires the fallback chain. A nil backend behaves like the
// always-mock policy; timeout <= 0 disables the request deadline.
func NewPredictor(backend PredictionBackend, generator Generator, publisher EventPublisher, policy string, timeout time.Duration) *Predictor {
	if policy != config.PolicyAlwaysMock {
		policy = config.PolicyMockOnFailure
	}
	return &Predictor{
		backend:   backend,
		generator: generator,
		publisher: publisher,
		policy:    policy,
		timeout:   timeout,
	}
}

// Predict runs CacheCheck -> (CacheHit | Requesting -> Success | Failure ->
// MockGenerate). Every path ends with a result except empty input and a
// cancelled caller context.
func (p *Predictor) Predict(ctx context.Context, session *Session, locality, cuisine string) (domain.Outcome, error) {
	key := domain.NewQueryKey(locality, cuisine)
	if key.Empty() {
		return domain.Outcome{}, ErrMissingInput
	}

	outcome, err := p.predictLocked(ctx, session, key, locality, cuisine)
	if err != nil {
		return domain.Outcome{}, err
	}
	if outcome.Source != domain.SourceCache {
		p.publish(ctx, session.ID, key, outcome.Source)
	}
	return outcome, nil
}

func (p *Predictor) predictLocked(ctx context.Context, session *Session, key domain.QueryKey, locality, cuisine string) (domain.Outcome, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	log := logging.Component("predictor").With().Str("session", session.ID).Str("key", key.String()).Logger()

	cached, ok, err := session.Cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("cache lookup failed, resolving fresh")
	}
	if ok {
		metrics.PredictionCacheHits.Inc()
		log.Debug().Msg("using cached result")
		return domain.Outcome{Result: cached, Source: domain.SourceCache}, nil
	}
	metrics.PredictionCacheMisses.Inc()

	result, source := p.resolve(ctx, key, locality, cuisine)
	// The submitter went away; nothing will render, so nothing is cached.
	if errors.Is(ctx.Err(), context.Canceled) {
		return domain.Outcome{}, ctx.Err()
	}

	if err := session.Cache.Set(ctx, key, result); err != nil {
		log.Warn().Err(err).Msg("failed to cache result")
	}
	metrics.PredictionsResolved.WithLabelValues(string(source)).Inc()

	return domain.Outcome{Result: result, Source: source}, nil
}

func (p *Predictor) resolve(ctx context.Context, key domain.QueryKey, locality, cuisine string) (domain.PredictionResult, domain.Source) {
	log := logging.Component("predictor").With().Str("key", key.String()).Logger()

	if p.policy == config.PolicyAlwaysMock || p.backend == nil {
		return p.generator.Generate(key), domain.SourceMock
	}

	reqCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	result, err := p.backend.Predict(reqCtx, locality, cuisine)
	if err == nil {
		return result, domain.SourceAPI
	}

	switch {
	case errors.Is(err, domain.ErrTimeout):
		log.Info().Err(err).Msg("request timed out, falling back to mock data")
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrBreakerOpen):
		log.Info().Err(err).Msg("network error, falling back to mock data")
	default:
		log.Info().Err(err).Msg("server error, falling back to mock data")
	}
	return p.generator.Generate(key), domain.SourceMock
}

// publish writes the resolution event in the background so a slow broker
// never holds up the caller or the session lock.
func (p *Predictor) publish(ctx context.Context, sessionID string, key domain.QueryKey, source domain.Source) {
	if p.publisher == nil {
		return
	}
	event := domain.Event{
		Type:      domain.EventPredictionResolved,
		SessionID: sessionID,
		Locality:  key.Locality,
		Cuisine:   key.Cuisine,
		Source:    source,
		Timestamp: time.Now(),
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)

	p.pending.Add(1)
	go func() {
		defer p.pending.Done()
		defer cancel()
		if err := p.publisher.Publish(pubCtx, event); err != nil {
			logging.Warn().Err(err).Str("key", key.String()).Msg("failed to publish prediction event")
		}
	}()
}

// Wait blocks until every in-flight resolution event has been handed to the
// publisher. Call it before closing the publisher's writer.
func (p *Predictor) Wait() {
	p.pending.Wait()
}
