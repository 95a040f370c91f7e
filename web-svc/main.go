package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"restaurant-recommender/config"
	"restaurant-recommender/logging"
	httpapi "restaurant-recommender/web-svc/internal/api/http"
	"restaurant-recommender/web-svc/internal/client"
	"restaurant-recommender/web-svc/internal/service"
	"restaurant-recommender/web-svc/internal/storage"
)

func main() {
	cfg := config.LoadWeb()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	caches := cacheFactory(cfg)

	publisher := storage.NewKafkaPublisher(nil)
	writer := config.NewKafkaWriter(cfg.EventsTopic)
	if writer != nil {
		publisher = storage.NewKafkaPublisher(writer)
	}

	httpClient := &http.Client{}
	predictor := service.NewPredictor(
		client.NewPredictClient(cfg.PredictURL, httpClient),
		service.NewMockGenerator(),
		publisher,
		cfg.FallbackPolicy,
		cfg.PredictTimeout,
	)
	feedback := service.NewFeedbackService(
		client.NewEmailJSMailer(cfg.Mail.APIURL, cfg.Mail.PublicKey, cfg.Mail.AccessToken, httpClient),
		publisher,
		service.DefaultQRGenerator{},
		cfg.Mail,
		cfg.PublicURL,
	)

	sessions := service.NewSessionStore(caches, cfg.SessionTTL)
	go sessions.RunSweeper(ctx, cfg.SessionSweep)

	handler := httpapi.NewHandler(predictor, sessions, feedback)

	logging.Info().
		Str("policy", cfg.FallbackPolicy).
		Str("cache", cfg.CacheBackend).
		Dur("timeout", cfg.PredictTimeout).
		Str("backend", cfg.PredictURL).
		Msg("prediction flow configured")

	if err := httpapi.StartServer(ctx, cfg.Addr, httpapi.NewRouter(handler, cfg.AllowedOrigins)); err != nil {
		logging.Error().Err(err).Msg("web service failed")
	}

	predictor.Wait()
	if writer != nil {
		if err := writer.Close(); err != nil {
			logging.Error().Err(err).Msg("failed to flush kafka writer")
		}
	}
	logging.Info().Msg("web service stopped")
}

func cacheFactory(cfg config.WebConfig) service.CacheFactory {
	if cfg.CacheBackend == config.CacheBackendRedis {
		return storage.RedisCacheFactory{Client: config.MustInitRedis(), TTL: cfg.SessionTTL}
	}
	return storage.MemoryCacheFactory{}
}
