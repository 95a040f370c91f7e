package main

import (
	"context"
	"errors"

	"restaurant-recommender/agg-svc/internal/service"
	"restaurant-recommender/agg-svc/internal/storage"
	"restaurant-recommender/config"
	"restaurant-recommender/logging"

	httpapi "restaurant-recommender/agg-svc/internal/api/http"
)

func main() {
	cfg := config.LoadAgg()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewRedisStore(rdb, cfg.DailyTTL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if reader := config.NewKafkaReader(cfg.EventsTopic, cfg.GroupID); reader != nil {
		defer reader.Close()
		consumer := service.NewConsumer(reader, store)
		go func() {
			if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logging.Error().Err(err).Msg("event consumer stopped")
			}
		}()
	} else {
		logging.Warn().Msg("KAFKA_BROKER not set, serving insights without consuming events")
	}

	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(httpapi.NewHandler(service.NewInsights(store))))
}
