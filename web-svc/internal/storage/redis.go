package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restaurant-recommender/web-svc/internal/domain"
	"restaurant-recommender/web-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

// RedisCache keeps one hash per session: field = query key, value = JSON
// result. The session TTL is refreshed on every write.
type RedisCache struct {
	Client    *redis.Client
	SessionID string
	TTL       time.Duration
}

func NewRedisCache(client *redis.Client, sessionID string, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, SessionID: sessionID, TTL: ttl}
}

func (c *RedisCache) SessionKey() string {
	return "prediction:" + c.SessionID
}

func (c *RedisCache) Get(ctx context.Context, key domain.QueryKey) (domain.PredictionResult, bool, error) {
	raw, err := c.Client.HGet(ctx, c.SessionKey(), key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.PredictionResult{}, false, nil
	}
	if err != nil {
		return domain.PredictionResult{}, false, err
	}

	var result domain.PredictionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.PredictionResult{}, false, fmt.Errorf("decode cached result: %w", err)
	}
	return result, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key domain.QueryKey, result domain.PredictionResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if err := c.Client.HSetNX(ctx, c.SessionKey(), key.String(), payload).Err(); err != nil {
		return err
	}
	if c.TTL > 0 {
		return c.Client.Expire(ctx, c.SessionKey(), c.TTL).Err()
	}
	return nil
}

func (c *RedisCache) Discard(ctx context.Context) error {
	return c.Client.Del(ctx, c.SessionKey()).Err()
}

type RedisCacheFactory struct {
	Client *redis.Client
	TTL    time.Duration
}

func (f RedisCacheFactory) NewCache(sessionID string) service.PredictionCache {
	return NewRedisCache(f.Client, sessionID, f.TTL)
}
