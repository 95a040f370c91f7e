package tests

import (
	"context"
	"testing"
	"time"

	"restaurant-recommender/web-svc/internal/domain"
	"restaurant-recommender/web-svc/internal/service"
	"restaurant-recommender/web-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisFactory(t *testing.T) (*miniredis.Miniredis, storage.RedisCacheFactory) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, storage.RedisCacheFactory{Client: client, TTL: time.Hour}
}

func cacheBackends(t *testing.T) map[string]service.CacheFactory {
	_, redisFactory := newRedisFactory(t)
	return map[string]service.CacheFactory{
		"memory": storage.MemoryCacheFactory{},
		"redis":  redisFactory,
	}
}

func TestPredictionCache_SetThenGet(t *testing.T) {
	ctx := context.Background()
	key := domain.NewQueryKey("Vijay Nagar", "Chinese")
	value := domain.NewSuccess("Vijay Nagar", "Chinese", 4.3, []domain.Restaurant{{Name: "Golden Dragon", Rating: 4.6, Address: "123 Main Street, Vijay Nagar, Indore"}}, false)

	for name, factory := range cacheBackends(t) {
		t.Run(name, func(t *testing.T) {
			cache := factory.NewCache("session-1")

			_, ok, err := cache.Get(ctx, key)
			require.NoError(t, err)
			assert.False(t, ok, "unset key must be absent")

			require.NoError(t, cache.Set(ctx, key, value))
			got, ok, err := cache.Get(ctx, key)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, value, got)
		})
	}
}

func TestPredictionCache_FirstResolutionWins(t *testing.T) {
	ctx := context.Background()
	key := domain.NewQueryKey("Rau", "Cafe")
	first := domain.NewErrorResult("first")
	second := domain.NewErrorResult("second")

	for name, factory := range cacheBackends(t) {
		t.Run(name, func(t *testing.T) {
			cache := factory.NewCache("session-2")
			require.NoError(t, cache.Set(ctx, key, first))
			require.NoError(t, cache.Set(ctx, key, second))

			got, ok, err := cache.Get(ctx, key)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "first", got.Error)
		})
	}
}

func TestPredictionCache_DiscardAndIsolation(t *testing.T) {
	ctx := context.Background()
	key := domain.NewQueryKey("Rau", "Cafe")

	for name, factory := range cacheBackends(t) {
		t.Run(name, func(t *testing.T) {
			mine := factory.NewCache("session-a")
			theirs := factory.NewCache("session-b")
			require.NoError(t, mine.Set(ctx, key, domain.NewErrorResult("mine")))

			_, ok, err := theirs.Get(ctx, key)
			require.NoError(t, err)
			assert.False(t, ok, "sessions must not share entries")

			require.NoError(t, mine.Discard(ctx))
			_, ok, err = mine.Get(ctx, key)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestRedisCache_SessionTTL(t *testing.T) {
	server, factory := newRedisFactory(t)
	cache := storage.NewRedisCache(factory.Client, "ttl-session", 30*time.Minute)

	require.NoError(t, cache.Set(context.Background(), domain.NewQueryKey("Rau", "Cafe"), domain.NewErrorResult("x")))

	assert.True(t, server.Exists("prediction:ttl-session"))
	assert.Equal(t, 30*time.Minute, server.TTL("prediction:ttl-session"))
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	server, factory := newRedisFactory(t)
	cache := storage.NewRedisCache(factory.Client, "bad", 0)
	server.HSet("prediction:bad", "rau_cafe", "{not json")

	_, ok, err := cache.Get(context.Background(), domain.NewQueryKey("Rau", "Cafe"))
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSessionStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := service.NewSessionStore(storage.MemoryCacheFactory{}, time.Hour)

	session, err := store.Open(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)

	got, ok := store.Get(ctx, session.ID)
	assert.True(t, ok)
	assert.Same(t, session, got)

	require.NoError(t, session.Cache.Set(ctx, domain.NewQueryKey("Rau", "Cafe"), domain.NewErrorResult("x")))
	require.NoError(t, store.Close(ctx, session.ID))

	_, ok = store.Get(ctx, session.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, session.Cache.(*storage.MemoryCache).Len())
	assert.NoError(t, store.Close(ctx, "unknown"))
}

func TestSessionStore_SweepReclaimsIdleSessions(t *testing.T) {
	ctx := context.Background()
	store := service.NewSessionStore(storage.MemoryCacheFactory{}, time.Hour)

	first, err := store.Open(ctx)
	require.NoError(t, err)
	require.NoError(t, first.Cache.Set(ctx, domain.NewQueryKey("Rau", "Cafe"), domain.NewErrorResult("x")))
	second, err := store.Open(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, store.Sweep(ctx, time.Now().Add(30*time.Minute)))

	later := time.Now().Add(90 * time.Minute)
	assert.Equal(t, 2, store.Sweep(ctx, later))

	_, ok := store.Get(ctx, first.ID)
	assert.False(t, ok)
	_, ok = store.Get(ctx, second.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, first.Cache.(*storage.MemoryCache).Len())
}

func TestSessionStore_GetKeepsSessionAlive(t *testing.T) {
	ctx := context.Background()
	store := service.NewSessionStore(storage.MemoryCacheFactory{}, 50*time.Millisecond)

	session, err := store.Open(ctx)
	require.NoError(t, err)

	time.Sleep(80 * time.Millisecond)
	_, ok := store.Get(ctx, session.ID)
	require.True(t, ok)

	assert.Equal(t, 0, store.Sweep(ctx, time.Now()))
	assert.Equal(t, 1, store.Sweep(ctx, time.Now().Add(time.Second)))
}

func TestSessionStore_ZeroTTLNeverSweeps(t *testing.T) {
	ctx := context.Background()
	store := service.NewSessionStore(storage.MemoryCacheFactory{}, 0)

	session, err := store.Open(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, store.Sweep(ctx, time.Now().Add(24*time.Hour)))
	_, ok := store.Get(ctx, session.ID)
	assert.True(t, ok)
}
