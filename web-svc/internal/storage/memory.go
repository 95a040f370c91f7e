package storage

import (
	"context"
	"sync"

	"restaurant-recommender/web-svc/internal/domain"
	"restaurant-recommender/web-svc/internal/service"
)

// MemoryCache is a process-local prediction cache for one session.
// Entries are never evicted; the whole map goes away with the session.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[domain.QueryKey]domain.PredictionResult
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[domain.QueryKey]domain.PredictionResult)}
}

func (c *MemoryCache) Get(_ context.Context, key domain.QueryKey) (domain.PredictionResult, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.entries[key]
	return result, ok, nil
}

// Set keeps the first result stored for a key.
func (c *MemoryCache) Set(_ context.Context, key domain.QueryKey, result domain.PredictionResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists {
		c.entries[key] = result
	}
	return nil
}

func (c *MemoryCache) Discard(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[domain.QueryKey]domain.PredictionResult)
	return nil
}

func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

type MemoryCacheFactory struct{}

func (MemoryCacheFactory) NewCache(string) service.PredictionCache {
	return NewMemoryCache()
}
