package classifier

import (
	"context"
	"sync"
)

// Cache stores results by message id. Implementations must be safe for
// concurrent use. A Get error is treated as a miss and a Set error is logged
// and ignored.
type Cache interface {
	Get(ctx context.Context, id string) (Result, bool, error)
	Set(ctx context.Context, id string, r Result) error
}

type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]Result
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: map[string]Result{}}
}

func (c *MemoryCache) Get(_ context.Context, id string) (Result, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.items[id]
	return r, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, id string, r Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = r
	return nil
}

func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *MemoryCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	return nil
}

func (c *MemoryCache) Reset(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
	return nil
}

func (c *MemoryCache) Count(_ context.Context) (int, error) {
	return c.Len(), nil
}
