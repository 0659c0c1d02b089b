package cache

import (
	"context"
	"sync"

	"github.com/Dali-debug/Jinen/internal/metrics"
	"github.com/Dali-debug/Jinen/internal/records"
)

type NurseryLister interface {
	ListNurseries(ctx context.Context) ([]records.Nursery, error)
}

// NurseryCache fronts the browse list. The full list is loaded once from
// the store and handed out until a nursery mutation invalidates it; the
// browse view is read far more often than nurseries change.
type NurseryCache struct {
	mu        sync.RWMutex
	nurseries []records.Nursery
	valid     bool
	repo      NurseryLister
}

func NewNurseryCache(repo NurseryLister) *NurseryCache {
	return &NurseryCache{repo: repo}
}

// List returns a copy of the cached list, loading it on a miss.
func (c *NurseryCache) List(ctx context.Context) ([]records.Nursery, error) {
	c.mu.RLock()
	if c.valid {
		cached := copyNurseries(c.nurseries)
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	nurseries, err := c.repo.ListNurseries(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.nurseries = nurseries
	c.valid = true
	metrics.NurseryCacheItems.Set(float64(len(nurseries)))
	c.mu.Unlock()

	return copyNurseries(nurseries), nil
}

func (c *NurseryCache) Invalidate() {
	c.mu.Lock()
	c.nurseries = nil
	c.valid = false
	metrics.NurseryCacheItems.Set(0)
	c.mu.Unlock()
}

func copyNurseries(nurseries []records.Nursery) []records.Nursery {
	out := make([]records.Nursery, len(nurseries))
	copy(out, nurseries)
	return out
}
