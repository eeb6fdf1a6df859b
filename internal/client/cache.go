package client

import (
	"strings"
	"sync"
)

// queryCache keeps raw response bodies keyed by request path and query.
// Every invalidation bumps a generation so a fetch that started earlier
// cannot repopulate an entry with stale data.
type queryCache struct {
	mu    sync.RWMutex
	store map[string][]byte
	gen   uint64
}

func newQueryCache() *queryCache {
	return &queryCache{store: make(map[string][]byte)}
}

func (c *queryCache) get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.store[key]
	return val, ok
}

func (c *queryCache) generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// setIf stores value unless the cache was invalidated after gen was read.
func (c *queryCache) setIf(gen uint64, key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	c.store[key] = value
}

// invalidate drops every entry whose key starts with prefix.
func (c *queryCache) invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	for key := range c.store {
		if strings.HasPrefix(key, prefix) {
			delete(c.store, key)
		}
	}
}

func (c *queryCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
