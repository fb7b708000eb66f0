package cache

import (
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/golang/groupcache/singleflight"
)

type Cache[K string, V any] struct {
	cache *ristretto.Cache[K, V]
	group singleflight.Group
	// 0 means no expiry
	ttl time.Duration

	// generation is bumped by every eviction, a load that overlaps one is not stored
	mu         sync.Mutex
	generation uint64
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.cache.Get(key)
}

func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) bool {
	return c.cache.SetWithTTL(key, value, 1, ttl)
}

// ComputeIfAbsent loads a missing key once for all concurrent callers.
// Errors are not cached.
func (c *Cache[K, V]) ComputeIfAbsent(key K, f func() (V, error)) (*V, error) {
	v, ok := c.cache.Get(key)
	if ok {
		return &v, nil
	}
	cv, err := c.group.Do(string(key), func() (any, error) {
		gen := c.currentGeneration()
		r, err := f()
		if err != nil {
			return nil, err
		}
		c.storeIfCurrent(key, r, gen)
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	r := cv.(V)
	return &r, nil
}

func (c *Cache[K, V]) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *Cache[K, V]) storeIfCurrent(key K, value V, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return
	}
	c.cache.SetWithTTL(key, value, 1, c.ttl)
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.cache.Del(key)
}

func (c *Cache[K, V]) EvictAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.cache.Clear()
}

// Wait blocks until buffered writes are applied.
func (c *Cache[K, V]) Wait() {
	c.cache.Wait()
}

func NewCache[K string, V any](ttl time.Duration, maxEntries int64) *Cache[K, V] {
	if maxEntries <= 0 {
		maxEntries = 500
	}
	cache, _ := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
		// cost counts entries
		IgnoreInternalCost: true,
	})
	if ttl < 0 {
		ttl = 0
	}
	return &Cache[K, V]{
		cache: cache,
		ttl:   ttl,
	}
}
