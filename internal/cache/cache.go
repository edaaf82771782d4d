// Package cache memoizes loaded collections until they are invalidated.
package cache

import "sync"

// Loader loads the value for a key.
type Loader[K comparable, V any] func(key K) (V, error)

// Getter returns the value for a key, loading it if needed.
type Getter[K comparable, V any] interface {
	GetOrLoad(key K) (V, error)
}

// Cache keeps the last successful load per key.
//
// Errors are never cached. A value loaded while the key was invalidated is
// returned to its caller but not stored, so an invalidation is never lost to
// an in-flight load.
type Cache[K comparable, V any] struct {
	load Loader[K, V]

	mu      sync.Mutex
	entries map[K]V
	gen     map[K]uint64
	epoch   uint64
}

// New creates a Cache backed by load.
func New[K comparable, V any](load func(key K) (V, error)) *Cache[K, V] {
	return &Cache[K, V]{
		load:    load,
		entries: make(map[K]V),
		gen:     make(map[K]uint64),
	}
}

// GetOrLoad returns the cached value for key, loading it on a miss.
func (c *Cache[K, V]) GetOrLoad(key K) (V, error) {
	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return v, nil
	}
	startGen, startEpoch := c.gen[key], c.epoch
	c.mu.Unlock()

	v, err := c.load(key)
	if err != nil {
		return v, err
	}

	c.mu.Lock()
	if c.gen[key] == startGen && c.epoch == startEpoch {
		c.entries[key] = v
	}
	c.mu.Unlock()
	return v, nil
}

// Invalidate drops the cached values for keys.
func (c *Cache[K, V]) Invalidate(keys ...K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.gen[key]++
	}
}

// InvalidateAll drops every cached value.
func (c *Cache[K, V]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]V)
	c.epoch++
}

// Len returns the number of cached keys.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// LoaderFunc adapts a Loader to Getter without caching.
type LoaderFunc[K comparable, V any] func(key K) (V, error)

// GetOrLoad calls f.
func (f LoaderFunc[K, V]) GetOrLoad(key K) (V, error) {
	return f(key)
}
