// Package cache provides a small in-process TTL cache used to avoid
// redundant scraping calls within a configurable window.
package cache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Clock supplies the current time. Tests inject a fake clock to control
// expiry deterministically.
type Clock func() time.Time

// Options configures a Cache.
type Options struct {
	// TTL is the default entry lifetime used by Set.
	TTL time.Duration
	// Clock defaults to time.Now when nil.
	Clock Clock
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a process-wide key/value store with per-entry expiry. Entries are
// immutable once set; expiry is checked lazily on read.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	opts  Options
	sf    singleflight.Group
}

// New creates a cache with the given options.
func New(opts Options) *Cache {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Cache{
		items: make(map[string]entry),
		opts:  opts,
	}
}

// Get returns the cached value for key. A read of an expired entry removes it
// and reports absence.
func (c *Cache) Get(key string) (any, bool) {
	now := c.opts.Clock()
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if now.After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: the entry may have been replaced.
		if current, still := c.items[key]; still && now.After(current.expiresAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores a value under key with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetTTL(key, value, c.opts.TTL)
}

// SetTTL stores a value under key with an explicit TTL.
func (c *Cache) SetTTL(key string, value any, ttl time.Duration) {
	e := entry{value: value, expiresAt: c.opts.Clock().Add(ttl)}
	c.mu.Lock()
	c.items[key] = e
	c.mu.Unlock()
}

// Loader fetches the value for a key on cache miss.
type Loader func(ctx context.Context) (any, error)

// GetOrLoad returns the cached value or runs loader to fill it. Concurrent
// loads for the same key are collapsed into a single call; load failures are
// not cached.
func (c *Cache) GetOrLoad(ctx context.Context, key string, loader Loader) (any, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err, _ := c.sf.Do(key, func() (any, error) {
		if cached, ok := c.Get(key); ok {
			return cached, nil
		}
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		c.Set(key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// MakeKey builds a case-insensitive, order-independent cache key from parts.
func MakeKey(parts ...string) string {
	sorted := make([]string, len(parts))
	for i, part := range parts {
		sorted[i] = strings.ToLower(part)
	}
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
