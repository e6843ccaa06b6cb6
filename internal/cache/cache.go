// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/tickerboard/internal/metrics"
)

// DefaultTTL is the lifetime of an entry when no TTL is configured.
const DefaultTTL = time.Hour

// Clock supplies the current time. Tests inject a controllable clock so TTL
// expiry can be exercised without sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Entry represents a cached value and the time it was stored.
// Entries are immutable; a refresh replaces the whole entry.
type Entry struct {
	Value    any
	StoredAt time.Time
}

// Cache provides a thread-safe in-memory cache with lazy TTL expiry.
//
// Expired entries are never deleted. A read simply ignores them and the next
// successful Set overwrites them. The key set is small and fixed in practice,
// so unbounded growth is accepted.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	clock   Clock

	singleFlight bool
	group        singleflight.Group

	stats Stats
}

// Stats tracks cache performance counters.
type Stats struct {
	mu     sync.RWMutex
	Hits   int64
	Misses int64
	Writes int64
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(c *Cache) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithSingleFlight makes concurrent Load calls for the same cold key share a
// single loader invocation.
func WithSingleFlight(enabled bool) Option {
	return func(c *Cache) {
		c.singleFlight = enabled
	}
}

// New creates a cache whose entries are considered fresh for ttl.
//
// Example:
//
//	c := cache.New(time.Hour)
//	c.Set("quote:^spx", 5123.4)
//	if v, ok := c.Get("quote:^spx"); ok {
//	    // use v
//	}
func New(ttl time.Duration, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		clock:   SystemClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the stored value if an entry exists and is no older than the
// TTL. An entry exactly TTL old is still fresh.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists || c.clock.Now().Sub(entry.StoredAt) > c.ttl {
		c.recordMiss()
		return nil, false
	}

	c.recordHit()
	return entry.Value, true
}

// Set stores value under key with the current time, replacing any prior entry.
func (c *Cache) Set(key string, value any) {
	now := c.clock.Now()

	c.mu.Lock()
	c.entries[key] = Entry{Value: value, StoredAt: now}
	size := len(c.entries)
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Writes++
	c.stats.mu.Unlock()

	metrics.CacheEntries.Set(float64(size))
}

// Len returns the number of stored entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Lookup is a typed Get. A stored value of a different type counts as absent.
func Lookup[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Load returns the cached value for key or calls fn to produce it.
//
// The result of fn is stored only when fn returns a nil error, so failures are
// retried on the next call. On error the value fn returned is passed back
// uncached, letting fn supply a degraded result. With single-flight enabled, concurrent misses on
// the same key wait for one fn call instead of each calling out.
func Load[T any](ctx context.Context, c *Cache, key string, fn func(context.Context) (T, error)) (T, error) {
	if v, ok := Lookup[T](c, key); ok {
		return v, nil
	}

	if !c.singleFlight {
		v, err := fn(ctx)
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	}

	res, err, _ := c.group.Do(key, func() (any, error) {
		// Another caller may have filled the key while we queued.
		if v, ok := Lookup[T](c, key); ok {
			return v, nil
		}
		v, err := fn(ctx)
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	})
	typed, _ := res.(T)
	return typed, err
}

// GetStats returns a copy of the current counters.
func (c *Cache) GetStats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	return Stats{
		Hits:   c.stats.Hits,
		Misses: c.stats.Misses,
		Writes: c.stats.Writes,
	}
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

func (c *Cache) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
	metrics.CacheHits.Inc()
}

func (c *Cache) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
	metrics.CacheMisses.Inc()
}
