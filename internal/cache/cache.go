// Package cache provides the bounded, expiring lookup table used to memoize
// resolved breed images.
package cache

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultSize bounds the number of entries when no size is configured.
	DefaultSize = 256
	// DefaultTTL is how long an entry lives when no TTL is configured.
	DefaultTTL = time.Hour
)

// Cache is a size-bounded LRU whose entries expire after a fixed TTL.
// It is safe for concurrent use.
type Cache[V any] struct {
	lru *expirable.LRU[string, V]
}

// New builds a cache holding at most size entries for ttl each.
// A non-positive size uses DefaultSize; a zero ttl disables expiry.
func New[V any](size int, ttl time.Duration) *Cache[V] {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl < 0 {
		ttl = DefaultTTL
	}
	return &Cache[V]{lru: expirable.NewLRU[string, V](size, nil, ttl)}
}

// Lookup returns the value stored under key.
func (c *Cache[V]) Lookup(key string) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}
	return c.lru.Get(key)
}

// Store records value under key, replacing any previous value.
func (c *Cache[V]) Store(key string, value V) {
	if c == nil {
		return
	}
	c.lru.Add(key, value)
}

// Len returns the number of live entries.
func (c *Cache[V]) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// BreedKey builds the cache key for a breed image: the lowercased species,
// an underscore, then the breed name as given.
func BreedKey(species, breed string) string {
	return strings.ToLower(strings.TrimSpace(species)) + "_" + strings.TrimSpace(breed)
}
