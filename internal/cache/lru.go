// Package cache keeps raw response bodies of slow-changing catalog
// endpoints (gods, items, skins, patch info) so repeated lookups do not
// spend the daily request quota.
package cache

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ResponseCache is a thread-safe, size- and age-bounded LRU of response
// bodies keyed by [Key].
type ResponseCache struct {
	cache *expirable.LRU[string, string]
}

// NewResponseCache creates a cache holding at most maxItems bodies, each for
// at most ttl. A non-positive ttl keeps entries until they are evicted by
// size. maxItems must be positive.
func NewResponseCache(maxItems int, ttl time.Duration) *ResponseCache {
	if ttl < 0 {
		ttl = 0
	}
	return &ResponseCache{cache: expirable.NewLRU[string, string](maxItems, nil, ttl)}
}

// Key builds the cache key for a request. Signature, session and timestamp
// are not part of the key.
func Key(format, method string, args ...string) string {
	parts := make([]string, 0, len(args)+2)
	parts = append(parts, format, method)
	parts = append(parts, args...)
	return strings.Join(parts, "/")
}

// Get returns the cached body and true, or "" and false on a miss.
func (c *ResponseCache) Get(key string) (string, bool) {
	return c.cache.Get(key)
}

// Put adds or replaces the body stored under key.
func (c *ResponseCache) Put(key, body string) {
	c.cache.Add(key, body)
}

// Purge drops all entries.
func (c *ResponseCache) Purge() {
	c.cache.Purge()
}

// Len returns the current number of items in the cache.
func (c *ResponseCache) Len() int {
	return c.cache.Len()
}
