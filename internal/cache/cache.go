// Package cache memoizes source-adapter results keyed by source identity.
// It is strictly best-effort: a miss, an expired entry, or a cleared cache
// never surfaces as an error, the caller just falls through to a live fetch.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultTTL applies when Set is called with a zero duration.
const DefaultTTL = 5 * time.Minute

type entry struct {
	payload any
	expiry  time.Time
}

// Cache is a TTL-bounded in-memory store. Expired entries are purged lazily
// on the read that observes them, never by a background sweep.
type Cache struct {
	mu         sync.Mutex
	defaultTTL time.Duration
	now        func() time.Time
	entries    map[string]entry
}

// Option tweaks cache construction.
type Option func(*Cache)

// WithClock substitutes the time source, used by tests to step past expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// New builds a cache with the given default TTL. A non-positive TTL falls
// back to DefaultTTL.
func New(defaultTTL time.Duration, opts ...Option) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	c := &Cache{
		defaultTTL: defaultTTL,
		now:        time.Now,
		entries:    make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the stored payload for key, or nil/false when the key is
// absent or past its expiry. An expired entry is evicted on this read.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiry) {
		delete(c.entries, key)
		return nil, false
	}
	return e.payload, true
}

// Set stores payload under key with expiry now+ttl, overwriting any prior
// entry. A zero ttl uses the cache default.
func (c *Cache) Set(key string, payload any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{payload: payload, expiry: c.now().Add(ttl)}
}

// Invalidate clears the named keys, or every entry when called without
// arguments.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(keys) == 0 {
		c.entries = make(map[string]entry)
		return
	}
	for _, key := range keys {
		delete(c.entries, key)
	}
}

// Len reports the number of stored entries, including any not yet purged.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// KeyFor derives the cache key from the source kind, its locator, and a
// fingerprint of the request headers, so sources differing only in headers
// never share an entry.
func KeyFor(kind, locator string, headers map[string]string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\n%s\n", kind, locator)
	if len(headers) > 0 {
		names := make([]string, 0, len(headers))
		for name := range headers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(h, "%s:%s\n", strings.ToLower(name), headers[name])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
