// Package store holds the service's in-memory state: cached backend query
// results and per-session conversation logs. Nothing here survives a
// process restart.
package store

import (
	"fmt"
	"sync"
	"time"
)

type entry[T any] struct {
	val     T
	expires time.Time
}

// ResponseCache is a TTL cache for backend query results, keyed by query.
// Safe for concurrent use.
type ResponseCache[T any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry[T]
	now     func() time.Time
}

func NewResponseCache[T any](ttl time.Duration) *ResponseCache[T] {
	return &ResponseCache[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

func (c *ResponseCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expires) {
		var zero T
		return zero, false
	}
	return e.val, true
}

func (c *ResponseCache[T]) Set(key string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{val: v, expires: c.now().Add(c.ttl)}
}

// Key builds a cache key for an org-scoped windowed query.
func Key(kind, orgID string, days int) string {
	return fmt.Sprintf("%s|%s|%d", kind, orgID, days)
}
