// Package cache resolves recipe and ingredient references to the entities
// they point at, memoizing every id variant an entity exposes.
package cache

import (
	"sync"

	"codcoz/cmd/internal/domain/ident"
)

// Entity is anything a menu slot can reference.
type Entity interface {
	// IdentityKeys returns the raw values of every id-like field the
	// entity carries ("id" and "_id"). Blank values are allowed.
	IdentityKeys() []string
	DisplayName() string
}

// Cache maps normalized ids to entities. Entries are never evicted; a cache
// is expected to live as long as a single menu view.
type Cache[T Entity] struct {
	mu      sync.Mutex
	entries map[string]T
	last    []T
}

func New[T Entity]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]T)}
}

// Ingest inserts every entity under each of its normalized ids. Re-ingesting
// an entity overwrites its previous entry.
func (c *Cache[T]) Ingest(entities []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range entities {
		c.put(e)
	}
	c.last = append([]T(nil), entities...)
}

// Lookup returns the entity known under rawID. On a cache miss it scans the
// most recently ingested list and memoizes a match before returning it.
func (c *Cache[T]) Lookup(rawID any) (T, bool) {
	var zero T

	key, ok := ident.Normalize(rawID)
	if !ok {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, hit := c.entries[key]; hit {
		return e, true
	}

	for _, e := range c.last {
		if matches(e, key) {
			c.put(e)
			c.entries[key] = e
			return e, true
		}
	}
	return zero, false
}

// NameOr resolves rawID and returns the entity's display name, or fallback
// when nothing matches.
func (c *Cache[T]) NameOr(rawID any, fallback string) (string, bool) {
	e, ok := c.Lookup(rawID)
	if !ok {
		return fallback, false
	}
	return e.DisplayName(), true
}

// Len returns the number of distinct keys held.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache[T]) put(e T) {
	for _, raw := range e.IdentityKeys() {
		if key, ok := ident.Normalize(raw); ok {
			c.entries[key] = e
		}
	}
}

func matches(e Entity, key string) bool {
	for _, raw := range e.IdentityKeys() {
		if k, ok := ident.Normalize(raw); ok && k == key {
			return true
		}
	}
	return false
}
