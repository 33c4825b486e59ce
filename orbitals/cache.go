package orbitals

import (
	"fmt"
	"log/slog"
)

// Releasable is anything holding reference-counted block storage.
// Every blocked tensor and overlay satisfies it.
type Releasable interface {
	Release()
}

// Cache owns intermediate tensors for one calculation: a keyed store
// that releases whatever it displaces and everything left at Close.
// It replaces global scratch state with an explicit lifecycle.
//
// Like the tensors it holds, a Cache is not safe for concurrent use.
type Cache struct {
	log     *slog.Logger
	entries map[string]Releasable
	closed  bool
}

// NewCache creates an empty cache. A nil logger discards diagnostics.
func NewCache(log *slog.Logger) *Cache {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Cache{log: log, entries: make(map[string]Releasable)}
}

// Put stores val under key, releasing any distinct entry it displaces.
// Panics if the cache is closed.
func (c *Cache) Put(key string, val Releasable) {
	if c.closed {
		panic(fmt.Sprintf("put %q into closed cache", key))
	}
	if old, ok := c.entries[key]; ok && old != val {
		old.Release()
		c.log.Debug("cache displaced entry", "key", key)
	}
	c.entries[key] = val
	c.log.Debug("cache stored entry", "key", key, "entries", len(c.entries))
}

// Get returns the entry under key, if any. Ownership stays with the
// cache.
func (c *Cache) Get(key string) (Releasable, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Pop removes and returns the entry under key without releasing it:
// ownership transfers to the caller.
func (c *Cache) Pop(key string) (Releasable, bool) {
	v, ok := c.entries[key]
	if ok {
		delete(c.entries, key)
		c.log.Debug("cache released ownership", "key", key)
	}
	return v, ok
}

// Delete removes and releases the entry under key, if any.
func (c *Cache) Delete(key string) {
	if v, ok := c.entries[key]; ok {
		v.Release()
		delete(c.entries, key)
		c.log.Debug("cache deleted entry", "key", key)
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Close releases every entry. Closing twice is a no-op; Put after
// Close panics.
func (c *Cache) Close() {
	if c.closed {
		return
	}
	for key, v := range c.entries {
		v.Release()
		delete(c.entries, key)
	}
	c.closed = true
	c.log.Debug("cache closed")
}
