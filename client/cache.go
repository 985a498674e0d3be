package client

import (
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	data    []byte
	expires time.Time
}

// responseCache is a small in-process TTL cache for GET responses. Keys are
// "METHOD path?query"; invalidation works on the resource path prefix so a
// mutation drops every cached list and detail view of that resource.
type responseCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *responseCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, found := c.entries[key]
	if !found {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.data, true
}

func (c *responseCache) set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{data: data, expires: time.Now().Add(c.ttl)}
}

// invalidate drops every entry whose path starts with the given resource
// path, e.g. "/api/v1/blogposts".
func (c *responseCache) invalidate(pathPrefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		_, path, found := strings.Cut(key, " ")
		if found && strings.HasPrefix(path, pathPrefix) {
			delete(c.entries, key)
		}
	}
}

func (c *responseCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}
