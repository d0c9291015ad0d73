// Package cache provides a small in-memory TTL cache used to avoid
// re-querying signal providers for domains seen earlier in the session.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// entry is a cached item with its expiry and LRU position.
type entry struct {
	key       string
	value     interface{}
	expiresAt time.Time
	element   *list.Element
}

// TTLCache is an in-memory LRU cache with per-item TTL.
type TTLCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*entry
	lru      *list.List
}

// New creates a cache holding at most capacity items; the least recently
// used item is evicted when full. Non-positive capacity defaults to 256.
func New(capacity int) *TTLCache {
	if capacity <= 0 {
		capacity = 256
	}
	return &TTLCache{
		capacity: capacity,
		items:    make(map[string]*entry),
		lru:      list.New(),
	}
}

// Get returns the value for key and whether it was present and fresh.
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.remove(e)
		return nil, false
	}
	c.lru.MoveToFront(e.element)
	return e.value, true
}

// Set stores value under key for ttl. A zero ttl never expires.
func (c *TTLCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}

	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expires
		c.lru.MoveToFront(e.element)
		return
	}

	if len(c.items) >= c.capacity {
		if oldest := c.lru.Back(); oldest != nil {
			c.remove(oldest.Value.(*entry))
		}
	}

	e := &entry{key: key, value: value, expiresAt: expires}
	e.element = c.lru.PushFront(e)
	c.items[key] = e
}

// Delete removes key from the cache.
func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.remove(e)
	}
}

// Len returns the number of cached items, including not-yet-collected
// expired ones.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// remove drops an entry. Caller must hold c.mu.
func (c *TTLCache) remove(e *entry) {
	c.lru.Remove(e.element)
	delete(c.items, e.key)
}
