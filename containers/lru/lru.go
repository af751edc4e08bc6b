// Package lru implements a non-thread-safe fixed size LRU cache on top of
// the chaining hash map.
//
// The map indexes entries by key; recency is tracked by an intrusive
// doubly-linked list threaded through the entries, most recent at the front.
package lru

import (
	"iter"

	"github.com/pkg/errors"

	"mlib.com/collections/containers/maps/chainhashmap"
)

// EvictCallback is used to get a callback when a cache entry is evicted
type EvictCallback[K comparable, V any] func(key K, value V)

// entry is a cache slot threaded into the recency list.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// Cache implements a non-thread safe fixed size LRU cache
type Cache[K comparable, V any] struct {
	size    int
	items   *chainhashmap.Map[K, *entry[K, V]]
	front   *entry[K, V] // most recently used
	back    *entry[K, V] // next to evict
	onEvict EvictCallback[K, V]
}

// New constructs a cache of the given size
func New[K comparable, V any](size int, onEvict EvictCallback[K, V]) (*Cache[K, V], error) {
	if size <= 0 {
		return nil, errors.New("must provide a positive size")
	}

	c := &Cache[K, V]{
		size:    size,
		items:   chainhashmap.New[K, *entry[K, V]](),
		onEvict: onEvict,
	}
	return c, nil
}

// Purge is used to completely clear the cache.
func (c *Cache[K, V]) Purge() {
	if c.onEvict != nil {
		for e := c.back; e != nil; e = e.prev {
			c.onEvict(e.key, e.value)
		}
	}
	c.items.Clear()
	c.front = nil
	c.back = nil
}

// Add adds a value to the cache.  Returns true if an eviction occurred.
func (c *Cache[K, V]) Add(key K, value V) (evicted bool) {
	// Check for existing item
	if e, err := c.items.Get(key); err == nil {
		c.moveToFront(e)
		if c.onEvict != nil {
			c.onEvict(key, e.value)
		}
		e.value = value
		return false
	}

	// Add new item
	e := &entry[K, V]{key: key, value: value}
	c.pushFront(e)
	c.items.Put(key, e)

	// Verify size not exceeded
	evict := c.items.Size() > c.size
	if evict {
		c.removeOldest()
	}
	return evict
}

// Get looks up a key's value from the cache.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	if e, err := c.items.Get(key); err == nil {
		c.moveToFront(e)
		return e.value, true
	}
	return
}

// Contains checks if a key is in the cache, without updating the recent-ness
// or deleting it for being stale.
func (c *Cache[K, V]) Contains(key K) (ok bool) {
	return c.items.Contains(key)
}

// Peek returns the key value (or undefined if not found) without updating
// the "recently used"-ness of the key.
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	if e, err := c.items.Get(key); err == nil {
		return e.value, true
	}
	return
}

// Remove removes the provided key from the cache, returning if the
// key was contained.
func (c *Cache[K, V]) Remove(key K) (present bool) {
	if e, err := c.items.Get(key); err == nil {
		c.removeEntry(e)
		return true
	}
	return false
}

// RemoveOldest removes the oldest item from the cache.
func (c *Cache[K, V]) RemoveOldest() (key K, value V, ok bool) {
	if e := c.back; e != nil {
		c.removeEntry(e)
		return e.key, e.value, true
	}
	return
}

// GetOldest returns the oldest entry
func (c *Cache[K, V]) GetOldest() (key K, value V, ok bool) {
	if e := c.back; e != nil {
		return e.key, e.value, true
	}
	return
}

// Keys iterates over the keys in the cache, from oldest to newest.
func (c *Cache[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := c.back; e != nil; e = e.prev {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Values iterates over the values in the cache, from oldest to newest.
func (c *Cache[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := c.back; e != nil; e = e.prev {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Len returns the number of items in the cache.
func (c *Cache[K, V]) Len() int {
	return c.items.Size()
}

// Resize changes the cache size.
func (c *Cache[K, V]) Resize(size int) (evicted int) {
	diff := c.Len() - size
	if diff < 0 {
		diff = 0
	}
	for i := 0; i < diff; i++ {
		c.removeOldest()
	}
	c.size = size
	return diff
}

// removeOldest removes the oldest item from the cache.
func (c *Cache[K, V]) removeOldest() {
	if e := c.back; e != nil {
		c.removeEntry(e)
	}
}

// removeEntry unlinks e from the recency list and drops it from the index.
func (c *Cache[K, V]) removeEntry(e *entry[K, V]) {
	c.unlink(e)
	c.items.Delete(e.key)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}

func (c *Cache[K, V]) pushFront(e *entry[K, V]) {
	e.next = c.front
	if c.front != nil {
		c.front.prev = e
	}
	c.front = e
	if c.back == nil {
		c.back = e
	}
}

func (c *Cache[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.front = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.back = e.prev
	}
	e.prev = nil
	e.next = nil
}

func (c *Cache[K, V]) moveToFront(e *entry[K, V]) {
	if c.front == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}
