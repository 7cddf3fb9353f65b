// Package cache provides a small in-process cache for hot lookups
package cache

import "sync"

type entry[K comparable, V any] struct {
	key   K
	value V
	used  bool
}

// Ring is a fixed-capacity cache. Once full, each new key replaces the
// oldest inserted one. Safe for concurrent use.
type Ring[K comparable, V any] struct {
	mu      sync.Mutex
	entries []entry[K, V]
	index   map[K]int
	next    int
}

// NewRing creates a ring holding at most capacity entries. A capacity
// below one is raised to one.
func NewRing[K comparable, V any](capacity int) *Ring[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[K, V]{
		entries: make([]entry[K, V], capacity),
		index:   make(map[K]int, capacity),
	}
}

// Add stores value under key. An existing key is updated in place.
func (r *Ring[K, V]) Add(key K, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[key]; ok {
		r.entries[i].value = value
		return
	}

	slot := &r.entries[r.next]
	if slot.used {
		delete(r.index, slot.key)
	}
	*slot = entry[K, V]{key: key, value: value, used: true}
	r.index[key] = r.next
	r.next = (r.next + 1) % len(r.entries)
}

// Get returns the value stored under key
func (r *Ring[K, V]) Get(key K) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[key]; ok {
		return r.entries[i].value, true
	}
	var zero V
	return zero, false
}

// Remove drops key. Removing a missing key is a no-op.
func (r *Ring[K, V]) Remove(key K) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[key]; ok {
		r.entries[i] = entry[K, V]{}
		delete(r.index, key)
	}
}

// Len returns the number of cached entries
func (r *Ring[K, V]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.index)
}
