package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingAddGet(t *testing.T) {
	r := NewRing[string, int64](3)

	r.Add("alice", 1)
	r.Add("bob", 2)

	v, ok := r.Get("alice")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	_, ok = r.Get("carol")
	assert.False(t, ok)
}

func TestRingEvictsOldest(t *testing.T) {
	r := NewRing[string, int](2)

	r.Add("a", 1)
	r.Add("b", 2)
	r.Add("c", 3)

	_, ok := r.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())

	r.Add("d", 4)
	_, ok = r.Get("b")
	assert.False(t, ok)

	v, _ := r.Get("d")
	assert.Equal(t, 4, v)
}

func TestRingUpdateKeepsSlot(t *testing.T) {
	r := NewRing[string, int](2)

	r.Add("a", 1)
	r.Add("a", 10)
	r.Add("b", 2)

	v, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, r.Len())
}

func TestRingRemove(t *testing.T) {
	r := NewRing[int, string](2)

	r.Add(1, "one")
	r.Remove(1)
	r.Remove(99)

	_, ok := r.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())

	// The freed slot is reused without evicting live keys
	r.Add(2, "two")
	r.Add(3, "three")
	_, ok = r.Get(2)
	assert.True(t, ok)
}

func TestRingMinimumCapacity(t *testing.T) {
	r := NewRing[int, int](0)
	r.Add(1, 1)
	r.Add(2, 2)
	assert.Equal(t, 1, r.Len())
}

func TestRingConcurrentAccess(t *testing.T) {
	r := NewRing[string, int](16)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				key := strconv.Itoa(n*100 + j)
				r.Add(key, j)
				r.Get(key)
				if j%3 == 0 {
					r.Remove(key)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, r.Len(), 16)
}
