package automata

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testKey struct {
	part1 int
	part2 string
}

func (k testKey) Hash() uint64 {
	return uint64(k.part1 + len(k.part2))
}

func (k testKey) Equals(other Hashable) bool {
	o, ok := other.(testKey)
	return ok && k.part1 == o.part1 && k.part2 == o.part2
}

// anotherKey collides with testKey on purpose.
type anotherKey int

func (k anotherKey) Hash() uint64 {
	return uint64(k)
}

func (k anotherKey) Equals(other Hashable) bool {
	o, ok := other.(anotherKey)
	return ok && k == o
}

func stateSetOf(numStates int, members ...int) *StateSet {
	s := NewStateSet(numStates)
	for _, m := range members {
		s.Add(m)
	}
	return s
}

func TestHashMapBasic(t *testing.T) {
	t.Run("SetAndGet", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "value1")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value1", val)

		_, exists = hm.Get(testKey{2, "b"})
		assert.False(t, exists)
		assert.False(t, hm.Contains(testKey{2, "b"}))
	})

	t.Run("UpdateValue", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "value1")
		hm.Set(key, "value2")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
		assert.Equal(t, 1, hm.Size())
	})
}

func TestHashCollision(t *testing.T) {
	hm := NewHashMap[string](WithCapacity(16))

	key1 := testKey{1, "a"}  // 2
	key2 := testKey{0, "bb"} // 2
	key3 := testKey{2, "a"}  // 3

	hm.Set(key1, "value1")
	hm.Set(key2, "value2")
	hm.Set(key3, "value3")
	assert.Equal(t, 3, hm.Size())

	val, exists := hm.Get(key2)
	assert.True(t, exists)
	assert.Equal(t, "value2", val)

	assert.True(t, hm.Contains(key1))
	assert.False(t, hm.Contains(testKey{1, "b"}))

	// different key types with the same hash
	hm.Set(anotherKey(3), "value4")
	val, _ = hm.Get(key3)
	assert.Equal(t, "value3", val)
	val, _ = hm.Get(anotherKey(3))
	assert.Equal(t, "value4", val)
}

func TestAutoResize(t *testing.T) {
	initialCap := 16
	hm := NewHashMap[int](WithCapacity(initialCap))

	// 16 * 0.75 = 12
	for i := 0; i < 13; i++ {
		hm.Set(testKey{i, ""}, i)
	}
	assert.Greater(t, len(hm.buckets), initialCap)

	for i := 0; i < 13; i++ {
		val, exists := hm.Get(testKey{i, ""})
		assert.True(t, exists)
		assert.Equal(t, i, val)
	}
	assert.Equal(t, 13, hm.Size())
}

func TestHashMap_StateSetKeys(t *testing.T) {
	names := []string{"q0", "q1", "q2"}
	hm := NewHashMap[int](WithCapacity(4))

	frozen := stateSetOf(3, 0, 2).Freeze(names)
	hm.Set(frozen, 7)

	// a frozen copy of the same members finds the entry
	val, exists := hm.Get(stateSetOf(3, 2, 0).Freeze(names))
	assert.True(t, exists)
	assert.Equal(t, 7, val)

	// so does the mutable set
	assert.True(t, hm.Contains(stateSetOf(3, 0, 2)))

	assert.False(t, hm.Contains(stateSetOf(3, 0).Freeze(names)))
	assert.False(t, hm.Contains(stateSetOf(3, 0, 1, 2).Freeze(names)))
}

func TestConcurrency(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(32))
	var wg sync.WaitGroup

	numWorkers := 100
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func(n int) {
			defer wg.Done()
			key := testKey{n, "test"}
			hm.Set(key, n)
			hm.Get(key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, numWorkers, hm.Size())

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func(n int) {
			defer wg.Done()
			hm.Set(testKey{n, "test"}, n*2)
			assert.True(t, hm.Contains(testKey{n, "test"}))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, numWorkers, hm.Size())
	val, _ := hm.Get(testKey{7, "test"})
	assert.Equal(t, 14, val)
}

func TestEdgeCases(t *testing.T) {
	t.Run("NilKey", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		assert.Panics(t, func() {
			hm.Set(nil, "value")
		})
	})

	t.Run("ZeroCapacity", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(0))
		assert.Equal(t, 1, len(hm.buckets))
	})

	t.Run("CapacityRoundsUp", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(5))
		assert.Equal(t, 8, len(hm.buckets))
	})
}
