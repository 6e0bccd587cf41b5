package automata

import "sync"

// loadFactor above which the table doubles.
const loadFactor = 0.75

// Hashable is a key that can be stored in a HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. Subset construction uses it as
// the registry of discovered DFA states, keyed by their state sets.
type HashMap[T any] struct {
	mutex   sync.RWMutex
	buckets []*entry[T]
	size    int
	mask    uint64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type hashMapOptions struct {
	capacity int
}

type HashMapOption func(*hashMapOptions)

// WithCapacity Sets the initial number of buckets, rounded up to a power of two.
func WithCapacity(capacity int) HashMapOption {
	return func(o *hashMapOptions) {
		o.capacity = capacity
	}
}

func NewHashMap[T any](opts ...HashMapOption) *HashMap[T] {
	o := &hashMapOptions{capacity: 1}
	for _, fn := range opts {
		fn(o)
	}

	capacity := 1
	for capacity < o.capacity {
		capacity <<= 1
	}

	return &HashMap[T]{
		buckets: make([]*entry[T], capacity),
		mask:    uint64(capacity - 1),
	}
}

// Set Inserts or replaces the value for key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > loadFactor {
		m.resize()
	}
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

func (m *HashMap[T]) Contains(key Hashable) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *HashMap[T]) resize() {
	capacity := len(m.buckets) << 1
	buckets := make([]*entry[T], capacity)
	mask := uint64(capacity - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			index := e.key.Hash() & mask
			buckets[index] = &entry[T]{
				key:   e.key,
				value: e.value,
				next:  buckets[index],
			}
		}
	}

	m.buckets = buckets
	m.mask = mask
}

func (m *HashMap[T]) Size() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.size
}
