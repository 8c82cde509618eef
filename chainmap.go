package chainmap

import (
	"errors"
	"fmt"
)

// Defaults used by NewDefault.
const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 0.75
)

var (
	ErrInvalidCapacity   = errors.New("initial capacity must be at least 1")
	ErrInvalidLoadFactor = errors.New("load factor must be greater than zero")
	ErrNilHasher         = errors.New("hash function must not be nil")
)

// Entry is a single key/value association stored in a Map. Entries are
// created on first insertion of a key and live until the key is removed
// or the map is cleared.
type Entry[K comparable, V any] struct {
	hash  uint64
	key   K
	value V
	next  *Entry[K, V]
}

// Key returns the entry's key.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry's current value.
func (e *Entry[K, V]) Value() V { return e.value }

// SetValue replaces the entry's value in place.
func (e *Entry[K, V]) SetValue(v V) { e.value = v }

// Map is a hash table from K to V using separate chaining. Each bucket
// holds the head of a singly-linked chain of entries whose hash maps to
// that bucket index. The zero Map is not usable; construct one with New
// or NewDefault.
//
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	buckets    []*Entry[K, V]
	count      int
	hash       Hasher[K]
	loadFactor float64
	maxCount   int
}

// New creates an empty map with the given bucket count and load
// factor. The capacity must be at least 1 and the load factor must be
// positive; growth doubles the capacity whenever the entry count
// exceeds loadFactor * capacity.
func New[K comparable, V any](hash Hasher[K], capacity int, loadFactor float64) (*Map[K, V], error) {
	if hash == nil {
		return nil, ErrNilHasher
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCapacity, capacity)
	}
	if loadFactor <= 0 {
		return nil, fmt.Errorf("%w, got %g", ErrInvalidLoadFactor, loadFactor)
	}
	return &Map[K, V]{
		buckets:    make([]*Entry[K, V], capacity),
		hash:       hash,
		loadFactor: loadFactor,
		maxCount:   int(loadFactor * float64(capacity)),
	}, nil
}

// NewDefault creates an empty map with capacity 16 and load factor 0.75.
func NewDefault[K comparable, V any](hash Hasher[K]) (*Map[K, V], error) {
	return New[K, V](hash, DefaultCapacity, DefaultLoadFactor)
}

// Len returns the number of entries currently in the map.
func (m *Map[K, V]) Len() int { return m.count }

// Cap returns the current number of buckets.
func (m *Map[K, V]) Cap() int { return len(m.buckets) }

// bucketFor derives the bucket index from a hash code. The index is
// recomputed on every operation because growth changes the capacity.
func (m *Map[K, V]) bucketFor(hash uint64) int {
	return int(hash % uint64(len(m.buckets)))
}

// Put adds or updates a key/value pair. It reports true if the key was
// newly inserted and false if an existing key's value was overwritten.
func (m *Map[K, V]) Put(key K, value V) bool {
	return m.place(m.hash(key), key, value)
}

// place scans the chain for key, updating in place on a match and
// appending a new entry at the chain tail otherwise. The cached hash is
// compared before the key so full key comparison only happens on a hash
// match. Insertion triggers growth once count exceeds maxCount.
func (m *Map[K, V]) place(hash uint64, key K, value V) bool {
	idx := m.bucketFor(hash)

	var last *Entry[K, V]
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			e.value = value
			return false
		}
		last = e
	}

	entry := &Entry[K, V]{hash: hash, key: key, value: value}
	if last == nil {
		m.buckets[idx] = entry
	} else {
		last.next = entry
	}
	m.count++

	if m.count > m.maxCount {
		m.grow()
	}
	return true
}

// lookup returns the entry for key, or nil if the key is absent.
func (m *Map[K, V]) lookup(hash uint64, key K) *Entry[K, V] {
	for e := m.buckets[m.bucketFor(hash)]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			return e
		}
	}
	return nil
}

// Get retrieves the value stored for key. The second result is false
// if the key is absent; absence is a normal outcome, not an error.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e := m.lookup(m.hash(key), key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// GetOrInsert returns a pointer to the value stored for key, inserting
// the zero value first if the key is absent. The pointer remains valid
// until the entry is removed or the map is cleared; callers must not
// hold it across concurrent mutation of the map.
func (m *Map[K, V]) GetOrInsert(key K) *V {
	hash := m.hash(key)
	e := m.lookup(hash, key)
	if e == nil {
		var zero V
		m.place(hash, key, zero)
		e = m.lookup(hash, key)
	}
	return &e.value
}

// Remove deletes the entry for key, unlinking it from its chain. It
// reports false, with no other effect, if the key is absent. Removal
// never shrinks the bucket array.
func (m *Map[K, V]) Remove(key K) bool {
	hash := m.hash(key)
	idx := m.bucketFor(hash)

	var last *Entry[K, V]
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			if last == nil {
				m.buckets[idx] = e.next
			} else {
				last.next = e.next
			}
			e.next = nil
			m.count--
			return true
		}
		last = e
	}
	return false
}

// Clear removes every entry, keeping the current capacity and load
// factor.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.count = 0
}

// grow doubles the bucket array and redistributes every entry into it
// by the entry's cached hash. Entries are relinked rather than
// reallocated, preserving insertion order within each new chain via a
// tail pointer per bucket. The old array stays intact until the new
// one is fully populated, then the two are swapped.
func (m *Map[K, V]) grow() {
	newBuckets := make([]*Entry[K, V], len(m.buckets)*2)
	tails := make([]*Entry[K, V], len(newBuckets))

	for _, e := range m.buckets {
		for e != nil {
			next := e.next
			e.next = nil

			idx := int(e.hash % uint64(len(newBuckets)))
			if tails[idx] == nil {
				newBuckets[idx] = e
			} else {
				tails[idx].next = e
			}
			tails[idx] = e

			e = next
		}
	}

	m.buckets = newBuckets
	m.maxCount = int(m.loadFactor * float64(len(newBuckets)))
}
