package chainmap

import "iter"

// cursor walks the bucket array left to right and each chain front to
// back. Construction positions it on the head of the first non-empty
// bucket; entry is nil once the table is exhausted.
type cursor[K comparable, V any] struct {
	buckets []*Entry[K, V]
	index   int
	entry   *Entry[K, V]
}

func newCursor[K comparable, V any](buckets []*Entry[K, V]) cursor[K, V] {
	c := cursor[K, V]{buckets: buckets, entry: buckets[0]}
	c.skipEmpty()
	return c
}

// next advances to the following entry in the current chain, falling
// through to the next non-empty bucket when the chain ends.
func (c *cursor[K, V]) next() {
	c.entry = c.entry.next
	c.skipEmpty()
}

func (c *cursor[K, V]) skipEmpty() {
	for c.entry == nil {
		c.index++
		if c.index >= len(c.buckets) {
			return
		}
		c.entry = c.buckets[c.index]
	}
}

// Keys returns a lazy, single-pass sequence over the map's keys, in
// bucket order and within a bucket in insertion order. The sequence
// borrows the map's internal state: mutating the map while ranging
// over it leaves the traversal order unspecified.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for c := newCursor(m.buckets); c.entry != nil; c.next() {
			if !yield(c.entry.key) {
				return
			}
		}
	}
}

// Values returns a lazy sequence over the map's values, in the same
// order as Keys.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for c := newCursor(m.buckets); c.entry != nil; c.next() {
			if !yield(c.entry.value) {
				return
			}
		}
	}
}

// Entries returns a lazy sequence over the map's key/value pairs, in
// the same order as Keys.
func (m *Map[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := newCursor(m.buckets); c.entry != nil; c.next() {
			if !yield(c.entry.key, c.entry.value) {
				return
			}
		}
	}
}

// All returns a lazy sequence over the map's entries themselves,
// allowing values to be updated in place through Entry.SetValue while
// ranging. The same mutation caveat as Keys applies: entries may be
// read and their values replaced, but the map's structure must not
// change mid-iteration.
func (m *Map[K, V]) All() iter.Seq[*Entry[K, V]] {
	return func(yield func(*Entry[K, V]) bool) {
		for c := newCursor(m.buckets); c.entry != nil; c.next() {
			if !yield(c.entry) {
				return
			}
		}
	}
}
