/*
Package chainmap provides a generic hash map with separate chaining.

Map is an in-memory associative container from keys to values. It keeps
a resizable array of buckets, each holding a singly-linked chain of
entries, and grows automatically once the entry count crosses the
configured load factor. The hash function is supplied by the caller,
with ready-made xxHash-based hashers for strings and integers.

Basic usage:

	import "github.com/theflywheel/chainmap"

	// Create a map from string keys to int values
	m, err := chainmap.NewDefault[string, int](chainmap.HashString)
	if err != nil {
		log.Fatal(err)
	}

	// Insert data
	inserted := m.Put("answer", 42) // true: the key was new

	// Retrieve data
	v, ok := m.Get("answer")
	if ok {
		fmt.Println("Value:", v)
	}

	// Iterate
	for k, v := range m.Entries() {
		fmt.Println(k, "=>", v)
	}

Features:

  - Caller-supplied hash functions over any comparable key type
  - Separate chaining for collision resolution, with cached hash codes
    so chain scans compare full keys only on a hash match
  - Automatic doubling of the bucket array when the load factor is
    exceeded, relinking entries without reallocation
  - Lazy key, value, and entry iteration in bucket order
  - Get-or-insert access returning a pointer to the stored value

Implementation Details:

Each entry stores its key, value, the key's hash code computed once at
insertion, and a link to the next entry in the same bucket. The bucket
index is hash mod capacity, recomputed on every operation because the
capacity changes on growth. New entries are appended at the tail of
their chain, so iteration within a bucket observes insertion order.

Map is not safe for concurrent use. Callers that share a Map across
goroutines must serialize access themselves, and must not mutate the
map while an iteration sequence or a pointer obtained from GetOrInsert
is in use.
*/
package chainmap
