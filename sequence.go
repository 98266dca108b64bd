// Package lazyseq provides lazy, pull-based sequences of key/value pairs and
// the usual higher-order operations over them (map, filter, slice, flatten,
// merge, reduce, ...). Transformations compose into a single pipeline that is
// evaluated element-by-element, only as far as the consumer demands; no
// intermediate collections are materialized.
//
// A Sequence is consumed by one logical reader at a time. Two readers holding
// the same adapter share its cursor, so one reader's Next is visible to the
// other. Safe concurrent use is out of scope.
package lazyseq

// Sequence is a lazy ordered source of key/value pairs.
//
// Key and Value may only be called while Valid reports true; calling either
// on an exhausted sequence panics. Once exhausted, a sequence stays exhausted
// until Rewind is called explicitly. Rewind is idempotent and recursively
// rewinds any inner sequences an adapter owns, so a whole pipeline can be
// replayed from the beginning.
type Sequence[K comparable, V any] interface {
	// Valid reports whether the sequence is positioned at a pair.
	Valid() bool
	// Key returns the current pair's key.
	Key() K
	// Value returns the current pair's value.
	Value() V
	// Next advances to the next pair, if any.
	Next()
	// Rewind repositions the sequence at its first pair.
	Rewind()
}

// Pair is a single drained key/value pair.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// RecursiveSequence is a dynamic sequence whose values may themselves be
// traversable. It is the capability required by Flatten, FlattenDeep and
// FilterTree. Children may only be called when HasChildren reports true, and
// returns a sequence positioned at its first pair.
type RecursiveSequence interface {
	Sequence[any, any]
	HasChildren() bool
	Children() RecursiveSequence
}

// pullable matches any pull-style sequence regardless of its type
// parameters. Used to tell "some Sequence we cannot see into" apart from a
// plain value during dynamic coercion.
type pullable interface {
	Valid() bool
	Next()
	Rewind()
}

func panicExhausted() {
	panic("lazyseq: Key/Value called on exhausted sequence")
}
