package lazyseq

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// FromSlice returns a sequence over the elements of slice, keyed by index.
func FromSlice[V any](slice []V) Sequence[int, V] {
	return &sliceSeq[V]{items: slice}
}

type sliceSeq[V any] struct {
	items []V
	idx   int
}

func (s *sliceSeq[V]) Valid() bool { return s.idx < len(s.items) }
func (s *sliceSeq[V]) Key() int {
	if !s.Valid() {
		panicExhausted()
	}
	return s.idx
}
func (s *sliceSeq[V]) Value() V {
	if !s.Valid() {
		panicExhausted()
	}
	return s.items[s.idx]
}
func (s *sliceSeq[V]) Next()   { s.idx++ }
func (s *sliceSeq[V]) Rewind() { s.idx = 0 }

// FromPairs returns a sequence over pairs, preserving their keys and order.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) Sequence[K, V] {
	return &pairSeq[K, V]{pairs: pairs}
}

type pairSeq[K comparable, V any] struct {
	pairs []Pair[K, V]
	idx   int
}

func (s *pairSeq[K, V]) Valid() bool { return s.idx < len(s.pairs) }
func (s *pairSeq[K, V]) Key() K {
	if !s.Valid() {
		panicExhausted()
	}
	return s.pairs[s.idx].Key
}
func (s *pairSeq[K, V]) Value() V {
	if !s.Valid() {
		panicExhausted()
	}
	return s.pairs[s.idx].Value
}
func (s *pairSeq[K, V]) Next()   { s.idx++ }
func (s *pairSeq[K, V]) Rewind() { s.idx = 0 }

// FromMap returns a sequence over the entries of m. The key order is
// unspecified but is snapshotted at construction, so Rewind replays the same
// order every time.
func FromMap[K comparable, V any](m map[K]V) Sequence[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return &mapSeq[K, V]{keys: keys, m: m}
}

type mapSeq[K comparable, V any] struct {
	keys []K
	m    map[K]V
	idx  int
}

func (s *mapSeq[K, V]) Valid() bool { return s.idx < len(s.keys) }
func (s *mapSeq[K, V]) Key() K {
	if !s.Valid() {
		panicExhausted()
	}
	return s.keys[s.idx]
}
func (s *mapSeq[K, V]) Value() V {
	if !s.Valid() {
		panicExhausted()
	}
	return s.m[s.keys[s.idx]]
}
func (s *mapSeq[K, V]) Next()   { s.idx++ }
func (s *mapSeq[K, V]) Rewind() { s.idx = 0 }

// Single returns a sequence yielding exactly one pair: the synthetic key 0
// and value.
func Single[V any](value V) Sequence[int, V] {
	return &singleSeq[V]{value: value}
}

type singleSeq[V any] struct {
	value V
	done  bool
}

func (s *singleSeq[V]) Valid() bool { return !s.done }
func (s *singleSeq[V]) Key() int {
	if s.done {
		panicExhausted()
	}
	return 0
}
func (s *singleSeq[V]) Value() V {
	if s.done {
		panicExhausted()
	}
	return s.value
}
func (s *singleSeq[V]) Next()   { s.done = true }
func (s *singleSeq[V]) Rewind() { s.done = false }

// Range returns a sequence of the integers in [start, end), keyed by ordinal
// position.
func Range[T constraints.Integer](start, end T) Sequence[int, T] {
	return &rangeSeq[T]{start: start, end: end, cur: start}
}

type rangeSeq[T constraints.Integer] struct {
	start, end, cur T
}

func (s *rangeSeq[T]) Valid() bool { return s.cur < s.end }
func (s *rangeSeq[T]) Key() int {
	if !s.Valid() {
		panicExhausted()
	}
	return int(s.cur - s.start)
}
func (s *rangeSeq[T]) Value() T {
	if !s.Valid() {
		panicExhausted()
	}
	return s.cur
}
func (s *rangeSeq[T]) Next()   { s.cur++ }
func (s *rangeSeq[T]) Rewind() { s.cur = s.start }

// Coerce converts an arbitrary value into a dynamic sequence. It never
// fails:
//
//   - a Sequence[any, any] is returned unchanged;
//   - a slice, array or map becomes a recursive-capable sequence over its
//     entries, preserving the container's own keys (map key order is
//     snapshotted at construction);
//   - anything else becomes a one-pair sequence with the synthetic key 0.
//
// The result always satisfies RecursiveSequence, so it can feed Flatten,
// FlattenDeep and FilterTree directly.
func Coerce(input any) Sequence[any, any] {
	if s, ok := input.(Sequence[any, any]); ok {
		return s
	}
	return coerceNode(input)
}

func coerceNode(input any) RecursiveSequence {
	if rs, ok := input.(RecursiveSequence); ok {
		return rs
	}
	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		keys := make([]any, n)
		values := make([]any, n)
		for i := 0; i < n; i++ {
			keys[i] = i
			values[i] = rv.Index(i).Interface()
		}
		return &nodeSeq{keys: keys, values: values}
	case reflect.Map:
		keys := make([]any, 0, rv.Len())
		values := make([]any, 0, rv.Len())
		mi := rv.MapRange()
		for mi.Next() {
			keys = append(keys, mi.Key().Interface())
			values = append(values, mi.Value().Interface())
		}
		return &nodeSeq{keys: keys, values: values}
	default:
		return &nodeSeq{keys: []any{0}, values: []any{input}}
	}
}

// nodeSeq walks a native container's entries and exposes nested containers
// as children.
type nodeSeq struct {
	keys   []any
	values []any
	idx    int
}

func (s *nodeSeq) Valid() bool { return s.idx < len(s.keys) }
func (s *nodeSeq) Key() any {
	if !s.Valid() {
		panicExhausted()
	}
	return s.keys[s.idx]
}
func (s *nodeSeq) Value() any {
	if !s.Valid() {
		panicExhausted()
	}
	return s.values[s.idx]
}
func (s *nodeSeq) Next()   { s.idx++ }
func (s *nodeSeq) Rewind() { s.idx = 0 }

func (s *nodeSeq) HasChildren() bool {
	if !s.Valid() {
		return false
	}
	switch reflect.ValueOf(s.values[s.idx]).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func (s *nodeSeq) Children() RecursiveSequence {
	return coerceNode(s.Value())
}
