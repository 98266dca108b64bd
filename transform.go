package lazyseq

import (
	"github.com/brynbellomy/go-lazyseq/errors"
)

// Map returns a lazy sequence that applies fn to every value of s, keeping
// the inner keys unchanged.
//
// fn is invoked once per Value call, with no caching across repeated reads of
// the same position. A callback with side effects therefore observes one
// invocation per read, not per element.
//
// Map panics with an error wrapping errors.ErrInvalidArgument if fn is nil.
func Map[K comparable, V, R any](s Sequence[K, V], fn func(V) R) Sequence[K, R] {
	if fn == nil {
		panic(errors.Wrap(errors.ErrInvalidArgument, "Map: nil callback"))
	}
	return &mapSeq2[K, V, R]{inner: s, fn: fn}
}

type mapSeq2[K comparable, V, R any] struct {
	inner Sequence[K, V]
	fn    func(V) R
}

func (s *mapSeq2[K, V, R]) Valid() bool { return s.inner.Valid() }
func (s *mapSeq2[K, V, R]) Key() K      { return s.inner.Key() }
func (s *mapSeq2[K, V, R]) Value() R    { return s.fn(s.inner.Value()) }
func (s *mapSeq2[K, V, R]) Next()       { s.inner.Next() }
func (s *mapSeq2[K, V, R]) Rewind()     { s.inner.Rewind() }

// Filter returns a lazy sequence of the pairs of s for which
// pred(value, key) is true, in their original order and under their original
// keys.
//
// Filter panics with an error wrapping errors.ErrInvalidArgument if pred is
// nil.
func Filter[K comparable, V any](s Sequence[K, V], pred func(V, K) bool) Sequence[K, V] {
	if pred == nil {
		panic(errors.Wrap(errors.ErrInvalidArgument, "Filter: nil predicate"))
	}
	f := &filterSeq[K, V]{inner: s, pred: pred}
	f.settle()
	return f
}

type filterSeq[K comparable, V any] struct {
	inner Sequence[K, V]
	pred  func(V, K) bool
}

// settle skips forward until the inner sequence is exhausted or positioned
// at a pair the predicate accepts.
func (s *filterSeq[K, V]) settle() {
	for s.inner.Valid() && !s.pred(s.inner.Value(), s.inner.Key()) {
		s.inner.Next()
	}
}

func (s *filterSeq[K, V]) Valid() bool { return s.inner.Valid() }
func (s *filterSeq[K, V]) Key() K      { return s.inner.Key() }
func (s *filterSeq[K, V]) Value() V    { return s.inner.Value() }
func (s *filterSeq[K, V]) Next() {
	s.inner.Next()
	s.settle()
}
func (s *filterSeq[K, V]) Rewind() {
	s.inner.Rewind()
	s.settle()
}

// Flip returns a lazy sequence with each pair's key and value swapped.
func Flip[K, V comparable](s Sequence[K, V]) Sequence[V, K] {
	return &flipSeq[K, V]{inner: s}
}

type flipSeq[K, V comparable] struct {
	inner Sequence[K, V]
}

func (s *flipSeq[K, V]) Valid() bool { return s.inner.Valid() }
func (s *flipSeq[K, V]) Key() V      { return s.inner.Value() }
func (s *flipSeq[K, V]) Value() K    { return s.inner.Key() }
func (s *flipSeq[K, V]) Next()       { s.inner.Next() }
func (s *flipSeq[K, V]) Rewind()     { s.inner.Rewind() }

// FlatMap maps every value of s to its own sequence via fn and concatenates
// the results lazily, preserving the sub-sequences' keys. fn is invoked once
// per element of s each time that element is reached (including after a
// Rewind).
//
// FlatMap panics with an error wrapping errors.ErrInvalidArgument if fn is
// nil.
func FlatMap[K comparable, V any, K2 comparable, R any](s Sequence[K, V], fn func(V) Sequence[K2, R]) Sequence[K2, R] {
	if fn == nil {
		panic(errors.Wrap(errors.ErrInvalidArgument, "FlatMap: nil callback"))
	}
	f := &flatMapSeq[K, V, K2, R]{outer: s, fn: fn}
	f.settle()
	return f
}

type flatMapSeq[K comparable, V any, K2 comparable, R any] struct {
	outer Sequence[K, V]
	fn    func(V) Sequence[K2, R]
	cur   Sequence[K2, R]
}

// settle positions cur at the next non-empty sub-sequence, advancing the
// outer sequence past elements that map to empty ones.
func (s *flatMapSeq[K, V, K2, R]) settle() {
	for s.outer.Valid() {
		if s.cur == nil {
			s.cur = s.fn(s.outer.Value())
			s.cur.Rewind()
		}
		if s.cur.Valid() {
			return
		}
		s.cur = nil
		s.outer.Next()
	}
	s.cur = nil
}

func (s *flatMapSeq[K, V, K2, R]) Valid() bool { return s.cur != nil && s.cur.Valid() }
func (s *flatMapSeq[K, V, K2, R]) Key() K2 {
	if s.cur == nil {
		panicExhausted()
	}
	return s.cur.Key()
}
func (s *flatMapSeq[K, V, K2, R]) Value() R {
	if s.cur == nil {
		panicExhausted()
	}
	return s.cur.Value()
}
func (s *flatMapSeq[K, V, K2, R]) Next() {
	if s.cur == nil {
		return
	}
	s.cur.Next()
	if !s.cur.Valid() {
		s.cur = nil
		s.outer.Next()
		s.settle()
	}
}
func (s *flatMapSeq[K, V, K2, R]) Rewind() {
	s.outer.Rewind()
	s.cur = nil
	s.settle()
}
