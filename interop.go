package lazyseq

import (
	"iter"
)

// Bridges between Sequence and the standard library's range-over-func
// iterators.

// All returns a re-rangeable iter.Seq2 over s. Each invocation rewinds s
// first, so the result can be ranged over more than once; it also means two
// concurrent ranges over the same sequence share one cursor.
func All[K comparable, V any](s Sequence[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s.Rewind()
		for ; s.Valid(); s.Next() {
			if !yield(s.Key(), s.Value()) {
				return
			}
		}
	}
}

// AllValues returns a re-rangeable iter.Seq over the values of s. Each
// invocation rewinds s first.
func AllValues[K comparable, V any](s Sequence[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		s.Rewind()
		for ; s.Valid(); s.Next() {
			if !yield(s.Value()) {
				return
			}
		}
	}
}

// FromSeq adapts an iter.Seq into a Sequence keyed by ordinal position.
// Rewind re-invokes src from the top; if src is backed by a one-shot
// producer, what a replay yields is up to that producer.
func FromSeq[V any](src iter.Seq[V]) Sequence[int, V] {
	return FromSeq2(func(yield func(int, V) bool) {
		i := 0
		for v := range src {
			if !yield(i, v) {
				return
			}
			i++
		}
	})
}

// FromSeq2 adapts an iter.Seq2 into a Sequence, preserving its keys. Rewind
// re-invokes src from the top; if src is backed by a one-shot producer, what
// a replay yields is up to that producer.
func FromSeq2[K comparable, V any](src iter.Seq2[K, V]) Sequence[K, V] {
	s := &pullSeq[K, V]{src: src}
	s.start()
	return s
}

type pullSeq[K comparable, V any] struct {
	src   iter.Seq2[K, V]
	next  func() (K, V, bool)
	stop  func()
	key   K
	value V
	valid bool
}

func (s *pullSeq[K, V]) start() {
	if s.stop != nil {
		s.stop()
	}
	s.next, s.stop = iter.Pull2(s.src)
	s.pull()
}

func (s *pullSeq[K, V]) pull() {
	k, v, ok := s.next()
	if !ok {
		s.valid = false
		s.stop()
		return
	}
	s.key, s.value, s.valid = k, v, true
}

func (s *pullSeq[K, V]) Valid() bool { return s.valid }

func (s *pullSeq[K, V]) Key() K {
	if !s.valid {
		panicExhausted()
	}
	return s.key
}

func (s *pullSeq[K, V]) Value() V {
	if !s.valid {
		panicExhausted()
	}
	return s.value
}

func (s *pullSeq[K, V]) Next() {
	if !s.valid {
		return
	}
	s.pull()
}

func (s *pullSeq[K, V]) Rewind() { s.start() }
