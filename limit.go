package lazyseq

// Slice returns a lazy sequence that skips the first offset pairs of s and
// then yields at most count pairs, keeping their original keys. A negative
// count means "all remaining". Offsets or counts past the end of s simply
// yield fewer (possibly zero) pairs; they never fail.
func Slice[K comparable, V any](s Sequence[K, V], offset, count int) Sequence[K, V] {
	if offset < 0 {
		offset = 0
	}
	l := &limitSeq[K, V]{inner: s, offset: offset, count: count}
	l.skip()
	return l
}

// Take returns a lazy sequence of the first n pairs of s.
func Take[K comparable, V any](s Sequence[K, V], n int) Sequence[K, V] {
	return Slice(s, 0, n)
}

// Drop returns a lazy sequence of all pairs of s after the first n. Note
// that n is an offset, consistent with Slice and Take.
func Drop[K comparable, V any](s Sequence[K, V], n int) Sequence[K, V] {
	return Slice(s, n, -1)
}

// Tail returns a lazy sequence of every pair of s except the first.
func Tail[K comparable, V any](s Sequence[K, V]) Sequence[K, V] {
	return Slice(s, 1, -1)
}

type limitSeq[K comparable, V any] struct {
	inner  Sequence[K, V]
	offset int
	count  int
	taken  int
}

func (s *limitSeq[K, V]) skip() {
	for i := 0; i < s.offset && s.inner.Valid(); i++ {
		s.inner.Next()
	}
	s.taken = 0
}

func (s *limitSeq[K, V]) Valid() bool {
	if s.count >= 0 && s.taken >= s.count {
		return false
	}
	return s.inner.Valid()
}

func (s *limitSeq[K, V]) Key() K {
	if !s.Valid() {
		panicExhausted()
	}
	return s.inner.Key()
}

func (s *limitSeq[K, V]) Value() V {
	if !s.Valid() {
		panicExhausted()
	}
	return s.inner.Value()
}

func (s *limitSeq[K, V]) Next() {
	if !s.Valid() {
		return
	}
	s.taken++
	// Once the cap is reached there is no next pair to position at, so the
	// inner sequence is left untouched.
	if s.count >= 0 && s.taken >= s.count {
		return
	}
	s.inner.Next()
}

func (s *limitSeq[K, V]) Rewind() {
	s.inner.Rewind()
	s.skip()
}

// Initial returns a lazy sequence of every pair of s except the last. It
// buffers exactly one pair of lookahead so the final pair can be withheld.
func Initial[K comparable, V any](s Sequence[K, V]) Sequence[K, V] {
	i := &initialSeq[K, V]{inner: s}
	i.prime()
	return i
}

type initialSeq[K comparable, V any] struct {
	inner Sequence[K, V]
	key   K
	value V
	have  bool
}

func (s *initialSeq[K, V]) prime() {
	s.have = false
	if s.inner.Valid() {
		s.key, s.value = s.inner.Key(), s.inner.Value()
		s.inner.Next()
		s.have = true
	}
}

// Valid is true only while the buffered pair has a successor; the buffered
// pair is the last one otherwise, and the last pair is never yielded.
func (s *initialSeq[K, V]) Valid() bool { return s.have && s.inner.Valid() }

func (s *initialSeq[K, V]) Key() K {
	if !s.Valid() {
		panicExhausted()
	}
	return s.key
}

func (s *initialSeq[K, V]) Value() V {
	if !s.Valid() {
		panicExhausted()
	}
	return s.value
}

func (s *initialSeq[K, V]) Next() {
	if !s.Valid() {
		return
	}
	s.key, s.value = s.inner.Key(), s.inner.Value()
	s.inner.Next()
}

func (s *initialSeq[K, V]) Rewind() {
	s.inner.Rewind()
	s.prime()
}
