package lazyseq

// Merge concatenates s and the given sequences lazily, in argument order.
// Every pair keeps the key of the sequence it came from; key collisions
// across sub-sequences are expected and are not deduplicated. The merged
// sequence stays valid until every sub-sequence is exhausted.
func Merge[K comparable, V any](s Sequence[K, V], seqs ...Sequence[K, V]) Sequence[K, V] {
	all := make([]Sequence[K, V], 0, len(seqs)+1)
	all = append(all, s)
	all = append(all, seqs...)
	m := &mergeSeq[K, V]{seqs: all}
	m.settle()
	return m
}

type mergeSeq[K comparable, V any] struct {
	seqs []Sequence[K, V]
	cur  int
}

// settle moves the cursor past exhausted sub-sequences.
func (s *mergeSeq[K, V]) settle() {
	for s.cur < len(s.seqs) && !s.seqs[s.cur].Valid() {
		s.cur++
	}
}

func (s *mergeSeq[K, V]) Valid() bool { return s.cur < len(s.seqs) }

func (s *mergeSeq[K, V]) Key() K {
	if !s.Valid() {
		panicExhausted()
	}
	return s.seqs[s.cur].Key()
}

func (s *mergeSeq[K, V]) Value() V {
	if !s.Valid() {
		panicExhausted()
	}
	return s.seqs[s.cur].Value()
}

func (s *mergeSeq[K, V]) Next() {
	if !s.Valid() {
		return
	}
	s.seqs[s.cur].Next()
	s.settle()
}

func (s *mergeSeq[K, V]) Rewind() {
	for _, sub := range s.seqs {
		sub.Rewind()
	}
	s.cur = 0
	s.settle()
}
