package lazyseq

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Explode returns a lazy sequence over str split on delim, keyed by chunk
// ordinal. Like strings.Split, adjacent delimiters produce empty chunks and
// an empty str yields a single empty chunk. With an empty delim the split is
// one pair per rune, keyed by rune position.
func Explode(str, delim string) Sequence[int, string] {
	if delim == "" {
		return &explodeRunes{str: str}
	}
	return &explodeChunks{str: str, delim: delim}
}

type explodeChunks struct {
	str   string
	delim string
	start int
	idx   int
	done  bool
}

func (s *explodeChunks) Valid() bool { return !s.done }

func (s *explodeChunks) Key() int {
	if s.done {
		panicExhausted()
	}
	return s.idx
}

func (s *explodeChunks) Value() string {
	if s.done {
		panicExhausted()
	}
	if i := strings.Index(s.str[s.start:], s.delim); i >= 0 {
		return s.str[s.start : s.start+i]
	}
	return s.str[s.start:]
}

func (s *explodeChunks) Next() {
	if s.done {
		return
	}
	if i := strings.Index(s.str[s.start:], s.delim); i >= 0 {
		s.start += i + len(s.delim)
		s.idx++
		return
	}
	// Last chunk has no trailing delimiter.
	s.done = true
}

func (s *explodeChunks) Rewind() {
	s.start, s.idx, s.done = 0, 0, false
}

type explodeRunes struct {
	str string
	off int
	idx int
}

func (s *explodeRunes) Valid() bool { return s.off < len(s.str) }

func (s *explodeRunes) Key() int {
	if !s.Valid() {
		panicExhausted()
	}
	return s.idx
}

func (s *explodeRunes) Value() string {
	if !s.Valid() {
		panicExhausted()
	}
	_, size := utf8.DecodeRuneInString(s.str[s.off:])
	return s.str[s.off : s.off+size]
}

func (s *explodeRunes) Next() {
	if !s.Valid() {
		return
	}
	_, size := utf8.DecodeRuneInString(s.str[s.off:])
	s.off += size
	s.idx++
}

func (s *explodeRunes) Rewind() {
	s.off, s.idx = 0, 0
}

// Implode drains s and joins its stringified values with glue. An empty
// sequence yields the empty string.
func Implode[K comparable, V any](s Sequence[K, V], glue string) string {
	var b strings.Builder
	first := true
	for ; s.Valid(); s.Next() {
		if !first {
			b.WriteString(glue)
		}
		fmt.Fprint(&b, s.Value())
		first = false
	}
	return b.String()
}
