package lazyseq

import (
	"github.com/brynbellomy/go-lazyseq/errors"
)

// Eager terminal operations. They drain the sequence from its current
// position and do not rewind it first; replay a pipeline explicitly with
// Rewind when needed.

// Reduce folds s left-to-right: carry = fn(carry, value, key) for every
// pair, starting from initial. On an empty sequence the initial value is
// returned unchanged.
//
// Reduce panics with an error wrapping errors.ErrInvalidArgument if fn is
// nil.
func Reduce[K comparable, V, R any](s Sequence[K, V], fn func(R, V, K) R, initial R) R {
	if fn == nil {
		panic(errors.Wrap(errors.ErrInvalidArgument, "Reduce: nil callback"))
	}
	carry := initial
	for ; s.Valid(); s.Next() {
		carry = fn(carry, s.Value(), s.Key())
	}
	return carry
}

// Every reports whether pred(value, key) is true for every pair of s. It
// short-circuits on the first failing pair without consuming the rest, and
// is vacuously true on an empty sequence.
func Every[K comparable, V any](s Sequence[K, V], pred func(V, K) bool) bool {
	if pred == nil {
		panic(errors.Wrap(errors.ErrInvalidArgument, "Every: nil predicate"))
	}
	for ; s.Valid(); s.Next() {
		if !pred(s.Value(), s.Key()) {
			return false
		}
	}
	return true
}

// Some reports whether pred(value, key) is true for at least one pair of s.
// It short-circuits on the first passing pair, and is false on an empty
// sequence.
func Some[K comparable, V any](s Sequence[K, V], pred func(V, K) bool) bool {
	if pred == nil {
		panic(errors.Wrap(errors.ErrInvalidArgument, "Some: nil predicate"))
	}
	for ; s.Valid(); s.Next() {
		if pred(s.Value(), s.Key()) {
			return true
		}
	}
	return false
}

// Find returns the first value of s for which pred(value, key) is true. The
// second return distinguishes "no match" from a legitimately zero-valued
// match. Find short-circuits once a match is found.
func Find[K comparable, V any](s Sequence[K, V], pred func(V, K) bool) (V, bool) {
	if pred == nil {
		panic(errors.Wrap(errors.ErrInvalidArgument, "Find: nil predicate"))
	}
	for ; s.Valid(); s.Next() {
		if v := s.Value(); pred(v, s.Key()) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Search returns the key of the first pair whose value equals needle. The
// second return distinguishes "not found" from a legitimately zero-valued
// key. Search short-circuits once a match is found.
func Search[K, V comparable](s Sequence[K, V], needle V) (K, bool) {
	for ; s.Valid(); s.Next() {
		if s.Value() == needle {
			return s.Key(), true
		}
	}
	var zero K
	return zero, false
}

// Includes reports whether any value of s equals needle, short-circuiting on
// the first match.
func Includes[K, V comparable](s Sequence[K, V], needle V) bool {
	_, found := Search(s, needle)
	return found
}

// Head returns the value at the sequence's current position without
// advancing it. The second return is false when s is exhausted.
func Head[K comparable, V any](s Sequence[K, V]) (V, bool) {
	if !s.Valid() {
		var zero V
		return zero, false
	}
	return s.Value(), true
}

// Last drains s and returns its final value. There is no shortcut without
// random access, so this visits every remaining pair. The second return is
// false when s is exhausted.
func Last[K comparable, V any](s Sequence[K, V]) (V, bool) {
	var last V
	found := false
	for ; s.Valid(); s.Next() {
		last = s.Value()
		found = true
	}
	return last, found
}

// Values drains s into a slice of its values.
func Values[K comparable, V any](s Sequence[K, V]) []V {
	var out []V
	for ; s.Valid(); s.Next() {
		out = append(out, s.Value())
	}
	return out
}

// Keys drains s into a slice of its keys.
func Keys[K comparable, V any](s Sequence[K, V]) []K {
	var out []K
	for ; s.Valid(); s.Next() {
		out = append(out, s.Key())
	}
	return out
}

// Pairs drains s into a slice of its key/value pairs.
func Pairs[K comparable, V any](s Sequence[K, V]) []Pair[K, V] {
	var out []Pair[K, V]
	for ; s.Valid(); s.Next() {
		out = append(out, Pair[K, V]{Key: s.Key(), Value: s.Value()})
	}
	return out
}
