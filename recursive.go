package lazyseq

import (
	"github.com/brynbellomy/go-lazyseq/errors"
)

// Flatten returns a lazy depth-first sequence over the leaves of a nested
// input, down to maxDepth levels of descent. A negative maxDepth means
// unbounded. Only values without children are yielded; a container reached
// at the depth limit is yielded as-is instead of being descended into. Every
// yielded pair keeps the key it has in its own container.
//
// input may be a native container (slice, array, map, arbitrarily nested), a
// scalar, or a RecursiveSequence. Passing a sequence without the recursive
// capability returns an error wrapping errors.ErrInvalidArgument.
func Flatten(input any, maxDepth int) (Sequence[any, any], error) {
	root, err := asRecursive(input, "Flatten")
	if err != nil {
		return nil, err
	}
	f := &flattenSeq{root: root, maxDepth: maxDepth}
	f.stack = append(f.stack, flattenFrame{seq: root})
	f.settle()
	return f, nil
}

// FlattenDeep is Flatten with unbounded depth.
func FlattenDeep(input any) (Sequence[any, any], error) {
	return Flatten(input, -1)
}

// FilterTree wraps a nested input with a predicate that is evaluated only on
// values that have children: when pred(value, key) is false the entire
// subtree is skipped. Leaves are never tested and always pass through. The
// result is itself recursive-capable, so it composes with Flatten.
//
// FilterTree returns an error wrapping errors.ErrInvalidArgument if pred is
// nil or if input is a sequence without the recursive capability.
func FilterTree(input any, pred func(value, key any) bool) (RecursiveSequence, error) {
	if pred == nil {
		return nil, errors.Wrap(errors.ErrInvalidArgument, "FilterTree: nil predicate")
	}
	root, err := asRecursive(input, "FilterTree")
	if err != nil {
		return nil, err
	}
	f := &filterTreeSeq{inner: root, pred: pred}
	f.settle()
	return f, nil
}

func asRecursive(input any, op string) (RecursiveSequence, error) {
	if rs, ok := input.(RecursiveSequence); ok {
		return rs, nil
	}
	if _, ok := input.(pullable); ok {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "%s: sequence is not recursively traversable", op)
	}
	return coerceNode(input), nil
}

type flattenFrame struct {
	seq   RecursiveSequence
	depth int
}

// flattenSeq walks the tree with an explicit frame stack so depth
// enforcement is direct and stack usage stays bounded.
type flattenSeq struct {
	root     RecursiveSequence
	maxDepth int
	stack    []flattenFrame
}

// settle descends and pops until the top frame sits on a yieldable value: a
// childless value, or any value once the depth limit blocks further descent.
func (s *flattenSeq) settle() {
	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if !top.seq.Valid() {
			s.stack = s.stack[:len(s.stack)-1]
			if len(s.stack) > 0 {
				s.stack[len(s.stack)-1].seq.Next()
			}
			continue
		}
		if top.seq.HasChildren() && (s.maxDepth < 0 || top.depth < s.maxDepth) {
			child := top.seq.Children()
			child.Rewind()
			s.stack = append(s.stack, flattenFrame{seq: child, depth: top.depth + 1})
			continue
		}
		return
	}
}

func (s *flattenSeq) Valid() bool { return len(s.stack) > 0 }

func (s *flattenSeq) Key() any {
	if !s.Valid() {
		panicExhausted()
	}
	return s.stack[len(s.stack)-1].seq.Key()
}

func (s *flattenSeq) Value() any {
	if !s.Valid() {
		panicExhausted()
	}
	return s.stack[len(s.stack)-1].seq.Value()
}

func (s *flattenSeq) Next() {
	if !s.Valid() {
		return
	}
	s.stack[len(s.stack)-1].seq.Next()
	s.settle()
}

func (s *flattenSeq) Rewind() {
	s.root.Rewind()
	s.stack = s.stack[:0]
	s.stack = append(s.stack, flattenFrame{seq: s.root})
	s.settle()
}

type filterTreeSeq struct {
	inner RecursiveSequence
	pred  func(value, key any) bool
}

// settle skips subtrees whose root the predicate rejects. Childless values
// are never tested.
func (s *filterTreeSeq) settle() {
	for s.inner.Valid() && s.inner.HasChildren() && !s.pred(s.inner.Value(), s.inner.Key()) {
		s.inner.Next()
	}
}

func (s *filterTreeSeq) Valid() bool { return s.inner.Valid() }
func (s *filterTreeSeq) Key() any    { return s.inner.Key() }
func (s *filterTreeSeq) Value() any  { return s.inner.Value() }

func (s *filterTreeSeq) Next() {
	s.inner.Next()
	s.settle()
}

func (s *filterTreeSeq) Rewind() {
	s.inner.Rewind()
	s.settle()
}

func (s *filterTreeSeq) HasChildren() bool { return s.inner.HasChildren() }

func (s *filterTreeSeq) Children() RecursiveSequence {
	child := &filterTreeSeq{inner: s.inner.Children(), pred: s.pred}
	child.settle()
	return child
}
