package lazyseq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	lazyseq "github.com/brynbellomy/go-lazyseq"
)

func TestCoerce(t *testing.T) {
	t.Run("an existing dynamic sequence passes through unchanged", func(t *testing.T) {
		orig := lazyseq.Coerce([]any{1, 2})
		require.Equal(t, orig, lazyseq.Coerce(orig))
	})

	t.Run("slices keep their indices as keys", func(t *testing.T) {
		seq := lazyseq.Coerce([]string{"a", "b"})
		require.Equal(t, []lazyseq.Pair[any, any]{{0, "a"}, {1, "b"}}, lazyseq.Pairs(seq))
	})

	t.Run("maps keep their own keys", func(t *testing.T) {
		seq := lazyseq.Coerce(map[string]int{"x": 1, "y": 2})
		require.ElementsMatch(t, []lazyseq.Pair[any, any]{{"x", 1}, {"y", 2}}, lazyseq.Pairs(seq))
	})

	t.Run("map entry order is stable across rewinds", func(t *testing.T) {
		seq := lazyseq.Coerce(map[string]int{"a": 1, "b": 2, "c": 3})
		first := lazyseq.Pairs(seq)
		seq.Rewind()
		require.Equal(t, first, lazyseq.Pairs(seq))
	})

	t.Run("a scalar becomes a one-pair sequence keyed zero", func(t *testing.T) {
		seq := lazyseq.Coerce("hello")
		require.Equal(t, []lazyseq.Pair[any, any]{{0, "hello"}}, lazyseq.Pairs(seq))
	})

	t.Run("nil coerces to a one-pair sequence", func(t *testing.T) {
		seq := lazyseq.Coerce(nil)
		require.True(t, seq.Valid())
		require.Nil(t, seq.Value())
		seq.Next()
		require.False(t, seq.Valid())
	})

	t.Run("nested containers are recursive-capable", func(t *testing.T) {
		seq := lazyseq.Coerce([]any{1, []any{2, 3}})
		rs, ok := seq.(lazyseq.RecursiveSequence)
		require.True(t, ok)

		require.False(t, rs.HasChildren())
		rs.Next()
		require.True(t, rs.HasChildren())
		require.Equal(t, []any{2, 3}, lazyseq.Values[any, any](rs.Children()))
	})
}
