package lazyseq_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	lazyseq "github.com/brynbellomy/go-lazyseq"
	"github.com/brynbellomy/go-lazyseq/errors"
)

func TestMap(t *testing.T) {
	t.Run("transforms values, keeps keys", func(t *testing.T) {
		seq := lazyseq.FromSlice([]int{1, 2, 3})
		mapped := lazyseq.Map(seq, func(x int) string { return strconv.Itoa(x * 10) })

		require.Equal(t, []lazyseq.Pair[int, string]{{0, "10"}, {1, "20"}, {2, "30"}}, lazyseq.Pairs(mapped))
	})

	t.Run("empty sequence", func(t *testing.T) {
		mapped := lazyseq.Map(lazyseq.FromSlice([]int(nil)), func(x int) int { return x })
		require.Empty(t, lazyseq.Values(mapped))
	})

	t.Run("callback runs once per read, not memoized", func(t *testing.T) {
		calls := 0
		mapped := lazyseq.Map(lazyseq.FromSlice([]int{7}), func(x int) int {
			calls++
			return x
		})

		mapped.Value()
		mapped.Value()
		require.Equal(t, 2, calls)
	})

	t.Run("nil callback panics at construction", func(t *testing.T) {
		seq := lazyseq.FromSlice([]int{1})
		require.PanicsWithError(t, "Map: nil callback: invalid argument", func() {
			lazyseq.Map[int, int, int](seq, nil)
		})
	})
}

func TestFilter(t *testing.T) {
	t.Run("keeps matching pairs in order under their keys", func(t *testing.T) {
		seq := lazyseq.FromSlice([]int{1, 2, 3, 4, 5})
		evens := lazyseq.Filter(seq, func(x, _ int) bool { return x%2 == 0 })

		require.Equal(t, []lazyseq.Pair[int, int]{{1, 2}, {3, 4}}, lazyseq.Pairs(evens))
	})

	t.Run("predicate sees the key", func(t *testing.T) {
		seq := lazyseq.FromSlice([]string{"a", "b", "c", "d"})
		oddKeys := lazyseq.Filter(seq, func(_ string, k int) bool { return k%2 == 1 })

		require.Equal(t, []string{"b", "d"}, lazyseq.Values(oddKeys))
	})

	t.Run("nothing matches", func(t *testing.T) {
		seq := lazyseq.FromSlice([]int{1, 3, 5})
		evens := lazyseq.Filter(seq, func(x, _ int) bool { return x%2 == 0 })

		require.False(t, evens.Valid())
		require.Empty(t, lazyseq.Values(evens))
	})

	t.Run("nil predicate panics at construction", func(t *testing.T) {
		seq := lazyseq.FromSlice([]int{1})
		require.Panics(t, func() { lazyseq.Filter(seq, nil) })
	})
}

func TestFlip(t *testing.T) {
	t.Run("swaps keys and values", func(t *testing.T) {
		seq := lazyseq.FromSlice([]string{"a", "b"})
		flipped := lazyseq.Flip(seq)

		require.Equal(t, []lazyseq.Pair[string, int]{{"a", 0}, {"b", 1}}, lazyseq.Pairs(flipped))
	})
}

func TestFlatMap(t *testing.T) {
	t.Run("concatenates sub-sequences keeping their keys", func(t *testing.T) {
		seq := lazyseq.FromSlice([]int{1, 2, 3})
		repeated := lazyseq.FlatMap(seq, func(x int) lazyseq.Sequence[int, int] {
			out := make([]int, x)
			for i := range out {
				out[i] = x
			}
			return lazyseq.FromSlice(out)
		})

		require.Equal(t, []int{1, 2, 2, 3, 3, 3}, lazyseq.Values(repeated))
		repeated.Rewind()
		require.Equal(t, []int{0, 0, 1, 0, 1, 2}, lazyseq.Keys(repeated))
	})

	t.Run("skips elements that map to empty sequences", func(t *testing.T) {
		seq := lazyseq.FromSlice([]int{1, 2, 3, 4})
		odds := lazyseq.FlatMap(seq, func(x int) lazyseq.Sequence[int, int] {
			if x%2 == 0 {
				return lazyseq.FromSlice([]int(nil))
			}
			return lazyseq.Single(x)
		})

		require.Equal(t, []int{1, 3}, lazyseq.Values(odds))
	})

	t.Run("nil callback panics at construction", func(t *testing.T) {
		seq := lazyseq.FromSlice([]int{1})
		require.Panics(t, func() {
			lazyseq.FlatMap[int, int, int, int](seq, nil)
		})
	})
}

func TestInvalidArgumentSentinel(t *testing.T) {
	t.Run("construction panics carry the sentinel", func(t *testing.T) {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			require.True(t, errors.OneOf(err, errors.ErrInvalidArgument))
		}()
		lazyseq.Map[int, int, int](lazyseq.FromSlice([]int{1}), nil)
	})
}
