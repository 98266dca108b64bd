package errors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brynbellomy/go-lazyseq/errors"
)

func TestSentinels(t *testing.T) {
	t.Run("wrapping preserves the sentinel", func(t *testing.T) {
		err := errors.Wrap(errors.ErrInvalidArgument, "Map: nil callback")
		require.True(t, errors.Is(err, errors.ErrInvalidArgument))
		require.True(t, errors.OneOf(err, errors.ErrInvalidArgument))
		require.Equal(t, "Map: nil callback: invalid argument", err.Error())
	})

	t.Run("wrapf formats the message", func(t *testing.T) {
		err := errors.Wrapf(errors.ErrInvalidArgument, "%s: sequence is not recursively traversable", "Flatten")
		require.True(t, errors.Is(err, errors.ErrInvalidArgument))
	})
}

func TestAnnotate(t *testing.T) {
	t.Run("annotates non-nil errors", func(t *testing.T) {
		fn := func() (err error) {
			defer errors.Annotate(&err, "draining sequence")
			return errors.ErrInvalidArgument
		}
		err := fn()
		require.Equal(t, "draining sequence: invalid argument", err.Error())
		require.True(t, errors.Is(err, errors.ErrInvalidArgument))
	})

	t.Run("leaves nil errors alone", func(t *testing.T) {
		fn := func() (err error) {
			defer errors.Annotate(&err, "draining sequence")
			return nil
		}
		require.NoError(t, fn())
	})
}
