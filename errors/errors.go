// Package errors is the library's error surface: sentinels for the failure
// modes lazyseq can report, plus re-exports of github.com/pkg/errors so
// callers and internal code share one wrapping/unwrapping vocabulary.
package errors

import (
	stderrors "errors"
	"slices"

	"github.com/pkg/errors"
)

// Sentinel errors reported by sequence constructors.
var (
	// ErrInvalidArgument indicates that an adapter was constructed with an
	// argument it cannot work with: a nil callback where a callable is
	// required, or a non-recursive input passed to a recursive-only adapter.
	// It is raised at construction time, never during traversal.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Re-exported functions from github.com/pkg/errors and the standard library
// for convenience.
var (
	// New returns an error that formats as the given text. Each call to New returns
	// a distinct error value even if the text is identical.
	New = errors.New
	// Errorf formats according to a format specifier and returns the string as a
	// value that satisfies error.
	Errorf = errors.Errorf
	// Wrap returns an error annotating err with a stack trace at the point Wrap is called,
	// and the supplied message. If err is nil, Wrap returns nil.
	Wrap = errors.Wrap
	// Wrapf returns an error annotating err with a stack trace at the point Wrapf is called,
	// and the format specifier. If err is nil, Wrapf returns nil.
	Wrapf = errors.Wrapf
	// WithStack annotates err with a stack trace at the point WithStack was called.
	// If err is nil, WithStack returns nil.
	WithStack = errors.WithStack
	// WithMessage annotates err with a new message. If err is nil, WithMessage returns nil.
	WithMessage = errors.WithMessage
	// Cause returns the underlying cause of the error, if possible. An error value has a cause
	// if it implements the causer interface.
	Cause = errors.Cause
	// Is reports whether any error in err's chain matches target.
	Is = stderrors.Is
	// Join returns an error that wraps the given errors. Any nil error values are discarded.
	// Join returns nil if every value in errs is nil.
	Join = stderrors.Join
)

// Annotate wraps the error pointed to by err with the formatted message if err is non-nil.
// This is useful for defer statements where you want to add context to any error returned.
//
// Example usage:
//
//	func doSomething() (err error) {
//	    defer Annotate(&err, "failed to do something")
//	    // ... do work that might return an error
//	}
func Annotate(err *error, msg string, args ...any) {
	if *err != nil {
		*err = errors.Wrapf(*err, msg, args...)
	}
}

// OneOf returns true if the root cause of the received error matches any of the provided errors.
// It uses Cause to unwrap the received error to its root cause before comparison.
//
// Example usage:
//
//	if OneOf(err, ErrInvalidArgument) {
//	    // handle construction failures
//	}
func OneOf(received error, errs ...error) bool {
	return slices.Contains(errs, Cause(received))
}
