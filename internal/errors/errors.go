// Package errors provides a unified interface for error handling,
// combining stdlib errors with pkg/errors for stack trace support.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap returns an error annotating err with a stack trace and the supplied message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf returns an error annotating err with a stack trace and the format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error with stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Mark tags err with a sentinel. The result formats as err, matches both err and
// mark under Is, and resolves As against mark first.
func Mark(err, mark error) error {
	if err == nil {
		return nil
	}

	return &markedError{cause: err, mark: mark}
}

// MarkWrap is Mark followed by Wrap.
func MarkWrap(err, mark error, message string) error {
	if err == nil {
		return nil
	}

	return pkgerrors.Wrap(Mark(err, mark), message)
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string {
	return e.cause.Error()
}

func (e *markedError) Unwrap() []error {
	return []error{e.mark, e.cause}
}
