// Package synlesserr defines the editor's error taxonomy (spec.md §7).
package synlesserr

import (
	"fmt"

	"go.uber.org/multierr"
)

// Kind tags an Error with one of the twelve error kinds spec.md §7 names.
type Kind string

const (
	KindLanguage   = Kind("language")
	KindDoc        = Kind("doc")
	KindEdit       = Kind("edit")
	KindClipboard  = Kind("clipboard")
	KindBookmark   = Kind("bookmark")
	KindKeymap     = Kind("keymap")
	KindPane       = Kind("pane")
	KindFrontend   = Kind("frontend")
	KindFileSystem = Kind("filesystem")
	KindEscape     = Kind("escape")
	KindAbort      = Kind("abort")
	KindBug        = Kind("bug")
)

// Error is a kind-tagged, optionally row-tagged error, generalized from the
// teacher's SpecError{Cause, Row}.
type Error struct {
	Kind  Kind
	Cause error
	Row   int
}

func (e *Error) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("%v: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("%v:%v: %v", e.Kind, e.Row, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an Error of the given kind wrapping cause.
func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// Newf is New with a formatted cause.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Cause: fmt.Errorf(format, args...)}
}

// AtRow is New with a row attached (e.g. a language-description parse
// error).
func AtRow(kind Kind, row int, cause error) *Error {
	return &Error{Kind: kind, Cause: cause, Row: row}
}

// Is reports whether err (or any error it wraps) carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if se, ok := err.(*Error); ok {
			e = se
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}

// Aggregate collects independent errors of the same kind (e.g. several
// language-description problems found while loading one file, or several
// rollback failures while unwinding a failed command group) into a single
// error, the same way the teacher's cmd/vartan collected a SpecErrors slice,
// but via go.uber.org/multierr instead of a hand-rolled slice type.
func Aggregate(kind Kind, errs ...error) error {
	err := multierr.Combine(errs...)
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Cause: err}
}

// Bug panics with a diagnostic, per spec.md §7: "Bug ... aborts with a
// diagnostic; never silently ignored."
func Bug(format string, args ...interface{}) {
	panic(New(KindBug, fmt.Errorf(format, args...)))
}
