// Package apperr classifies failures so callers can decide between
// retrying, exiting quietly and aborting.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Unknown Kind = iota
	InvalidTopLevelChoice
	InvalidPaletteChoice
	NoFileSelected
	SourceUnavailable
	DecodeOrProcessingFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidTopLevelChoice:
		return "invalid top level choice"
	case InvalidPaletteChoice:
		return "invalid palette choice"
	case NoFileSelected:
		return "no file selected"
	case SourceUnavailable:
		return "source unavailable"
	case DecodeOrProcessingFailure:
		return "decode or processing failure"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, apperr.New(kind, "", nil)) works
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the outermost *Error in the chain, Unknown if none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
