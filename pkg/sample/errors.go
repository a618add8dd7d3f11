package sample

import (
	"errors"
	"fmt"
)

// load error kinds
var (
	ErrNotFound     = errors.New("file not found")
	ErrUnreadable   = errors.New("file unreadable")
	ErrMalformedRow = errors.New("malformed row")
)

// LoadError reports a problem with the input file itself.
// Kind is one of ErrNotFound, ErrUnreadable or ErrMalformedRow.
type LoadError struct {
	Path string
	Row  int // 0 when not row specific
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("load %s: %v", e.Path, e.Kind)
	if e.Row > 0 {
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// SchemaError reports a missing or malformed header.
type SchemaError struct {
	Path    string
	Missing []string
	Reason  string
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("schema %s: missing required column(s) %v", e.Path, e.Missing)
	}
	return fmt.Sprintf("schema %s: %s", e.Path, e.Reason)
}

// TypeMismatchError reports a field that cannot be coerced to its column type.
type TypeMismatchError struct {
	Row    int
	Column string
	Value  string
	Want   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("row %d: column %s: cannot parse %q as %s", e.Row, e.Column, e.Value, e.Want)
}
