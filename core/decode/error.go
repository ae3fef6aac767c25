package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrMissing marks a required field that is absent or null.
	ErrMissing = errors.New("missing required field")
	// ErrType marks a field whose JSON type does not match.
	ErrType = errors.New("unexpected type")
	// ErrSyntax marks a payload that is not valid JSON.
	ErrSyntax = errors.New("invalid JSON")
)

// Error is a decode failure annotated with the offending field path.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	path := e.Path
	if path == "" {
		path = "(root)"
	}
	return fmt.Sprintf("decode %s: %v", path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(path string, err error) *Error {
	return &Error{Path: path, Err: err}
}

func typeError(path, want string, got Value) *Error {
	return fail(path, fmt.Errorf("%w: want %s, got %s", ErrType, want, got.kindName()))
}
