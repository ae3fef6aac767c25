package staticdata

import "errors"

var (
	// ErrUnknownKind is returned for a kind no catalog is registered for.
	ErrUnknownKind = errors.New("unknown asset kind")
	// ErrNotFound is returned when a cache holds no asset with the requested id.
	ErrNotFound = errors.New("asset not found")
	// ErrBadRequest marks caller mistakes such as a malformed id or an unknown ordering.
	ErrBadRequest = errors.New("bad request")
)
