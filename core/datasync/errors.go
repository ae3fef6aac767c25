package datasync

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks a failed fetch.
	ErrTransport = errors.New("transport failure")
	// ErrDecode marks a payload that could not be decoded.
	ErrDecode = errors.New("decode failure")
	// ErrEmptyVersionList marks a version endpoint that returned no versions.
	ErrEmptyVersionList = errors.New("remote returned an empty version list")
)

// SyncError describes a failed sync. Reason is one of the sentinels above and Err
// the underlying cause; both match errors.Is and errors.As.
type SyncError struct {
	Kind    string
	Version string
	Reason  error
	Err     error
}

func (e *SyncError) Error() string {
	target := e.Kind
	if target == "" {
		target = "versions"
	}
	if e.Version != "" {
		target += "@" + e.Version
	}
	if e.Err == nil {
		return fmt.Sprintf("sync %s: %v", target, e.Reason)
	}
	return fmt.Sprintf("sync %s: %v: %v", target, e.Reason, e.Err)
}

func (e *SyncError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

// forKind attributes a version negotiation failure to the kind being synced.
func forKind(err error, kind string) error {
	var se *SyncError
	if errors.As(err, &se) && se.Kind == "" {
		cp := *se
		cp.Kind = kind
		return &cp
	}
	return err
}
