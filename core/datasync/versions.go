package datasync

import (
	"context"
	"strings"
	"sync"

	"league-assets/core/decode"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Fetcher performs a GET and returns the body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Versions knows which data versions the remote publishes and which one to sync to.
type Versions struct {
	fetcher Fetcher
	baseURL string
	logger  *zap.Logger

	mu      sync.RWMutex
	desired string
	list    []string

	sf singleflight.Group
}

// NewVersions creates a negotiator for the source described by cfg.
func NewVersions(fetcher Fetcher, cfg Config, logger *zap.Logger) *Versions {
	return &Versions{
		fetcher: fetcher,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		desired: cfg.Version,
		logger:  logger,
	}
}

// Refresh fetches the version list, newest first. An empty list is an error and
// leaves the previously known list in place.
func (v *Versions) Refresh(ctx context.Context) ([]string, error) {
	res, err, _ := v.sf.Do("versions", func() (any, error) {
		body, err := v.fetcher.Fetch(ctx, v.baseURL+"/api/versions.json")
		if err != nil {
			return nil, &SyncError{Reason: ErrTransport, Err: err}
		}

		root, err := decode.Parse(body)
		if err != nil {
			return nil, &SyncError{Reason: ErrDecode, Err: err}
		}
		list, err := decode.Strings(root)
		if err != nil {
			return nil, &SyncError{Reason: ErrDecode, Err: err}
		}
		if len(list) == 0 {
			return nil, &SyncError{Reason: ErrEmptyVersionList}
		}

		v.mu.Lock()
		v.list = list
		v.mu.Unlock()

		v.logger.Info("Fetched version list", zap.String("newest", list[0]), zap.Int("count", len(list)))
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]string(nil), res.([]string)...), nil
}

// List returns the last fetched version list, nil if it was never fetched.
func (v *Versions) List() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.list == nil {
		return nil
	}
	return append([]string(nil), v.list...)
}

// Desired returns the pinned version, empty when following the newest.
func (v *Versions) Desired() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.desired
}

// SetDesired pins a version. Empty unpins.
func (v *Versions) SetDesired(version string) {
	v.mu.Lock()
	v.desired = version
	v.mu.Unlock()
}

// Target resolves the version to sync to: the pinned one, else the newest known,
// fetching the list first when it was never fetched.
func (v *Versions) Target(ctx context.Context) (string, error) {
	v.mu.RLock()
	desired, list := v.desired, v.list
	v.mu.RUnlock()

	if desired != "" {
		return desired, nil
	}
	if len(list) > 0 {
		return list[0], nil
	}

	list, err := v.Refresh(ctx)
	if err != nil {
		return "", err
	}
	return list[0], nil
}
