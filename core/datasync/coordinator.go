package datasync

import (
	"context"
	"fmt"
	"strings"

	"league-assets/core/decode"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Target is a cache the coordinator can bring up to date.
type Target interface {
	Kind() string
	// Key is the persistence key of the underlying cache, empty when unpersisted.
	Key() string
	Version() string
	Apply(ctx context.Context, payload []byte, shape decode.Shape, version string) error
}

// Result reports what an Update did.
type Result struct {
	Kind     string `json:"kind"`
	Previous string `json:"previous"`
	Version  string `json:"version"`
	// Updated is false when the cache already held the target version.
	Updated bool `json:"updated"`
}

// Coordinator brings caches up to date with as little network use as possible.
type Coordinator struct {
	fetcher  Fetcher
	versions *Versions
	baseURL  string
	locale   string
	shape    decode.Shape
	logger   *zap.Logger

	sf singleflight.Group
}

// NewCoordinator creates a coordinator for the source described by cfg.
func NewCoordinator(fetcher Fetcher, versions *Versions, cfg Config, logger *zap.Logger) (*Coordinator, error) {
	shape, err := decode.ParseShape(cfg.Format)
	if err != nil {
		return nil, err
	}
	locale := cfg.Locale
	if locale == "" {
		locale = "en_US"
	}
	return &Coordinator{
		fetcher:  fetcher,
		versions: versions,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		locale:   locale,
		shape:    shape,
		logger:   logger,
	}, nil
}

// Versions returns the version negotiator.
func (c *Coordinator) Versions() *Versions { return c.versions }

// BaseURL returns the source root, used to build image URLs.
func (c *Coordinator) BaseURL() string { return c.baseURL }

// DataURL is the location of one kind's data file.
func (c *Coordinator) DataURL(version, kind string) string {
	return fmt.Sprintf("%s/cdn/%s/data/%s/%s.json", c.baseURL, version, c.locale, kind)
}

// Update syncs target to the resolved version. Unless force is set, a target already
// at that version is left alone without any data fetch. On failure the target keeps
// its previous contents and version.
//
// Concurrent calls for the same cache share one in-flight update and its outcome,
// including calls made through different wrappers of a persisted cache. The shared
// update runs under the first caller's ctx: if that caller cancels, every joined
// caller fails with it.
func (c *Coordinator) Update(ctx context.Context, target Target, force bool) (Result, error) {
	key := fmt.Sprintf("%s|%s|%t", target.Kind(), flightID(target), force)
	res, err, shared := c.sf.Do(key, func() (any, error) {
		return c.update(ctx, target, force)
	})
	if shared {
		c.logger.Debug("Joined in-flight update", zap.String("kind", target.Kind()))
	}
	return res.(Result), err
}

// flightID identifies the cache behind target. Unpersisted caches fall back to
// the target's own address.
func flightID(target Target) string {
	if key := target.Key(); key != "" {
		return "key:" + key
	}
	return fmt.Sprintf("ptr:%p", target)
}

func (c *Coordinator) update(ctx context.Context, target Target, force bool) (Result, error) {
	kind := target.Kind()
	res := Result{Kind: kind, Previous: target.Version()}

	version, err := c.versions.Target(ctx)
	if err != nil {
		return res, forKind(err, kind)
	}
	res.Version = version

	if !force && version == res.Previous {
		c.logger.Debug("Cache is current", zap.String("kind", kind), zap.String("version", version))
		return res, nil
	}

	url := c.DataURL(version, kind)
	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		c.logger.Warn("Fetch failed", zap.String("kind", kind), zap.String("url", url), zap.Error(err))
		res.Version = res.Previous
		return res, &SyncError{Kind: kind, Version: version, Reason: ErrTransport, Err: err}
	}

	if err := target.Apply(ctx, body, c.shape, version); err != nil {
		c.logger.Warn("Decode failed", zap.String("kind", kind), zap.String("version", version), zap.Error(err))
		res.Version = res.Previous
		return res, &SyncError{Kind: kind, Version: version, Reason: ErrDecode, Err: err}
	}

	res.Updated = true
	c.logger.Info("Cache updated",
		zap.String("kind", kind),
		zap.String("from", res.Previous),
		zap.String("to", version),
		zap.Int("bytes", len(body)),
	)
	return res, nil
}
