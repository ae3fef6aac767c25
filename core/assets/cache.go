package assets

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"

	"league-assets/core/decode"
	"league-assets/core/kvstore"
	"league-assets/core/logger"
	"league-assets/core/search"

	"go.uber.org/zap"
)

// snapshot is the persisted form of a cache.
type snapshot[ID comparable, A Asset] struct {
	Version  string   `json:"version"`
	Contents map[ID]A `json:"contents"`
}

// export is the simple payload shape, so an exported cache can be imported again.
type export[ID comparable, A Asset] struct {
	Type    string   `json:"type"`
	Version string   `json:"version"`
	Data    map[ID]A `json:"data"`
}

// Cache holds the contents and version of one asset kind.
// Contents only ever change through Replace, which swaps both fields together.
type Cache[ID comparable, A Asset] struct {
	kind Kind[ID, A]

	mu       sync.RWMutex
	contents map[ID]A
	version  string

	store  kvstore.Store
	key    string
	shared bool
	logger *zap.Logger
}

// New returns an empty, unpersisted cache.
func New[ID comparable, A Asset](kind Kind[ID, A]) *Cache[ID, A] {
	return &Cache[ID, A]{
		kind:     kind,
		contents: make(map[ID]A),
		version:  NoVersion,
		logger:   zap.NewNop(),
	}
}

// Load reads the cache persisted under "<namespace>.<kind>".
// It never fails: a missing or unreadable blob yields an empty cache at NoVersion.
func Load[ID comparable, A Asset](ctx context.Context, store kvstore.Store, namespace string, kind Kind[ID, A], log *zap.Logger) *Cache[ID, A] {
	c := New(kind)
	c.store = store
	c.key = Key(namespace, kind.Identifier)
	c.logger = logger.ForKind(log, kind.Identifier)

	blob, err := store.Get(ctx, c.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		c.logger.Debug("No persisted cache, starting empty", zap.String("key", c.key))
		return c
	}
	if err != nil {
		c.logger.Warn("Failed to read persisted cache, starting empty", zap.String("key", c.key), zap.Error(err))
		return c
	}

	var snap snapshot[ID, A]
	if err := json.Unmarshal(blob, &snap); err != nil {
		c.logger.Warn("Persisted cache is corrupt, starting empty", zap.String("key", c.key), zap.Error(err))
		return c
	}

	for id, a := range snap.Contents {
		if isNil(a) {
			delete(snap.Contents, id)
		}
	}
	if snap.Contents != nil {
		c.contents = snap.Contents
	}
	if snap.Version != "" {
		c.version = snap.Version
	}
	c.logger.Debug("Loaded persisted cache", zap.String("version", c.version), zap.Int("count", len(c.contents)))
	return c
}

// Save writes the cache to its store. Failures are logged, never returned:
// a stale persisted copy is preferable to failing the caller.
func (c *Cache[ID, A]) Save(ctx context.Context) {
	if c.store == nil {
		return
	}

	c.mu.RLock()
	blob, err := json.Marshal(snapshot[ID, A]{Version: c.version, Contents: c.contents})
	c.mu.RUnlock()
	if err != nil {
		c.logger.Error("Failed to serialize cache", zap.Error(err))
		return
	}

	if err := c.store.Put(ctx, c.key, blob); err != nil {
		c.logger.Error("Failed to persist cache", zap.String("key", c.key), zap.Error(err))
		return
	}
	c.logger.Debug("Persisted cache", zap.String("key", c.key), zap.Int("bytes", len(blob)))
}

// Replace swaps contents and version in one step and stamps every asset with version.
// Shared caches (those handed out by a Registry) are persisted afterwards.
func (c *Cache[ID, A]) Replace(ctx context.Context, contents map[ID]A, version string) {
	if contents == nil {
		contents = make(map[ID]A)
	}
	for _, a := range contents {
		a.StampVersion(version)
	}

	c.mu.Lock()
	c.contents = contents
	c.version = version
	c.mu.Unlock()

	if c.shared {
		c.Save(ctx)
	}
}

// Apply decodes payload and replaces the contents with the result.
// Nothing changes when decoding fails.
func (c *Cache[ID, A]) Apply(ctx context.Context, payload []byte, shape decode.Shape, version string) error {
	contents, err := c.kind.Decode(payload, shape, version)
	if err != nil {
		return err
	}
	c.Replace(ctx, contents, version)
	c.logger.Info("Cache replaced", zap.String("version", version), zap.Int("count", len(contents)))
	return nil
}

// Kind returns the kind identifier.
func (c *Cache[ID, A]) Kind() string { return c.kind.Identifier }

// Descriptor returns the kind descriptor the cache was built with.
func (c *Cache[ID, A]) Descriptor() Kind[ID, A] { return c.kind }

// Key returns the persistence key, empty for unpersisted caches.
func (c *Cache[ID, A]) Key() string { return c.key }

// Shared reports whether Replace persists automatically.
func (c *Cache[ID, A]) Shared() bool { return c.shared }

func (c *Cache[ID, A]) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Cache[ID, A]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.contents)
}

// Get looks up one asset.
func (c *Cache[ID, A]) Get(id ID) (A, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.contents[id]
	return a, ok
}

// Contents returns a copy of the id -> asset mapping.
func (c *Cache[ID, A]) Contents() map[ID]A {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[ID]A, len(c.contents))
	for id, a := range c.contents {
		out[id] = a
	}
	return out
}

// Snapshot returns contents and version read together.
func (c *Cache[ID, A]) Snapshot() (map[ID]A, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[ID]A, len(c.contents))
	for id, a := range c.contents {
		out[id] = a
	}
	return out, c.version
}

// Search ranks the cached assets against query.
func (c *Cache[ID, A]) Search(query string, ordering search.Ordering) []search.Match[ID] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return search.Run(c.contents, query, ordering)
}

// Export renders the cache in the simple payload shape.
func (c *Cache[ID, A]) Export() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return json.MarshalIndent(export[ID, A]{Type: c.kind.Identifier, Version: c.version, Data: c.contents}, "", "  ")
}

func isNil(a any) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
