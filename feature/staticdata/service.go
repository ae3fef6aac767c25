package staticdata

import (
	"context"
	"fmt"
	"sort"
	"time"

	"league-assets/core/assets"
	"league-assets/core/datasync"
	"league-assets/core/decode"
	"league-assets/core/search"
	"league-assets/feature/champion"
	"league-assets/feature/item"
	"league-assets/feature/runes"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// VersionInfo describes the versions known to the service.
type VersionInfo struct {
	// Available is newest first.
	Available []string    `json:"available"`
	Desired   string      `json:"desired,omitempty"`
	Caches    []CacheInfo `json:"caches"`
}

// Service exposes every asset kind's cache behind one kind-addressed API.
type Service struct {
	coordinator *datasync.Coordinator
	registry    *assets.Registry
	logger      *zap.Logger

	catalogs map[string]Catalog
	kinds    []string
}

// NewService opens the champion, item and rune caches from registry.
func NewService(ctx context.Context, coordinator *datasync.Coordinator, registry *assets.Registry, logger *zap.Logger) (*Service, error) {
	s := &Service{
		coordinator: coordinator,
		registry:    registry,
		logger:      logger,
		catalogs:    make(map[string]Catalog),
	}

	champions, err := assets.Open(ctx, registry, champion.Kind)
	if err != nil {
		return nil, err
	}
	items, err := assets.Open(ctx, registry, item.Kind)
	if err != nil {
		return nil, err
	}
	paths, err := assets.Open(ctx, registry, runes.Kind)
	if err != nil {
		return nil, err
	}

	base := coordinator.BaseURL()
	s.Register(Bind(champions, base))
	s.Register(Bind(items, base))
	s.Register(Bind(paths, base))
	return s, nil
}

// Register adds a catalog, replacing any with the same kind.
func (s *Service) Register(c Catalog) {
	if _, exists := s.catalogs[c.Kind()]; !exists {
		s.kinds = append(s.kinds, c.Kind())
		sort.Strings(s.kinds)
	}
	s.catalogs[c.Kind()] = c
}

// Kinds lists the registered kind identifiers.
func (s *Service) Kinds() []string {
	return append([]string(nil), s.kinds...)
}

// Catalog returns the catalog for kind.
func (s *Service) Catalog(kind string) (Catalog, error) {
	c, ok := s.catalogs[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return c, nil
}

// Sync brings one kind up to date.
func (s *Service) Sync(ctx context.Context, kind string, force bool) (datasync.Result, error) {
	c, err := s.Catalog(kind)
	if err != nil {
		return datasync.Result{}, err
	}
	return s.coordinator.Update(ctx, c, force)
}

// SyncAll brings every kind up to date concurrently. Each kind is attempted
// regardless of the others; the first failure is returned alongside all results.
func (s *Service) SyncAll(ctx context.Context, force bool) ([]datasync.Result, error) {
	results := make([]datasync.Result, len(s.kinds))
	var g errgroup.Group
	for i, kind := range s.kinds {
		c := s.catalogs[kind]
		g.Go(func() error {
			res, err := s.coordinator.Update(ctx, c, force)
			results[i] = res
			return err
		})
	}
	return results, g.Wait()
}

// Search ranks one kind's assets against query. An empty ordering name means the recommended one.
func (s *Service) Search(kind, query, ordering string) ([]Hit, error) {
	c, err := s.Catalog(kind)
	if err != nil {
		return nil, err
	}
	o, err := search.ParseOrdering(ordering)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return c.Search(query, o), nil
}

// Asset returns one asset by the text form of its id.
func (s *Service) Asset(kind, id string) (assets.Asset, error) {
	c, err := s.Catalog(kind)
	if err != nil {
		return nil, err
	}
	return c.Asset(id)
}

// Caches summarizes every cache.
func (s *Service) Caches() []CacheInfo {
	out := make([]CacheInfo, 0, len(s.kinds))
	for _, kind := range s.kinds {
		out = append(out, s.catalogs[kind].Info())
	}
	return out
}

// Versions reports the available versions, fetching the list when refresh is set
// or when it has never been fetched.
func (s *Service) Versions(ctx context.Context, refresh bool) (VersionInfo, error) {
	v := s.coordinator.Versions()
	list := v.List()
	if refresh || len(list) == 0 {
		var err error
		if list, err = v.Refresh(ctx); err != nil {
			return VersionInfo{}, err
		}
	}
	return VersionInfo{Available: list, Desired: v.Desired(), Caches: s.Caches()}, nil
}

// Export renders one kind's cache in the simple shape.
func (s *Service) Export(kind string) ([]byte, error) {
	c, err := s.Catalog(kind)
	if err != nil {
		return nil, err
	}
	return c.Export()
}

// Import replaces one kind's cache with payload. An empty version is taken from
// the payload's top-level "version" member.
func (s *Service) Import(ctx context.Context, kind string, payload []byte, shape decode.Shape, version string) (CacheInfo, error) {
	c, err := s.Catalog(kind)
	if err != nil {
		return CacheInfo{}, err
	}
	if version == "" {
		root, err := decode.Parse(payload)
		if err != nil {
			return CacheInfo{}, err
		}
		if version, err = decode.Required(root, "version", decode.String); err != nil {
			return CacheInfo{}, err
		}
	}
	if err := c.Apply(ctx, payload, shape, version); err != nil {
		return CacheInfo{}, err
	}
	s.logger.Info("Cache imported", zap.String("kind", kind), zap.String("version", version))
	return c.Info(), nil
}

// Flush persists every cache.
func (s *Service) Flush(ctx context.Context) {
	s.registry.Flush(ctx)
}

// Watch refreshes the version list and syncs every kind each interval until ctx ends.
// Failures are logged and retried on the next tick.
func (s *Service) Watch(ctx context.Context, interval time.Duration, force bool) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("Watching for new versions", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, force)
		}
	}
}

func (s *Service) tick(ctx context.Context, force bool) {
	if _, err := s.coordinator.Versions().Refresh(ctx); err != nil {
		s.logger.Warn("Version refresh failed", zap.Error(err))
		return
	}
	results, err := s.SyncAll(ctx, force)
	if err != nil {
		s.logger.Warn("Periodic sync failed", zap.Error(err))
	}
	for _, r := range results {
		if r.Updated {
			s.logger.Info("Periodic sync updated cache", zap.String("kind", r.Kind), zap.String("version", r.Version))
		}
	}
}
