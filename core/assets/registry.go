package assets

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"league-assets/core/kvstore"

	"go.uber.org/zap"
)

type saver interface {
	Save(ctx context.Context)
}

// Registry hands out one shared cache per asset kind.
// Caches are loaded from the store on first use and persist themselves on Replace.
type Registry struct {
	store     kvstore.Store
	namespace string
	logger    *zap.Logger

	mu     sync.Mutex
	caches map[string]saver
}

// NewRegistry creates a registry persisting into store under namespace.
func NewRegistry(store kvstore.Store, namespace string, logger *zap.Logger) *Registry {
	return &Registry{
		store:     store,
		namespace: namespace,
		logger:    logger,
		caches:    make(map[string]saver),
	}
}

// Open returns the shared cache for kind, loading it on first use.
// Opening the same identifier with a different asset type is an error.
func Open[ID comparable, A Asset](ctx context.Context, r *Registry, kind Kind[ID, A]) (*Cache[ID, A], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.caches[kind.Identifier]; ok {
		c, ok := existing.(*Cache[ID, A])
		if !ok {
			return nil, fmt.Errorf("kind %s is already registered with a different asset type", kind.Identifier)
		}
		return c, nil
	}

	c := Load(ctx, r.store, r.namespace, kind, r.logger)
	c.shared = true
	r.caches[kind.Identifier] = c
	r.logger.Debug("Cache opened", zap.String("kind", kind.Identifier), zap.String("version", c.Version()))
	return c, nil
}

// Flush persists every opened cache.
func (r *Registry) Flush(ctx context.Context) {
	r.mu.Lock()
	caches := make([]saver, 0, len(r.caches))
	for _, c := range r.caches {
		caches = append(caches, c)
	}
	r.mu.Unlock()

	for _, c := range caches {
		c.Save(ctx)
	}
}

// Names lists the identifiers of opened caches.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.caches))
	for n := range r.caches {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Namespace returns the persistence namespace.
func (r *Registry) Namespace() string { return r.namespace }

// Forget drops the persisted copy of a kind. An opened cache keeps its contents.
func (r *Registry) Forget(ctx context.Context, identifier string) error {
	return r.store.Delete(ctx, Key(r.namespace, identifier))
}
