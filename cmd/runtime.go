package cmd

import (
	"context"
	"fmt"

	"league-assets/core/assets"
	"league-assets/core/config"
	"league-assets/core/database"
	"league-assets/core/datasync"
	"league-assets/core/kvstore"
	"league-assets/core/logger"
	"league-assets/core/storage"
	"league-assets/core/transport"
	"league-assets/feature/staticdata"

	"go.uber.org/zap"
)

// runtime is everything a command needs to work with the caches.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    kvstore.Store
	registry *assets.Registry
	service  *staticdata.Service
}

// bootstrap loads configuration and wires the store, the sync coordinator and the service.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := openStore(ctx, cfg, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache store: %w", err)
	}

	client := transport.New(cfg.HTTP, logg)
	versions := datasync.NewVersions(client, cfg.Source, logg)
	if cfg.Source.Version != "" {
		versions.SetDesired(cfg.Source.Version)
		logg.Info("Data version pinned", zap.String("version", cfg.Source.Version))
	}
	coordinator, err := datasync.NewCoordinator(client, versions, cfg.Source, logg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	registry := assets.NewRegistry(store, cfg.Store.Namespace, logg)
	service, err := staticdata.NewService(ctx, coordinator, registry, logg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &runtime{
		cfg:      cfg,
		logger:   logg,
		store:    store,
		registry: registry,
		service:  service,
	}, nil
}

// openStore connects only the backend the configuration selects.
func openStore(ctx context.Context, cfg *config.Config, logg *zap.Logger) (kvstore.Store, error) {
	deps := kvstore.Deps{Bucket: cfg.Storage.Bucket, Region: cfg.Storage.Region}

	switch cfg.Store.Backend {
	case kvstore.BackendObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		deps.Storage = client
		logg.Info("Using object storage for caches", zap.String("bucket", cfg.Storage.Bucket))
	case kvstore.BackendDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		deps.DB = db
		logg.Info("Using database for caches", zap.String("driver", cfg.Database.Driver), zap.String("table", cfg.Store.Table))
	}

	return kvstore.Open(ctx, cfg.Store, deps)
}

// Close persists every cache and releases the store.
func (r *runtime) Close(ctx context.Context) {
	r.service.Flush(ctx)
	if err := r.store.Close(); err != nil {
		r.logger.Warn("Failed to close cache store", zap.Error(err))
	}
	_ = r.logger.Sync()
}
