package kvstore

import (
	"context"
	"errors"
	"fmt"

	"league-assets/core/storage"

	"gorm.io/gorm"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("key not found")

// Store persists opaque blobs under string keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys lists stored keys starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Backend names accepted by Config.Backend.
const (
	BackendBolt     = "bolt"
	BackendObject   = "object"
	BackendDatabase = "database"
	BackendMemory   = "memory"
)

// Config holds configuration for the cache store.
type Config struct {
	// Backend selects where caches are persisted (bolt, object, database, memory).
	Backend string `mapstructure:"backend" default:"bolt"`
	// Namespace prefixes every persisted cache key.
	Namespace string `mapstructure:"namespace" default:"LoLAPI"`
	// Path is the bolt database file.
	Path string `mapstructure:"path" default:"data/league-assets.db"`
	// Prefix is prepended to object names in the object backend.
	Prefix string `mapstructure:"prefix" default:"cache/"`
	// Table is the table used by the database backend.
	Table string `mapstructure:"table" default:"asset_cache"`
}

// Deps carries the optional clients some backends need.
type Deps struct {
	Storage storage.Client
	Bucket  string
	Region  string
	DB      *gorm.DB
}

// Open creates the store selected by cfg.Backend.
func Open(ctx context.Context, cfg Config, deps Deps) (Store, error) {
	switch cfg.Backend {
	case BackendBolt, "":
		return NewBolt(cfg.Path)
	case BackendMemory:
		return NewMemory(), nil
	case BackendObject:
		if deps.Storage == nil {
			return nil, errors.New("object backend requires a storage client")
		}
		return NewObject(ctx, deps.Storage, deps.Bucket, deps.Region, cfg.Prefix)
	case BackendDatabase:
		if deps.DB == nil {
			return nil, errors.New("database backend requires a database connection")
		}
		return NewSQL(deps.DB, cfg.Table)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
