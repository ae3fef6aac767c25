// Package kvstore persists serialized caches under string keys.
//
// The static data caches only need a tiny contract from their store: put a blob under
// "<namespace>.<kind>", read it back, delete it, list what is there. Store captures
// that contract and this package provides four backends for it:
//
//   - bolt: a local bbolt file with a single bucket (default).
//   - object: one JSON object per key in an S3/MinIO bucket via core/storage.
//   - database: a key/value table in MySQL or SQLite via GORM (core/database).
//   - memory: process-local, nothing survives a restart.
//
// Get reports a missing key with ErrNotFound so callers can tell "nothing cached yet"
// apart from a failing backend.
//
// # Usage
//
//	store, err := kvstore.Open(ctx, cfg.Store, kvstore.Deps{Storage: client, Bucket: cfg.Storage.Bucket})
//	defer store.Close()
//	blob, err := store.Get(ctx, "LoLAPI.champion")
package kvstore
