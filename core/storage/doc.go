// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the object-backed
// cache store needs. Both AWS S3 and self-hosted MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket on startup.
//   - PutObject / GetObject: write and read one persisted cache blob.
//   - ListObjects: enumerate persisted keys under a prefix.
//   - RemoveObject: drop one persisted cache.
//
// IsNotFound translates the provider's NoSuchKey response so callers can treat a
// missing blob as "nothing cached yet".
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
