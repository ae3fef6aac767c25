package kvstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"league-assets/core/storage"

	"github.com/minio/minio-go/v7"
)

// Object stores each blob as one object in a bucket.
type Object struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObject ensures the bucket exists and returns an object-backed store.
func NewObject(ctx context.Context, client storage.Client, bucket, region, prefix string) (*Object, error) {
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return nil, err
	}
	return &Object{client: client, bucket: bucket, prefix: prefix}, nil
}

func (s *Object) objectName(key string) string {
	return s.prefix + key + ".json"
}

func (s *Object) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName(key), minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	defer obj.Close()

	// minio defers the request until the first read, so a missing key surfaces here.
	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}
	return data, nil
}

func (s *Object) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.objectName(key), bytes.NewReader(value), int64(len(value)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (s *Object) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, s.objectName(key), minio.RemoveObjectOptions{})
	if err != nil && !storage.IsNotFound(err) {
		return fmt.Errorf("remove object %s: %w", key, err)
	}
	return nil
}

func (s *Object) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	opts := minio.ListObjectsOptions{Prefix: s.prefix + prefix, Recursive: true}
	for info := range s.client.ListObjects(ctx, s.bucket, opts) {
		if info.Err != nil {
			return nil, fmt.Errorf("list objects: %w", info.Err)
		}
		name := strings.TrimPrefix(info.Key, s.prefix)
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Object) Close() error { return nil }
