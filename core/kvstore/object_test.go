package kvstore_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"league-assets/core/kvstore"
	"league-assets/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newObjectStore(t *testing.T, client *mocks.Client) *kvstore.Object {
	t.Helper()
	client.On("BucketExists", mock.Anything, "static").Return(true, nil)
	s, err := kvstore.NewObject(context.Background(), client, "static", "", "cache/")
	require.NoError(t, err)
	return s
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestObjectStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Get", func(t *testing.T) {
		client := mocks.NewClient(t)
		s := newObjectStore(t, client)
		client.On("GetObject", ctx, "static", "cache/LoLAPI.item.json", minio.GetObjectOptions{}).
			Return(io.NopCloser(strings.NewReader(`{"version":"7.4.1"}`)), nil)

		data, err := s.Get(ctx, "LoLAPI.item")
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":"7.4.1"}`, string(data))
	})

	t.Run("GetMissingOnRead", func(t *testing.T) {
		client := mocks.NewClient(t)
		s := newObjectStore(t, client)
		client.On("GetObject", ctx, "static", "cache/LoLAPI.item.json", minio.GetObjectOptions{}).
			Return(io.NopCloser(failingReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}), nil)

		_, err := s.Get(ctx, "LoLAPI.item")
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("GetFailure", func(t *testing.T) {
		client := mocks.NewClient(t)
		s := newObjectStore(t, client)
		client.On("GetObject", ctx, "static", "cache/LoLAPI.item.json", minio.GetObjectOptions{}).
			Return(nil, errors.New("connection reset"))

		_, err := s.Get(ctx, "LoLAPI.item")
		assert.ErrorContains(t, err, "connection reset")
		assert.NotErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("Put", func(t *testing.T) {
		client := mocks.NewClient(t)
		s := newObjectStore(t, client)
		client.On("PutObject", ctx, "static", "cache/LoLAPI.item.json", mock.Anything, int64(2),
			minio.PutObjectOptions{ContentType: "application/json"}).Return(minio.UploadInfo{}, nil)

		assert.NoError(t, s.Put(ctx, "LoLAPI.item", []byte(`{}`)))
	})

	t.Run("DeleteMissingIgnored", func(t *testing.T) {
		client := mocks.NewClient(t)
		s := newObjectStore(t, client)
		client.On("RemoveObject", ctx, "static", "cache/LoLAPI.item.json", minio.RemoveObjectOptions{}).
			Return(minio.ErrorResponse{Code: "NoSuchKey"})

		assert.NoError(t, s.Delete(ctx, "LoLAPI.item"))
	})

	t.Run("Keys", func(t *testing.T) {
		client := mocks.NewClient(t)
		s := newObjectStore(t, client)

		ch := make(chan minio.ObjectInfo, 2)
		ch <- minio.ObjectInfo{Key: "cache/LoLAPI.item.json"}
		ch <- minio.ObjectInfo{Key: "cache/LoLAPI.champion.json"}
		close(ch)
		client.On("ListObjects", ctx, "static", minio.ListObjectsOptions{Prefix: "cache/LoLAPI.", Recursive: true}).
			Return((<-chan minio.ObjectInfo)(ch))

		keys, err := s.Keys(ctx, "LoLAPI.")
		require.NoError(t, err)
		assert.Equal(t, []string{"LoLAPI.champion", "LoLAPI.item"}, keys)
	})
}
