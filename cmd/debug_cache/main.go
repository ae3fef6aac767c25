package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"league-assets/core/config"
	"league-assets/core/decode"
	"league-assets/core/storage"

	"github.com/minio/minio-go/v7"
)

// Lists the cache snapshots kept in object storage and checks that each one parses.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	fmt.Printf("=== Snapshots under %s/%s ===\n", cfg.Storage.Bucket, cfg.Store.Prefix)

	opts := minio.ListObjectsOptions{
		Prefix:    cfg.Store.Prefix,
		Recursive: true,
	}

	count := 0
	for obj := range client.ListObjects(ctx, cfg.Storage.Bucket, opts) {
		if obj.Err != nil {
			log.Fatal(obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		count++

		version, entries, err := inspect(ctx, client, cfg.Storage.Bucket, obj.Key)
		if err != nil {
			fmt.Printf("File: %s (%d bytes)\n  -> unreadable: %v\n", obj.Key, obj.Size, err)
			continue
		}
		fmt.Printf("File: %s (%d bytes)\n  -> version %s, %d entries\n", obj.Key, obj.Size, version, entries)
	}

	fmt.Printf("\nTotal snapshots: %d\n", count)
}

func inspect(ctx context.Context, client storage.Client, bucket, key string) (string, int, error) {
	r, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", 0, err
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}

	root, err := decode.Parse(body)
	if err != nil {
		return "", 0, err
	}
	version, err := decode.Required(root, "version", decode.String)
	if err != nil {
		return "", 0, err
	}
	contents, err := root.Object("contents")
	if err != nil {
		return version, 0, err
	}

	entries := 0
	err = contents.Each(func(string, decode.Value) error {
		entries++
		return nil
	})
	return version, entries, err
}
