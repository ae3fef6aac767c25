package staticdata

import (
	"fmt"

	"league-assets/core/assets"
	"league-assets/core/datasync"
	"league-assets/core/search"
)

// Hit is one search result, ready to render.
type Hit struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Quality  search.Quality `json:"quality"`
	ImageURL string         `json:"imageUrl"`
}

// CacheInfo summarizes one cache.
type CacheInfo struct {
	Kind    string `json:"kind"`
	Version string `json:"version"`
	Count   int    `json:"count"`
}

// Catalog is a cache with its id and asset types erased, so kinds can be handled uniformly.
type Catalog interface {
	datasync.Target
	Len() int
	Info() CacheInfo
	Search(query string, ordering search.Ordering) []Hit
	// Asset looks up the asset whose id has the given text form.
	Asset(id string) (assets.Asset, error)
	Export() ([]byte, error)
}

type binding[ID comparable, A assets.Asset] struct {
	*assets.Cache[ID, A]
	baseURL string
}

// Bind erases the type parameters of cache. baseURL is the source root used for image URLs.
func Bind[ID comparable, A assets.Asset](cache *assets.Cache[ID, A], baseURL string) Catalog {
	return &binding[ID, A]{Cache: cache, baseURL: baseURL}
}

func (b *binding[ID, A]) Info() CacheInfo {
	contents, version := b.Snapshot()
	return CacheInfo{Kind: b.Kind(), Version: version, Count: len(contents)}
}

func (b *binding[ID, A]) Search(query string, ordering search.Ordering) []Hit {
	contents, _ := b.Snapshot()
	matches := search.Run(contents, query, ordering)

	kind := b.Descriptor()
	hits := make([]Hit, 0, len(matches))
	for _, m := range matches {
		a := contents[m.ID]
		hits = append(hits, Hit{
			ID:       fmt.Sprint(m.ID),
			Name:     a.AssetName(),
			Quality:  m.Quality,
			ImageURL: kind.ImageURL(b.baseURL, a.AssetVersion(), a.AssetImage()),
		})
	}
	return hits
}

func (b *binding[ID, A]) Asset(raw string) (assets.Asset, error) {
	id, err := b.Descriptor().ParseID(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	a, ok := b.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, b.Kind(), raw)
	}
	return a, nil
}
