package assets

import (
	"fmt"
	"strconv"
	"strings"

	"league-assets/core/decode"
	"league-assets/core/search"
)

// NoVersion is the version of a cache that has never been synced.
const NoVersion = "N/A"

// Asset is one cached record of some kind.
type Asset interface {
	search.Named
	AssetImage() string
	AssetVersion() string
	// StampVersion records the data version the record was published under.
	StampVersion(version string)
}

// Base holds the fields every asset kind shares. Kinds embed it.
type Base struct {
	Name        string   `json:"name"`
	ImageName   string   `json:"imageName"`
	Version     string   `json:"version"`
	Description string   `json:"description,omitempty"`
	SearchTerms []string `json:"searchTerms,omitempty"`
}

func (b *Base) AssetName() string           { return b.Name }
func (b *Base) AlternateNames() []string    { return b.SearchTerms }
func (b *Base) AssetImage() string          { return b.ImageName }
func (b *Base) AssetVersion() string        { return b.Version }
func (b *Base) StampVersion(version string) { b.Version = version }

// DecodeFunc turns a payload of the given shape into cache contents.
// version is the batch version, for records that do not carry their own.
type DecodeFunc[ID comparable, A Asset] func(payload []byte, shape decode.Shape, version string) (map[ID]A, error)

// Kind describes one asset kind: how it is named remotely and how it is decoded.
type Kind[ID comparable, A Asset] struct {
	// Identifier names the kind in remote URLs and persistence keys ("champion").
	Identifier string
	Decode     DecodeFunc[ID, A]
	// ParseID converts an id taken from a URL or command line.
	ParseID func(string) (ID, error)
	// ImagePath overrides the default image location, relative to the source base URL.
	ImagePath func(version, image string) string
}

// ImageURL builds the image location of an asset; it is never fetched here.
func (k Kind[ID, A]) ImageURL(base, version, image string) string {
	base = strings.TrimRight(base, "/")
	if k.ImagePath != nil {
		return base + k.ImagePath(version, image)
	}
	return fmt.Sprintf("%s/cdn/%s/img/%s/%s", base, version, k.Identifier, image)
}

// StringID is a ParseID for kinds keyed by string.
func StringID(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("empty id")
	}
	return s, nil
}

// IntID is a ParseID for kinds keyed by integer.
func IntID(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: want an integer", s)
	}
	return n, nil
}

// Key is the persistence key of a kind within a namespace.
func Key(namespace, identifier string) string {
	return namespace + "." + identifier
}
