package staticdata_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"league-assets/core/assets"
	"league-assets/core/datasync"
	"league-assets/core/kvstore"
	"league-assets/core/transport"
	"league-assets/feature/staticdata"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const stats = `{"hp": 514, "hpperlevel": 80, "mp": 334, "mpperlevel": 50, "movespeed": 330,
  "armor": 20, "armorperlevel": 3.5, "spellblock": 30, "spellblockperlevel": 0, "attackrange": 550,
  "hpregen": 6.5, "hpregenperlevel": 0.6, "mpregen": 6, "mpregenperlevel": 0.8,
  "attackdamage": 53, "attackdamageperlevel": 3, "attackspeed": 0.668, "attackspeedperlevel": 2}`

var championPayload = `{"type": "champion", "version": "7.4.1", "data": {
  "Ahri": {"version": "7.4.1", "id": "Ahri", "key": "103", "name": "Ahri", "title": "the Nine-Tailed Fox",
    "blurb": "A fox.", "tags": ["Mage", "Fox"], "image": {"full": "Ahri.png"}, "stats": ` + stats + `},
  "Annie": {"version": "7.4.1", "id": "Annie", "key": "1", "name": "Annie", "title": "the Dark Child",
    "blurb": "A child.", "tags": ["Mage"], "image": {"full": "Annie.png"}, "stats": ` + stats + `}
}}`

const itemPayload = `{"type": "item", "version": "7.4.1", "data": {
  "3031": {"name": "Infinity Edge", "description": "crit", "colloq": ";IE", "plaintext": "Crits", "image": {"full": "3031.png"}},
  "1001": {"name": "Boots of Speed", "description": "fast", "colloq": ";", "plaintext": "Fast", "image": {"full": "1001.png"}}
}}`

const runePayload = `[{"id": 8100, "key": "Domination", "icon": "perk-images/Styles/7200_Domination.png", "name": "Domination",
  "slots": [{"runes": [{"id": 8112, "key": "Electrocute", "icon": "e.png", "name": "Electrocute", "shortDesc": "s", "longDesc": "l"}]}]}]`

// source is a fake static data CDN that counts data file requests.
type source struct {
	server   *httptest.Server
	versions atomic.Value
	fetches  atomic.Int32
	broken   atomic.Bool
}

func newSource(t *testing.T) *source {
	t.Helper()
	s := &source{}
	s.versions.Store(`["7.4.1", "7.3.3"]`)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.broken.Load() {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		if r.URL.Path == "/api/versions.json" {
			_, _ = w.Write([]byte(s.versions.Load().(string)))
			return
		}
		s.fetches.Add(1)
		switch {
		case strings.HasSuffix(r.URL.Path, "/data/en_US/champion.json"):
			_, _ = w.Write([]byte(championPayload))
		case strings.HasSuffix(r.URL.Path, "/data/en_US/item.json"):
			_, _ = w.Write([]byte(itemPayload))
		case strings.HasSuffix(r.URL.Path, "/data/en_US/runesReforged.json"):
			_, _ = w.Write([]byte(runePayload))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(s.server.Close)
	return s
}

func newService(t *testing.T, src *source, store kvstore.Store) *staticdata.Service {
	t.Helper()
	logger := zap.NewNop()
	cfg := datasync.Config{BaseURL: src.server.URL, Locale: "en_US", Format: "api"}

	client := transport.New(transport.Config{TimeoutSeconds: 5}, logger)
	versions := datasync.NewVersions(client, cfg, logger)
	coordinator, err := datasync.NewCoordinator(client, versions, cfg, logger)
	require.NoError(t, err)

	registry := assets.NewRegistry(store, "LoLAPI", logger)
	svc, err := staticdata.NewService(context.Background(), coordinator, registry, logger)
	require.NoError(t, err)
	return svc
}
