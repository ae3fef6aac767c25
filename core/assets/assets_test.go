package assets_test

import (
	"context"
	"errors"
	"testing"

	"league-assets/core/assets"
	"league-assets/core/decode"
	"league-assets/core/kvstore"
	"league-assets/core/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type widget struct {
	assets.Base
	ID    string `json:"id"`
	Power int    `json:"power"`
}

func decodeWidgets(payload []byte, _ decode.Shape, version string) (map[string]*widget, error) {
	root, err := decode.Parse(payload)
	if err != nil {
		return nil, err
	}
	data, err := root.Object("data")
	if err != nil {
		return nil, err
	}
	out := make(map[string]*widget)
	err = data.Each(func(id string, v decode.Value) error {
		w := &widget{ID: id}
		if w.Name, err = decode.Required(v, "name", decode.String); err != nil {
			return err
		}
		if w.Power, err = decode.Optional(v, "power", decode.Int, 0); err != nil {
			return err
		}
		if w.ImageName, err = decode.Optional(v, "imageName", decode.String, ""); err != nil {
			return err
		}
		if w.SearchTerms, err = decode.Optional(v, "searchTerms", decode.Strings, nil); err != nil {
			return err
		}
		if w.Version, err = decode.Optional(v, "version", decode.String, version); err != nil {
			return err
		}
		out[id] = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

var widgetKind = assets.Kind[string, *widget]{
	Identifier: "widget",
	Decode:     decodeWidgets,
	ParseID:    assets.StringID,
}

const widgetPayload = `{"data": {
	"gear": {"name": "Gear", "power": 3, "imageName": "gear.png", "version": "0.9"},
	"cog": {"name": "Small Cog", "searchTerms": ["sprocket"]}
}}`

type failingStore struct{ kvstore.Memory }

func (*failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestNewCache(t *testing.T) {
	c := assets.New(widgetKind)
	assert.Equal(t, assets.NoVersion, c.Version())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "widget", c.Kind())
	assert.False(t, c.Shared())
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing", func(t *testing.T) {
		c := assets.Load(ctx, kvstore.NewMemory(), "LoLAPI", widgetKind, zap.NewNop())
		assert.Equal(t, assets.NoVersion, c.Version())
		assert.Equal(t, "LoLAPI.widget", c.Key())
	})

	t.Run("Corrupt", func(t *testing.T) {
		store := kvstore.NewMemory()
		require.NoError(t, store.Put(ctx, "LoLAPI.widget", []byte(`{"version": 7`)))

		core, logs := observer.New(zapcore.WarnLevel)
		c := assets.Load(ctx, store, "LoLAPI", widgetKind, zap.New(core))

		assert.Equal(t, assets.NoVersion, c.Version())
		assert.Equal(t, 0, c.Len())
		assert.Equal(t, 1, logs.FilterMessage("Persisted cache is corrupt, starting empty").Len())
	})

	t.Run("StoreFailure", func(t *testing.T) {
		c := assets.Load(ctx, &failingStore{}, "LoLAPI", widgetKind, zap.NewNop())
		assert.Equal(t, assets.NoVersion, c.Version())
	})

	t.Run("NullEntriesDropped", func(t *testing.T) {
		store := kvstore.NewMemory()
		blob := `{"version":"1.0","contents":{"gear":null,"cog":{"id":"cog","name":"Cog","imageName":"","version":"1.0"}}}`
		require.NoError(t, store.Put(ctx, "LoLAPI.widget", []byte(blob)))

		c := assets.Load(ctx, store, "LoLAPI", widgetKind, zap.NewNop())
		assert.Equal(t, "1.0", c.Version())
		assert.Equal(t, 1, c.Len())
	})
}

func TestApplyStampsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	reg := assets.NewRegistry(store, "LoLAPI", zap.NewNop())

	c, err := assets.Open(ctx, reg, widgetKind)
	require.NoError(t, err)
	require.True(t, c.Shared())

	require.NoError(t, c.Apply(ctx, []byte(widgetPayload), decode.Simple, "1.0"))
	assert.Equal(t, "1.0", c.Version())
	assert.Equal(t, 2, c.Len())

	// Every asset carries the cache version, even one whose payload said otherwise.
	for _, w := range c.Contents() {
		assert.Equal(t, "1.0", w.Version)
	}

	// A fresh load sees the persisted snapshot.
	reloaded := assets.Load(ctx, store, "LoLAPI", widgetKind, zap.NewNop())
	assert.Equal(t, c.Version(), reloaded.Version())
	assert.Equal(t, c.Contents(), reloaded.Contents())
}

func TestReplaceUnsharedDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()

	c := assets.Load(ctx, store, "LoLAPI", widgetKind, zap.NewNop())
	c.Replace(ctx, map[string]*widget{"gear": {ID: "gear", Base: assets.Base{Name: "Gear"}}}, "2.0")

	_, err := store.Get(ctx, "LoLAPI.widget")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	c.Save(ctx)
	_, err = store.Get(ctx, "LoLAPI.widget")
	assert.NoError(t, err)
}

func TestApplyDecodeFailureKeepsContents(t *testing.T) {
	ctx := context.Background()
	c := assets.New(widgetKind)
	require.NoError(t, c.Apply(ctx, []byte(widgetPayload), decode.Simple, "1.0"))

	err := c.Apply(ctx, []byte(`{"data": {"bad": {"power": 1}}}`), decode.Simple, "2.0")
	var de *decode.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "data.bad.name", de.Path)

	assert.Equal(t, "1.0", c.Version())
	assert.Equal(t, 2, c.Len())
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := assets.New(widgetKind)
	require.NoError(t, c.Apply(ctx, []byte(widgetPayload), decode.Simple, "1.0"))

	exported, err := c.Export()
	require.NoError(t, err)

	again := assets.New(widgetKind)
	require.NoError(t, again.Apply(ctx, exported, decode.Simple, "ignored"))
	again.Replace(ctx, again.Contents(), "1.0")

	assert.Equal(t, c.Contents(), again.Contents())
}

func TestCacheSearch(t *testing.T) {
	c := assets.New(widgetKind)
	require.NoError(t, c.Apply(context.Background(), []byte(widgetPayload), decode.Simple, "1.0"))

	matches := c.Search("sprocket", search.Recommended)
	require.Len(t, matches, 1)
	assert.Equal(t, "cog", matches[0].ID)
	assert.Equal(t, search.AlternatePerfect, matches[0].Quality)

	matches = c.Search("cog", search.Recommended)
	require.Len(t, matches, 1)
	assert.Equal(t, search.FromWithin, matches[0].Quality)
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	reg := assets.NewRegistry(store, "LoLAPI", zap.NewNop())

	first, err := assets.Open(ctx, reg, widgetKind)
	require.NoError(t, err)
	second, err := assets.Open(ctx, reg, widgetKind)
	require.NoError(t, err)
	assert.Same(t, first, second)

	t.Run("TypeMismatch", func(t *testing.T) {
		other := assets.Kind[int, *widget]{Identifier: "widget", ParseID: assets.IntID}
		_, err := assets.Open(ctx, reg, other)
		assert.ErrorContains(t, err, "different asset type")
	})

	t.Run("Names", func(t *testing.T) {
		assert.Equal(t, []string{"widget"}, reg.Names())
	})

	t.Run("FlushAndForget", func(t *testing.T) {
		reg.Flush(ctx)
		blob, err := store.Get(ctx, "LoLAPI.widget")
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":"N/A","contents":{}}`, string(blob))

		require.NoError(t, reg.Forget(ctx, "widget"))
		_, err = store.Get(ctx, "LoLAPI.widget")
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example/cdn/7.4.1/img/widget/gear.png",
		widgetKind.ImageURL("https://cdn.example/", "7.4.1", "gear.png"))

	custom := widgetKind
	custom.ImagePath = func(_, image string) string { return "/cdn/img/" + image }
	assert.Equal(t, "https://cdn.example/cdn/img/perk.png", custom.ImageURL("https://cdn.example", "7.4.1", "perk.png"))
}

func TestIDs(t *testing.T) {
	n, err := assets.IntID("1001")
	require.NoError(t, err)
	assert.Equal(t, 1001, n)

	_, err = assets.IntID("ahri")
	assert.Error(t, err)

	s, err := assets.StringID("Ahri")
	require.NoError(t, err)
	assert.Equal(t, "Ahri", s)

	_, err = assets.StringID("")
	assert.Error(t, err)
}

func TestPrettyDescription(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<stats>+40 Attack Damage</stats><br><br>Cleaves armor.", "+40 Attack Damage\n\nCleaves armor."},
		{"Deals <magicDamage>80</magicDamage> damage &amp; heals<br/>", "Deals 80 damage & heals"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, assets.PrettyDescription(tt.in))
		})
	}
}
