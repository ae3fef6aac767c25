package staticdata_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"league-assets/core/kvstore"
	"league-assets/core/loader"
	"league-assets/feature/staticdata"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T, svc *staticdata.Service) *fiber.App {
	t.Helper()
	app := fiber.New()
	manager := loader.NewManager(zap.NewNop())
	manager.Register(staticdata.NewFeature(svc))
	require.NoError(t, manager.LoadAll(app))
	return app
}

func get(t *testing.T, app *fiber.App, method, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil), 2000)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHandleSearch(t *testing.T) {
	svc := newService(t, newSource(t), kvstore.NewMemory())
	_, err := svc.SyncAll(context.Background(), false)
	require.NoError(t, err)
	app := newApp(t, svc)

	status, body := get(t, app, "GET", "/assets/champion/search?q=ahr")
	require.Equal(t, fiber.StatusOK, status)

	var res staticdata.SearchResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "recommended", res.Ordering)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "Ahri", res.Hits[0].ID)
	assert.Contains(t, string(body), `"quality":"from-start"`)
}

func TestHandleSearchErrors(t *testing.T) {
	app := newApp(t, newService(t, newSource(t), kvstore.NewMemory()))

	status, body := get(t, app, "GET", "/assets/masteries/search?q=x")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(body), "unknown asset kind")

	status, _ = get(t, app, "GET", "/assets/champion/search?q=x&ordering=alphabetical")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleAsset(t *testing.T) {
	svc := newService(t, newSource(t), kvstore.NewMemory())
	_, err := svc.SyncAll(context.Background(), false)
	require.NoError(t, err)
	app := newApp(t, svc)

	status, body := get(t, app, "GET", "/assets/item/3031")
	require.Equal(t, fiber.StatusOK, status)
	var it map[string]any
	require.NoError(t, json.Unmarshal(body, &it))
	assert.Equal(t, "Infinity Edge", it["name"])
	assert.Equal(t, "7.4.1", it["version"])

	status, _ = get(t, app, "GET", "/assets/item/4242")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = get(t, app, "GET", "/assets/item/edge")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleSync(t *testing.T) {
	src := newSource(t)
	app := newApp(t, newService(t, src, kvstore.NewMemory()))

	status, body := get(t, app, "POST", "/assets/runesReforged/sync")
	require.Equal(t, fiber.StatusOK, status)
	var res staticdata.SyncResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.True(t, res.Result.Updated)
	assert.Equal(t, "7.4.1", res.Result.Version)
	assert.Empty(t, res.Error)

	src.broken.Store(true)
	status, body = get(t, app, "POST", "/assets/runesReforged/sync?force=true")
	assert.Equal(t, fiber.StatusBadGateway, status)
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Contains(t, res.Error, "transport failure")
	assert.Equal(t, "7.4.1", res.Result.Version)

	status, _ = get(t, app, "POST", "/assets/masteries/sync")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandleVersionsAndCaches(t *testing.T) {
	src := newSource(t)
	app := newApp(t, newService(t, src, kvstore.NewMemory()))

	status, body := get(t, app, "GET", "/versions")
	require.Equal(t, fiber.StatusOK, status)
	var info staticdata.VersionInfo
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Equal(t, []string{"7.4.1", "7.3.3"}, info.Available)

	status, body = get(t, app, "GET", "/assets")
	require.Equal(t, fiber.StatusOK, status)
	var caches []staticdata.CacheInfo
	require.NoError(t, json.Unmarshal(body, &caches))
	assert.Len(t, caches, 3)

	src.broken.Store(true)
	status, _ = get(t, app, "GET", "/versions?refresh=true")
	assert.Equal(t, fiber.StatusBadGateway, status)
}

func TestHandleExport(t *testing.T) {
	svc := newService(t, newSource(t), kvstore.NewMemory())
	_, err := svc.Sync(context.Background(), "item", false)
	require.NoError(t, err)
	app := newApp(t, svc)

	status, body := get(t, app, "GET", "/assets/item/export")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"type": "item"`)
	assert.Contains(t, string(body), `"version": "7.4.1"`)
}
