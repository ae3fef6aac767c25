package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.SyncOnStart)
	assert.Equal(t, "https://ddragon.leagueoflegends.com", cfg.Source.BaseURL)
	assert.Equal(t, "en_US", cfg.Source.Locale)
	assert.Equal(t, "api", cfg.Source.Format)
	assert.Empty(t, cfg.Source.Version)
	assert.Equal(t, "bolt", cfg.Store.Backend)
	assert.Equal(t, "LoLAPI", cfg.Store.Namespace)
	assert.Equal(t, 30, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, time.Second, cfg.HTTP.DefaultRetryAfter)
	assert.Equal(t, "euw1", cfg.Riot.Region)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SOURCE_VERSION", "7.4.1")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("HTTP_MAX_RETRIES", "3")
	t.Setenv("SERVER_SYNC_ON_START", "false")
	t.Setenv("RIOT_API_KEY", "RGAPI-x")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "7.4.1", cfg.Source.Version)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, 3, cfg.HTTP.MaxRetries)
	assert.False(t, cfg.Server.SyncOnStart)
	assert.Equal(t, "RGAPI-x", cfg.Riot.APIKey)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SOURCE_LOCALE=de_DE\nLOG_FORMAT=console\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SOURCE_LOCALE")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "de_DE", cfg.Source.Locale)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestBindValuesRegistersNestedKeys(t *testing.T) {
	v := viper.New()
	bindValues(v, Config{}, "")

	assert.True(t, v.IsSet("source.base_url"))
	assert.True(t, v.IsSet("store.table"))
	assert.Equal(t, "asset_cache", v.GetString("store.table"))
}
