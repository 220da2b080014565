package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"heritage/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "unesco_heritage_sites", cfg.Database.DatabaseName)
	require.Empty(t, cfg.Redis.URL)
	require.Equal(t, "/auth/login/google-oauth2/", cfg.Auth.LoginURL)
	require.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	require.Equal(t, uint(50), cfg.Catalog.SitesPageSize)
	require.Equal(t, uint(20), cfg.Catalog.CountriesPageSize)
	require.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 0)
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
database:
  host: db.internal
  port: 6432
catalog:
  sitesPageSize: 25
tracing:
  sampleRatio: 0.25
`), 0o600))

	t.Setenv("DATABASE_PORT", "7432")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, 7432, cfg.Database.Port)
	require.Equal(t, uint(25), cfg.Catalog.SitesPageSize)
	require.InDelta(t, 0.25, cfg.Tracing.SampleRatio, 0)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("HERITAGE_TEST_DOTENV=loaded\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("HERITAGE_TEST_DOTENV") })

	require.NoError(t, config.LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	require.Equal(t, "loaded", os.Getenv("HERITAGE_TEST_DOTENV"))
}
