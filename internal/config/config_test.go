package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/api/configurator", cfg.Server.BasePath)
	assert.Equal(t, "@every 30m", cfg.Catalog.RefreshCron)
	assert.Equal(t, "GBP", cfg.Catalog.Currency)
	assert.Equal(t, 10*time.Minute, cfg.Redis.ResolvedTTL)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: "9090"
  mode: release
logger:
  level: debug
database:
  host: db
  port: 5433
  user: sauna
  password: secret
  dbname: products
  sslmode: require
catalog:
  base_url: https://catalog.example.com
  timeout: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com")
	t.Setenv("CATALOG_REFRESH_CRON", "0 */2 * * *")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, 2*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "0 */2 * * *", cfg.Catalog.RefreshCron)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "host=db port=5433 user=sauna password=secret dbname=products sslmode=require TimeZone=UTC", cfg.Database.GetDSN())
}

func TestGetDSN_URLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@h:5432/d")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h:5432/d", cfg.Database.GetDSN())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := Load(path)

	assert.Error(t, err)
}
