package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL())
	assert.False(t, cfg.Search.QuickSearchEnabled())
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
database:
  type: mysql
  mysql:
    host: db.internal
    port: 3306
    user: analyst
    database: property_analyst
auth:
  token_ttl_days: 30
search:
  meilisearch:
    host: http://localhost:7700
server:
  port: "8080"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Type)
	assert.Equal(t, "db.internal", cfg.Database.MySQL.Host)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Search.QuickSearchEnabled())

	// Untouched keys keep their defaults
	assert.Equal(t, "02:00", cfg.Search.Meilisearch.ReindexTime)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowOrigins)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [not: valid"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestTokenTTLDefaultsWhenUnset(t *testing.T) {
	cfg := AuthConfig{}
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL())
}
