package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("REDIS_ENABLED", "")
	t.Setenv("CACHE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Blog API", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Redis.CacheTTL)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestLoad_ProductionRequiresPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_PASSWORD")

	t.Setenv("DB_PASSWORD", "hunter2")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Redis(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "10")
	t.Setenv("DB_MIN_CONNECTIONS", "2")
	t.Setenv("DB_RETRY_DELAY", "250ms")

	cfg, err := LoadDatabaseConfig(DatabaseConfig{
		Host: "db.internal", Port: 5433, User: "blog", Password: "pw",
		Database: "blog_dev", SSLMode: "require",
	})
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, int32(10), cfg.MaxConns)
	assert.Equal(t, int32(2), cfg.MinConns)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, "require", cfg.SSLMode)
}

func TestLoadDatabaseConfig_UsesValidatedIdentity(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.prod")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_PASSWORD", "s3cr3t-prod")

	cfg, err := Load()
	require.NoError(t, err)

	dbCfg, err := LoadDatabaseConfig(cfg.Database)
	require.NoError(t, err)
	assert.Equal(t, cfg.Database.Password, dbCfg.Password)
	assert.Equal(t, "s3cr3t-prod", dbCfg.Password)
	assert.Equal(t, "db.prod", dbCfg.Host)
	assert.Equal(t, 6432, dbCfg.Port)
}

func TestLoad_ProductionRejectsDevPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "secret")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_PASSWORD")
}

func TestLoad_MalformedPort(t *testing.T) {
	t.Setenv("DB_PORT", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_PORT")
}

func TestLoadDatabaseConfig_Malformed(t *testing.T) {
	tests := map[string]string{
		"DB_MAX_CONNECTIONS":   "many",
		"DB_CONNECT_TIMEOUT":   "soon",
		"DB_MAX_CONN_LIFETIME": "5",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadDatabaseConfig(DatabaseConfig{})
			assert.ErrorContains(t, err, key)
		})
	}

	t.Run("min above max", func(t *testing.T) {
		t.Setenv("DB_MAX_CONNECTIONS", "2")
		t.Setenv("DB_MIN_CONNECTIONS", "5")
		_, err := LoadDatabaseConfig(DatabaseConfig{})
		assert.Error(t, err)
	})
}
