package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "NODE_ENV", "APP_ENV", "APP_NAME", "APP_HOST", "APP_VERSION",
		"HTTP_REQUEST_TIMEOUT_SECONDS", "POSTGRES_DSN", "REDIS_ADDR", "REDIS_DB",
		"LOG_LEVEL", "LOG_DEVELOPMENT", "CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(3001)
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.App.Port)
	assert.Equal(t, "0.0.0.0:3001", cfg.App.Addr())
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "CRM Backend Server", cfg.App.Name)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.True(t, cfg.Logger.Development)
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "*", cfg.CORS.AllowOrigins)
}

func TestLoad_EntrypointDefaultPort(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(3002)
	require.NoError(t, err)
	assert.Equal(t, 3002, cfg.App.Port)
}

func TestLoad_PortFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8088")
	t.Setenv("APP_HOST", "127.0.0.1")

	cfg, err := Load(3001)
	require.NoError(t, err)
	assert.Equal(t, 8088, cfg.App.Port)
	assert.Equal(t, "127.0.0.1:8088", cfg.App.Addr())
}

func TestLoad_InvalidPort(t *testing.T) {
	for _, raw := range []string{"http", "0", "70000", "-1"} {
		t.Run(raw, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PORT", raw)
			_, err := Load(3001)
			assert.Error(t, err)
		})
	}
}

func TestLoad_NodeEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NODE_ENV", "production")
	t.Setenv("APP_ENV", "staging")

	cfg, err := Load(3001)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.Logger.Development)
}

func TestLoad_AppEnvAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "staging")

	cfg, err := Load(3001)
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.App.Env)
}

func TestRequestTimeout_Disabled(t *testing.T) {
	assert.Zero(t, AppConfig{RequestTimeoutSeconds: 0}.RequestTimeout())
}
