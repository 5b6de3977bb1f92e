package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "STORE_DRIVER", "DATABASE_URL", "REDIS_URL", "CACHE_TTL_SECONDS", "JWT_SECRET", "JWT_ISSUER", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/users")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadMemoryDriverNeedsNoDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]map[string]string{
		"postgres without url": {},
		"unknown driver":       {"STORE_DRIVER": "mongo"},
		"bad ttl":              {"STORE_DRIVER": "memory", "CACHE_TTL_SECONDS": "soon"},
		"negative ttl":         {"STORE_DRIVER": "memory", "CACHE_TTL_SECONDS": "-5"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
