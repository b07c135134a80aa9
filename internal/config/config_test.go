package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("PAGE_SIZE_MAX", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 6, cfg.PageSize)
	assert.Equal(t, 100, cfg.PageSizeMax)
	assert.Equal(t, "foodgram_shopping_cart.txt", cfg.ShoppingListFilename)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"bad ttl":        {"JWT_TTL": "soon"},
		"negative ttl":   {"JWT_TTL": "-1h"},
		"bad page size":  {"PAGE_SIZE": "six"},
		"max below size": {"PAGE_SIZE": "10", "PAGE_SIZE_MAX": "5"},
		"bad log format": {"LOG_FORMAT": "xml"},
		"prod default":   {"APP_ENV": "production", "JWT_SECRET": ""},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "a-real-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
