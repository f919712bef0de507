package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.UpstreamURL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "ru", cfg.DefaultLocale)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("UPSTREAM_API_URL", "https://api.example.com/v1")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("DEFAULT_LOCALE", "en")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "https://api.example.com/v1", cfg.UpstreamURL)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, "en", cfg.DefaultLocale)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("PAGE_SIZE", "not-a-number")
	assert.Equal(t, 10, Load().PageSize)
}
