package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/api")

	cfg, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/api")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("NOTIFICATION_TTL", "90s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://portal.example.com,https://admin.example.com")

	cfg, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 90*time.Second, cfg.NotificationTTL)
	assert.Equal(t, []string{"https://portal.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
}

func TestParse_MissingAPIBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	_, err := Parse()

	assert.Error(t, err)
}

func TestParse_InvalidPageSize(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/api")
	t.Setenv("PAGE_SIZE", "0")

	_, err := Parse()

	assert.Error(t, err)
}

func TestParse_InvalidDuration(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/api")
	t.Setenv("SESSION_TTL", "forever")

	_, err := Parse()

	assert.Error(t, err)
}
