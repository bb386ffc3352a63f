package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 120.0, cfg.AvgOrderValue)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("AVG_ORDER_VALUE", "85.5")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := FromEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, 85.5, cfg.AvgOrderValue)
	assert.Equal(t, "https://example.supabase.co", cfg.SupabaseURL)
}

func TestFromEnvIgnoresBadNumbers(t *testing.T) {
	t.Setenv("AVG_ORDER_VALUE", "not-a-number")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")

	cfg := FromEnv()

	assert.Equal(t, 120.0, cfg.AvgOrderValue)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}
