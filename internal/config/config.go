package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	SupabaseURL   string
	SupabaseKey   string
	Port          string
	HTTPTimeout   time.Duration
	LogLevel      slog.Level
	AvgOrderValue float64
	CacheTTL      time.Duration
}

// FromEnv loads configuration from a .env file (when present) and the
// environment. Every field has a working default except the backend
// URL/key; without those, read paths serve demo data only.
func FromEnv() Config {
	godotenv.Load()

	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	ttl := 5 * time.Minute
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			ttl = d
		}
	}
	aov := 120.0
	if v := os.Getenv("AVG_ORDER_VALUE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			aov = f
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	return Config{
		SupabaseURL:   os.Getenv("SUPABASE_URL"),
		SupabaseKey:   os.Getenv("SUPABASE_ANON_KEY"),
		Port:          envOr("PORT", "8080"),
		HTTPTimeout:   to,
		LogLevel:      lvl,
		AvgOrderValue: aov,
		CacheTTL:      ttl,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
