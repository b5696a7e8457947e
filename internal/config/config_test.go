package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, DefaultLessonAPIBaseURL, cfg.LessonAPIBaseURL)
	require.Equal(t, 15*time.Minute, cfg.CacheTTL)
	require.Equal(t, 8*time.Second, cfg.UpstreamTimeout)
	require.Equal(t, "memory", cfg.CacheBackend)
	require.Equal(t, 13*60, cfg.PeriodBoundaryMinutes)
	require.Nil(t, cfg.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CACHE_TTL_MINUTES", "5")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "3")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("PERIOD_BOUNDARY", "12:00")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	require.Equal(t, 5*time.Minute, cfg.CacheTTL)
	require.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	require.Equal(t, "redis", cfg.CacheBackend)
	require.Equal(t, 12*60, cfg.PeriodBoundaryMinutes)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestParseBoundary(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"13:00", 780},
		{"12:00", 720},
		{"09:30", 570},
		{"0:00", 0},
		{"23:59", 1439},
		{"25:00", 780}, // out of range hour falls back
		{"12:75", 780}, // out of range minute falls back
		{"noon", 780},
		{"", 780},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, parseBoundary(tt.raw), "parseBoundary(%q)", tt.raw)
	}
}

func TestGetEnvIntBadValueFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL_MINUTES", "soon")

	cfg := Load()
	require.Equal(t, 15*time.Minute, cfg.CacheTTL)
}
