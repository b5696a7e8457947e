package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultLessonAPIBaseURL is the production scheduling API endpoint used
// when LESSON_API_BASE_URL is not set.
const DefaultLessonAPIBaseURL = "https://unime.prod.up.cineca.it"

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// LessonAPIBaseURL is the base URL of the external scheduling API.
	LessonAPIBaseURL string
	// UpstreamTimeout bounds every outbound fetch to the scheduling API.
	UpstreamTimeout time.Duration

	// CacheBackend selects the lesson cache implementation: "memory" or "redis".
	CacheBackend string
	RedisURL     string
	CacheTTL     time.Duration

	// PeriodBoundaryMinutes is the morning/afternoon cutoff expressed as
	// minutes from midnight. Lessons starting at or after the boundary count
	// as afternoon lessons. Defaults to 13:00; deployments that need the
	// older 12:00 behavior set PERIOD_BOUNDARY=12:00.
	PeriodBoundaryMinutes int

	// AllowedOrigins controls HTTP CORS. Empty slice means all origins are
	// permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		GinMode:               getEnv("GIN_MODE", "debug"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "pretty"),
		LessonAPIBaseURL:      getEnv("LESSON_API_BASE_URL", DefaultLessonAPIBaseURL),
		UpstreamTimeout:       time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 8)) * time.Second,
		CacheBackend:          getEnv("CACHE_BACKEND", "memory"),
		RedisURL:              getEnv("REDIS_URL", "redis://localhost:6379/0"),
		CacheTTL:              time.Duration(getEnvInt("CACHE_TTL_MINUTES", 15)) * time.Minute,
		PeriodBoundaryMinutes: parseBoundary(getEnv("PERIOD_BOUNDARY", "13:00")),
		AllowedOrigins:        parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseBoundary converts an "HH:MM" clock string into minutes from midnight.
// Malformed values fall back to 13:00.
func parseBoundary(raw string) int {
	const fallback = 13 * 60

	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return fallback
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return fallback
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return fallback
	}
	return h*60 + m
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
