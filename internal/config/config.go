// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the planner server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list; "*" allows any origin.
	CORSOrigins []string

	// DatabaseURL selects the Postgres POI catalog. Empty uses the built-in catalog.
	DatabaseURL string

	// RedisURL enables the description cache. Empty disables it.
	RedisURL string

	// GeminiAPIKey enables generated descriptions. Empty means every
	// description comes from the fallback template.
	GeminiAPIKey string

	// GeminiModel is the model used for descriptions.
	GeminiModel string

	// TextGenTimeout bounds each description request. Defaults to 8s.
	TextGenTimeout time.Duration

	// EnrichConcurrency caps concurrent description requests per destination.
	EnrichConcurrency int

	// DescriptionCacheTTL is how long generated descriptions stay cached.
	DescriptionCacheTTL time.Duration
}

// Load reads configuration from environment variables, after merging in a
// .env file from the working directory when one exists. Variables already
// set in the environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "*")),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}

	var problems []string

	var err error
	if cfg.TextGenTimeout, err = durationEnv("TEXTGEN_TIMEOUT", 8*time.Second); err != nil {
		problems = append(problems, err.Error())
	}
	if cfg.DescriptionCacheTTL, err = durationEnv("DESCRIPTION_CACHE_TTL", 24*time.Hour); err != nil {
		problems = append(problems, err.Error())
	}
	if cfg.EnrichConcurrency, err = intEnv("ENRICH_CONCURRENCY", 4); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, v)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
