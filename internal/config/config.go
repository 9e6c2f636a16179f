package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	BackendBaseURL  string
	DBPath          string
	PrefsPath       string
	SyncTimeout     time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", "127.0.0.1:8090"),
		BackendBaseURL:  envOrDefault("BACKEND_BASE_URL", "http://localhost:8080"),
		DBPath:          envOrDefault("DB_PATH", "storefront.db"),
		PrefsPath:       envOrDefault("PREFS_PATH", "prefs.yaml"),
		SyncTimeout:     envDuration("SYNC_TIMEOUT_SECONDS", 15*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		AllowedOrigins:  []string{envOrDefault("UI_ORIGIN", "http://localhost:3000")},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
