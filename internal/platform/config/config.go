package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	AdminCacheTTL      time.Duration
	OutboxPollInterval time.Duration
}

func Load() (Config, error) {
	// Local development overlay; a missing .env file is fine.
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "caritas"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		AdminCacheTTL:      time.Duration(envInt("ADMIN_CACHE_TTL_SECONDS", 60)) * time.Second,
		OutboxPollInterval: time.Duration(envInt("OUTBOX_POLL_INTERVAL_MS", 2000)) * time.Millisecond,
	}, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
