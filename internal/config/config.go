// Package config loads application configuration from environment variables only.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration structure (env-only).
type Config struct {
	AppEnv   string
	Server   Server
	Redis    Redis
	Security Security
}

// Server holds HTTP server settings: port, timeouts, shutdown budget.
type Server struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Redis holds the rate-limiter backend settings. An empty Addr disables
// Redis entirely (and with it the rate limiter).
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Security holds request limits for the public converter endpoints.
type Security struct {
	RateLimitRPS int
}

// Load reads the config from env with sane defaults; the service runs with
// an empty environment (no secrets are required to convert text).
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "production"),
		Server: Server{
			Port:            getInt("SERVER_PORT", 8080),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Security: Security{
			RateLimitRPS: getInt("RATE_LIMIT_RPS", 20),
		},
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT out of range: %d", cfg.Server.Port)
	}
	if cfg.Security.RateLimitRPS < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}
	return cfg, nil
}

// getEnv returns the env value or def when unset.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getInt parses an integer from env or returns def.
func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// getDuration parses a duration from env or returns def.
func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
