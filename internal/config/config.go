package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host     string
	Port     string
	Env      string
	LogLevel slog.Level

	RateLimitRPS   float64
	RateLimitBurst int

	GenMinLength     int
	GenMaxLength     int
	GenDefaultLength int

	EstimatorEnabled bool
	TrustProxy       bool
}

var ErrInvalidLengthRange = errors.New("invalid generator length range")

func Load() Config {
	return Config{
		Host:     getEnv("HOST", "127.0.0.1"),
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnvLevel("LOG_LEVEL", slog.LevelInfo),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),

		GenMinLength:     getEnvInt("GEN_MIN_LENGTH", 8),
		GenMaxLength:     getEnvInt("GEN_MAX_LENGTH", 24),
		GenDefaultLength: getEnvInt("GEN_DEFAULT_LENGTH", 16),

		EstimatorEnabled: getEnvBool("ESTIMATOR_ENABLED", true),
		TrustProxy:       getEnvBool("TRUST_PROXY", false),
	}
}

// Validate checks settings that cannot fall back to a default on their own.
func (c Config) Validate() error {
	if c.GenMinLength < 1 || c.GenMaxLength < c.GenMinLength {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidLengthRange, c.GenMinLength, c.GenMaxLength)
	}
	if c.GenDefaultLength < c.GenMinLength || c.GenDefaultLength > c.GenMaxLength {
		return fmt.Errorf("%w: default %d outside [%d,%d]", ErrInvalidLengthRange, c.GenDefaultLength, c.GenMinLength, c.GenMaxLength)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("invalid rate limit: rps=%v burst=%d", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
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
		slog.Warn("invalid integer in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return b
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		slog.Warn("invalid log level in environment, using default", "key", key, "default", fallback.String())
		return fallback
	}
	return level
}
