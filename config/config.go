package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingPort = errors.New("PORT is not set")

type Config struct {
	Port            string
	DatabaseURL     string
	Env             string
	LogLevel        zerolog.Level
	CORSOrigins     []string
	TrustedProxies  []string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// IsProduction hides error details and switches to JSON logs.
func (c *Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads the environment, after applying a .env file if there is one.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:            strings.TrimSpace(getenv("PORT")),
		DatabaseURL:     strings.TrimSpace(getenv("DATABASE_URL")),
		Env:             strings.ToLower(strings.TrimSpace(getenv("ENV"))),
		CORSOrigins:     []string{"*"},
		RateLimitMax:    100,
		RateLimitWindow: 15 * time.Minute,
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	if cfg.Port == "" {
		return nil, ErrMissingPort
	}
	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	cfg.LogLevel = zerolog.DebugLevel
	if cfg.IsProduction() {
		cfg.LogLevel = zerolog.InfoLevel
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	if v := getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	cfg.TrustedProxies = splitList(getenv("TRUSTED_PROXIES"))

	if v := getenv("RATE_LIMIT_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_MAX %q", v)
		}
		cfg.RateLimitMax = n
	}
	if v := getenv("RATE_LIMIT_WINDOW"); v != "" {
		window, err := time.ParseDuration(v)
		if err != nil || window <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW %q", v)
		}
		cfg.RateLimitWindow = window
	}

	return cfg, nil
}

func splitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
