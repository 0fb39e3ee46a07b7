package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the service.
type Config struct {
	Environment string
	Port        string
	LogLevel    slog.Level

	// DatabaseURL is optional; when empty the service runs on the
	// in-memory store with the demo seed data.
	DatabaseURL string

	// RedisURL is optional; when empty catalog list caching is off.
	RedisURL string

	// KafkaBrokers is optional; when empty domain events stay on the
	// in-process channel bus.
	KafkaBrokers []string

	JWT    JWTConfig
	Gemini GeminiConfig
}

type JWTConfig struct {
	Secret        string
	TokenLifetime time.Duration
}

type GeminiConfig struct {
	APIKey   string
	Endpoint string
	Model    string
}

// LoadConfig reads configuration from the environment, loading .env
// first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		JWT: JWTConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			TokenLifetime: 8 * time.Hour,
		},
		Gemini: GeminiConfig{
			APIKey:   os.Getenv("GEMINI_API_KEY"),
			Endpoint: getEnv("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com"),
			Model:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if lifetime := os.Getenv("TOKEN_LIFETIME"); lifetime != "" {
		d, err := time.ParseDuration(lifetime)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_LIFETIME %q: %w", lifetime, err)
		}
		cfg.JWT.TokenLifetime = d
	}

	if cfg.JWT.Secret == "" {
		if cfg.Environment == "production" {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWT.Secret = "change_this_secret"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
