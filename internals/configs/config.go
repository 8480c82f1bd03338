package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config is everything the server reads from the process environment.
type Config struct {
	Port        string
	DatabaseURL string
	DBName      string

	Environment      string
	LogLevel         string
	RequestTimeout   time.Duration
	CorsAllowOrigins string
	RateLimitMax     int // requests per IP per minute, 0 = unlimited
	SeedDir          string
}

// =======================
// ENV LOADER
// =======================

// LoadEnv memuat .env ke environment proses (kecuali di Railway).
// Mengembalikan catatan singkat untuk log startup.
func LoadEnv() string {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		return "🚀 Running in Railway, menggunakan ENV dari sistem"
	}
	if err := godotenv.Load(); err != nil {
		return "⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem"
	}
	return "✅ .env file berhasil dimuat!"
}

// FromEnv reads and validates the configuration.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:             strings.TrimSpace(GetEnv("PORT")),
		DatabaseURL:      strings.TrimSpace(GetEnv("DATABASE_URL", GetEnv("ATLAS_URI"))),
		DBName:           strings.TrimSpace(GetEnv("DB_NAME")),
		Environment:      strings.ToLower(strings.TrimSpace(GetEnv("APP_ENV", "production"))),
		LogLevel:         strings.ToLower(strings.TrimSpace(GetEnv("LOG_LEVEL", "info"))),
		CorsAllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "*"),
		SeedDir:          strings.TrimSpace(GetEnv("SEED_DIR")),
	}

	if cfg.Port == "" {
		return cfg, fmt.Errorf("PORT is not set")
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL is not set")
	}
	if _, err := DatabaseScheme(cfg.DatabaseURL); err != nil {
		return cfg, fmt.Errorf("DATABASE_URL: %w", err)
	}

	if raw := strings.TrimSpace(GetEnv("REQUEST_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, fmt.Errorf("REQUEST_TIMEOUT: %w", err)
		}
		if d < 0 {
			return cfg, fmt.Errorf("REQUEST_TIMEOUT must not be negative")
		}
		cfg.RequestTimeout = d
	}

	if raw := strings.TrimSpace(GetEnv("RATE_LIMIT_MAX")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("RATE_LIMIT_MAX must be a non-negative integer, got %q", raw)
		}
		cfg.RateLimitMax = n
	}

	if _, err := zap.ParseAtomicLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

// DatabaseScheme maps the scheme of a connection string onto the backend
// name: "mongodb", "postgres", "sqlite" or "memory".
func DatabaseScheme(rawURL string) (string, error) {
	scheme, _, ok := strings.Cut(strings.TrimSpace(rawURL), "://")
	if !ok {
		return "", fmt.Errorf("database url has no scheme")
	}
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return "mongodb", nil
	case "postgres", "postgresql":
		return "postgres", nil
	case "sqlite", "sqlite3":
		return "sqlite", nil
	case "memory":
		return "memory", nil
	default:
		return "", fmt.Errorf("unsupported database scheme %q (supported: mongodb, mongodb+srv, postgres, postgresql, sqlite, memory)", scheme)
	}
}

// IsDevelopment reports whether APP_ENV selects development defaults.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
