package configs

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func setRequiredEnv(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017/bookstore")
	t.Setenv("ATLAS_URI", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("RATE_LIMIT_MAX", "")
}

func TestFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "Development")
	t.Setenv("RATE_LIMIT_MAX", "120")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017/bookstore", cfg.DatabaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 120, cfg.RateLimitMax)
}

func TestFromEnvAtlasAlias(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ATLAS_URI", "mongodb+srv://cluster0.example.net/")
	// an unset DATABASE_URL falls back to ATLAS_URI
	unsetEnv(t, "DATABASE_URL")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "mongodb+srv://cluster0.example.net/", cfg.DatabaseURL)
	assert.Zero(t, cfg.RequestTimeout)
	assert.False(t, cfg.IsDevelopment())
}

func TestFromEnvMissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
		want  string
	}{
		{name: "port", unset: "PORT", want: "PORT is not set"},
		{name: "database url", unset: "DATABASE_URL", want: "DATABASE_URL is not set"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromEnvInvalidValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "REQUEST_TIMEOUT")

	setRequiredEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "-1s")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "must not be negative")

	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "loud")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "LOG_LEVEL")

	setRequiredEnv(t)
	t.Setenv("RATE_LIMIT_MAX", "-5")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "RATE_LIMIT_MAX")

	// an unknown backend is rejected here, before any connection attempt
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "redis://localhost:6379")
	_, err = FromEnv()
	assert.ErrorContains(t, err, `DATABASE_URL: unsupported database scheme "redis"`)

	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "localhost:27017")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "has no scheme")
}

func TestDatabaseScheme(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"mongodb://localhost:27017/bookstore", "mongodb"},
		{"mongodb+srv://cluster0.example.net/", "mongodb"},
		{"PostgreSQL://localhost/bookstore", "postgres"},
		{"sqlite://bookstore.db", "sqlite"},
		{"memory://", "memory"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := DatabaseScheme(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := DatabaseScheme("mysql://root@localhost/db")
	assert.ErrorContains(t, err, `unsupported database scheme "mysql"`)
}

func TestGetEnvDefault(t *testing.T) {
	unsetEnv(t, "BOOKSTORE_TEST_UNSET")
	assert.Equal(t, "fallback", GetEnv("BOOKSTORE_TEST_UNSET", "fallback"))

	t.Setenv("BOOKSTORE_TEST_SET", "")
	assert.Equal(t, "", GetEnv("BOOKSTORE_TEST_SET", "fallback"))
}

func TestGormLoggerLogMode(t *testing.T) {
	log, err := NewLogger(Config{LogLevel: "info"})
	require.NoError(t, err)

	base := NewGormLogger(log)
	silent := base.LogMode(gormLogger.Silent)

	assert.Equal(t, gormLogger.Warn, base.(*GormLogger).LogLevel)
	assert.Equal(t, gormLogger.Silent, silent.(*GormLogger).LogLevel)
}
