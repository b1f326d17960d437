package config

import (
	"flag"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
	oldArgs := os.Args
	os.Args = []string{oldArgs[0]}
	t.Cleanup(func() { os.Args = oldArgs })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URI", "AUTH_SECRET", "TOKEN_TTL_MIN", "BASE_URL", "ENABLE_HTTPS",
		"API_BASE_URL", "STORAGE_DIR", "STORAGE_BACKEND", "LOCALE", "THEME",
		"GRID_LANGUAGE_URL", "REQUEST_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	assert.Equal(t, "fs", cfg.StorageBackend)
	assert.Equal(t, "pt_BR", cfg.Locale)
	assert.Equal(t, "bootstrap", cfg.Theme)
	assert.Contains(t, cfg.GridLanguageURL, "pt-BR.json")
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, time.Hour, cfg.TokenTTL())
	assert.True(t, strings.HasSuffix(cfg.StorageDir, "AdminDashboard"), cfg.StorageDir)
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("REQUEST_TIMEOUT", "5")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	assert.Equal(t, "top", cfg.AuthSecret)
	assert.Equal(t, "sqlite", cfg.StorageBackend)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestNewConfig_APIBaseURLWins(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("API_BASE_URL", "https://admin.example.com/v1/")
	t.Setenv("BASE_URL", "example.com:8080")
	t.Setenv("STORAGE_DIR", dir)

	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, "https://admin.example.com/v1", cfg.ServerURL)
	assert.Equal(t, dir, cfg.StorageDir)
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	clearEnv(t)
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")
	t.Setenv("STORAGE_BACKEND", "redis")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
	assert.Equal(t, "fs", cfg.StorageBackend, "unknown backend falls back to fs")
}

func TestConfig_NilSafeDurations(t *testing.T) {
	var c *Config
	assert.Equal(t, 30*time.Second, c.Timeout())
	assert.Equal(t, time.Hour, c.TokenTTL())
	assert.Equal(t, 90*time.Minute, (&Config{TokenTTLMin: 90}).TokenTTL())
}
