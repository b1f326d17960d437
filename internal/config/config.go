package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultBaseURL         = "localhost:8081"
	defaultLocale          = "pt_BR"
	defaultTheme           = "bootstrap"
	defaultGridLanguageURL = "https://cdn.datatables.net/plug-ins/1.13.6/i18n/pt-BR.json"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	TokenTTLMin int    `env:"TOKEN_TTL_MIN"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	APIBaseURL      string `env:"API_BASE_URL"`
	ServerURL       string `env:"-"`
	StorageDir      string `env:"STORAGE_DIR"`
	StorageBackend  string `env:"STORAGE_BACKEND"`
	Locale          string `env:"LOCALE"`
	Theme           string `env:"THEME"`
	GridLanguageURL string `env:"GRID_LANGUAGE_URL"`
	RequestTimeout  int    `env:"REQUEST_TIMEOUT"` // seconds
	Verbose         bool   `env:"-"`
	Version         bool   `env:"-"` // show client version and exit (flag only)
}

// Timeout returns the client request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c == nil || c.RequestTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.RequestTimeout) * time.Second
}

// TokenTTL returns the lifetime of issued access tokens.
func (c *Config) TokenTTL() time.Duration {
	if c == nil || c.TokenTTLMin <= 0 {
		return time.Hour
	}
	return time.Duration(c.TokenTTLMin) * time.Minute
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres://... или путь к SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.IntVar(&cfg.TokenTTLMin, "token-ttl", cfg.TokenTTLMin, "время жизни токена, минуты")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the admin API server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.APIBaseURL, "api-url", cfg.APIBaseURL, "full base URL of the admin API (overrides -base-url)")
	flag.StringVar(&cfg.StorageDir, "storage-dir", cfg.StorageDir, "directory of the client local storage")
	flag.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "local storage backend: fs|sqlite")
	flag.StringVar(&cfg.Locale, "locale", cfg.Locale, "form locale")
	flag.IntVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout, seconds")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose client logging")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.AuthSecret == "" {
		c.AuthSecret = "dev-secret-key"
	}
	if c.TokenTTLMin <= 0 {
		c.TokenTTLMin = 60
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(c.BaseURL) {
		c.BaseURL = defaultBaseURL
	}

	switch {
	case c.APIBaseURL != "":
		c.ServerURL = strings.TrimRight(c.APIBaseURL, "/")
	case c.EnableHTTPS:
		c.ServerURL = "https://" + c.BaseURL
	default:
		c.ServerURL = "http://" + c.BaseURL
	}

	if c.StorageDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			c.StorageDir = filepath.Join(dir, "AdminDashboard")
		} else {
			home, _ := os.UserHomeDir()
			c.StorageDir = filepath.Join(home, ".admin_dashboard")
		}
	}
	c.StorageBackend = strings.ToLower(c.StorageBackend)
	if c.StorageBackend != "sqlite" {
		c.StorageBackend = "fs"
	}
	if c.Locale == "" {
		c.Locale = defaultLocale
	}
	if c.Theme == "" {
		c.Theme = defaultTheme
	}
	if c.GridLanguageURL == "" {
		c.GridLanguageURL = defaultGridLanguageURL
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30
	}
}
