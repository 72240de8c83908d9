package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	SheetsAPIURL     string `env:"SHEETS_API_URL"`
	SheetsAPIToken   string `env:"SHEETS_API_TOKEN"`
	SheetsTimeoutSec int    `env:"SHEETS_TIMEOUT_SEC"`
	AuthSecret       string `env:"AUTH_SECRET"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenDir  string `env:"TOKEN_DIR"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.SheetsAPIURL, "sheets-url", cfg.SheetsAPIURL, "URL табличного web-API")
	flag.StringVar(&cfg.SheetsAPIToken, "sheets-token", cfg.SheetsAPIToken, "токен табличного web-API")
	flag.IntVar(&cfg.SheetsTimeoutSec, "sheets-timeout", cfg.SheetsTimeoutSec, "таймаут запросов к табличному API, сек")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "использовать https в ServerURL")
	flag.StringVar(&cfg.TokenDir, "token-dir", cfg.TokenDir, "каталог файла токена сессии (CLI)")
	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.SheetsTimeoutSec <= 0 {
		cfg.SheetsTimeoutSec = 30
	}
	// BaseURL должен быть "address:port" без схемы и пути, иначе дефолт.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8082"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}
