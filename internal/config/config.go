package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "HEIDELPAY_"

type Config struct {
	API    APIConfig    `koanf:"api"`
	Retry  RetryConfig  `koanf:"retry"`
	Logger LoggerConfig `koanf:"logger"`
}

type APIConfig struct {
	PrivateKey string        `koanf:"private_key" validate:"required"`
	Locale     string        `koanf:"locale"`
	BaseURL    string        `koanf:"base_url" validate:"omitempty,url"`
	ClientIP   string        `koanf:"client_ip" validate:"omitempty,ip"`
	Timeout    time.Duration `koanf:"timeout" validate:"gte=0"`
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay" validate:"gte=0"`
	MaxRetries int           `koanf:"max_retries" validate:"gte=0"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

var defaults = map[string]any{
	"api.locale":        "en-US",
	"api.timeout":       "60s",
	"retry.base_delay":  "500ms",
	"retry.max_retries": 3,
	"logger.level":      "info",
	"logger.format":     "text",
}

// LoadConfig reads HEIDELPAY_* environment variables, and a .env file if present.
// Nested keys use a double underscore, e.g. HEIDELPAY_API__PRIVATE_KEY.
func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// NewLogger builds the SDK logger writing to w.
func (c LoggerConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c LoggerConfig) level() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
