// Package config reads server settings from the environment, after loading
// an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/csg33k/perf-report/internal/domain"
)

type Config struct {
	Port          string `validate:"required,numeric"`
	LogLevel      string `validate:"oneof=debug info warn error"`
	DefaultLayout string `validate:"oneof=plain boxed-grid heading-list"`
	// PDFFont is a TrueType font used for the PDF preview. Empty disables
	// the PDF format in the dashboard.
	PDFFont string `validate:"omitempty,file"`
}

// Load reads .env (if present) and the environment, applying defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("error loading .env file", "err", err)
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		DefaultLayout: getenv("REPORT_DEFAULT_LAYOUT", string(domain.DefaultVariant)),
		PDFFont:       os.Getenv("REPORT_PDF_FONT"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Layout returns the default export layout.
func (c *Config) Layout() domain.Variant {
	v, err := domain.ParseVariant(c.DefaultLayout)
	if err != nil {
		return domain.DefaultVariant
	}
	return v
}

// LoadPDFFont reads the configured font, or returns nil when none is set.
func (c *Config) LoadPDFFont() ([]byte, error) {
	if c.PDFFont == "" {
		return nil, nil
	}
	b, err := os.ReadFile(c.PDFFont)
	if err != nil {
		return nil, fmt.Errorf("read pdf font: %w", err)
	}
	return b, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
