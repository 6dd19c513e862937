package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/perf-report/internal/config"
	"github.com/csg33k/perf-report/internal/domain"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "REPORT_DEFAULT_LAYOUT", "REPORT_PDF_FONT"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, domain.VariantBoxedGrid, cfg.Layout())

	font, err := cfg.LoadPDFFont()
	require.NoError(t, err)
	assert.Nil(t, font)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	fontPath := filepath.Join(t.TempDir(), "font.ttf")
	require.NoError(t, os.WriteFile(fontPath, []byte("not really a font"), 0o644))

	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REPORT_DEFAULT_LAYOUT", "heading-list")
	t.Setenv("REPORT_PDF_FONT", fontPath)

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, domain.VariantHeadingList, cfg.Layout())

	font, err := cfg.LoadPDFFont()
	require.NoError(t, err)
	assert.Equal(t, "not really a font", string(font))
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"port":   {"PORT", "http"},
		"level":  {"LOG_LEVEL", "verbose"},
		"layout": {"REPORT_DEFAULT_LAYOUT", "landscape"},
		"font":   {"REPORT_PDF_FONT", "/nonexistent/font.ttf"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := config.FromEnv()
			assert.Error(t, err)
		})
	}
}

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoad_MissingDotEnvIsQuiet(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	logs := captureLog(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, logs.String())
}

func TestLoad_UnreadableDotEnvWarns(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o755))
	t.Chdir(dir)
	logs := captureLog(t)

	_, err := config.Load()
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "error loading .env file")
}
