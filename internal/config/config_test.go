package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"DATA_DIR", "META_DB_PATH", "LISTEN_ADDR", "LOG_LEVEL",
		"ENV", "ENRICH_SCHEDULE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "commerce_meta.sqlite", cfg.MetaDBPath)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100.0, cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction())
	assert.NotEmpty(t, cfg.Warnings, "disabled scheduler should warn in development")
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("DATA_DIR", "/var/lake")
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENRICH_SCHEDULE", "0 2 * * *")
	t.Setenv("RATE_LIMIT_RPS", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/var/lake", cfg.DataDir)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "0 2 * * *", cfg.EnrichSchedule)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnvProductionRejectsWildcardCORS(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS")
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "warning", want: slog.LevelWarn},
		{level: "ERROR", want: slog.LevelError},
		{level: "bogus", want: slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level=%s", tt.level)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# comment\n\nDOTENV_TEST_A=hello\nDOTENV_TEST_B=\"quoted\"\nnot a pair\n"), 0o600))

	t.Setenv("DOTENV_TEST_A", "")
	t.Setenv("DOTENV_TEST_B", "")
	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "hello", os.Getenv("DOTENV_TEST_A"))
	assert.Equal(t, "quoted", os.Getenv("DOTENV_TEST_B"))
}

func TestLoadDotEnvDoesNotOverrideEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOTENV_TEST_C=from-file\n"), 0o600))

	t.Setenv("DOTENV_TEST_C", "from-env")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv("DOTENV_TEST_C"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "x", stripQuotes(`"x"`))
	assert.Equal(t, "x", stripQuotes("'x'"))
	assert.Equal(t, `"x`, stripQuotes(`"x`))
	assert.Equal(t, "", stripQuotes(""))
}
