package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"nailorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requiredEnv() map[string]string {
	return map[string]string{
		"DB_HOST":              "db",
		"DB_USER":              "nails",
		"DB_PASSWORD":          "secret",
		"DB_NAME":              "orders",
		"S3_ENDPOINT":          "https://r2.example",
		"S3_BUCKET":            "nail-images",
		"S3_ACCESS_KEY_ID":     "key",
		"S3_SECRET_ACCESS_KEY": "secret-key",
		"S3_PUBLIC_URL":        "https://cdn.example",
	}
}

func lookup(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(lookup(requiredEnv()))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, "auto", cfg.S3Region)
	assert.Equal(t, 4, cfg.UploadConcurrency)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.NotEmpty(t, cfg.CacheWarmupSchedule)

	assert.Equal(t, "host=db port=5432 user=nails password=secret dbname=orders sslmode=disable", cfg.Postgres().DSN())
	assert.Equal(t, "nail-images", cfg.S3().Bucket)
}

func TestLoadConfig_Overrides(t *testing.T) {
	env := requiredEnv()
	env["UPLOAD_CONCURRENCY"] = "8"
	env["MAX_UPLOAD_BYTES"] = "1024"
	env["TIMEZONE"] = "Asia/Taipei"
	env["LOG_LEVEL"] = "debug"

	cfg, err := loadConfig(lookup(env))

	require.NoError(t, err)
	assert.Equal(t, 8, cfg.UploadConcurrency)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, "Asia/Taipei", cfg.Location.String())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadConfig_ReportsEveryProblem(t *testing.T) {
	env := requiredEnv()
	delete(env, "DB_HOST")
	delete(env, "S3_BUCKET")
	env["UPLOAD_CONCURRENCY"] = "many"
	env["MAX_UPLOAD_BYTES"] = "0"
	env["TIMEZONE"] = "Mars/Olympus"

	_, err := loadConfig(lookup(env))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	for _, key := range []string{"DB_HOST", "S3_BUCKET", "UPLOAD_CONCURRENCY", "MAX_UPLOAD_BYTES", "TIMEZONE"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	for key, value := range requiredEnv() {
		t.Setenv(key, value)
	}
	t.Setenv("HTTP_PORT", "")
	require.NoError(t, os.Unsetenv("HTTP_PORT"))

	t.Run("should read values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9090\nDB_HOST=ignored\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("HTTP_PORT") })

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, "db", cfg.DBHost, "process environment wins over the file")
	})

	t.Run("should tolerate a missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

		require.NoError(t, err)
	})
}
