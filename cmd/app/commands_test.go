package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGommonLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, gommonLevel(slog.LevelDebug))
	assert.Equal(t, log.INFO, gommonLevel(slog.LevelInfo))
	assert.Equal(t, log.WARN, gommonLevel(slog.LevelWarn))
	assert.Equal(t, log.ERROR, gommonLevel(slog.LevelError))
}

func TestRootCommand(t *testing.T) {
	root := newRootCommand()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate-images")

	migrate, _, err := root.Find([]string{"migrate-images"})
	require.NoError(t, err)
	require.NotNil(t, migrate.Flags().Lookup("dry-run"))
	require.NotNil(t, root.PersistentFlags().Lookup("env-file"))
}

func TestServe_FailsOnMissingConfig(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
		t.Setenv(key, "")
	}

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"serve", "--env-file", ""})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "DB_HOST")
}
