package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfigFor_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfigFor("missing", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "missing", cfg.Environment)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "statements.db", cfg.Database.File)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)
	assert.Equal(t, "BCI", cfg.Parser.IssuerPrefix)
	assert.Contains(t, cfg.Parser.SkipPrefixes, "OPERACIÓN")
	assert.Len(t, cfg.Reconciliation.Categories, 18)
	assert.False(t, cfg.Maintenance.DateNormalization.Enabled)
	assert.Equal(t, "02/01/06", cfg.Maintenance.DateNormalization.FromLayout)
}

func TestLoadConfigFor_FileValues(t *testing.T) {
	dir := writeConfig(t, "test", `
server:
  port: 9090
  mode: test
database:
  driver: sqlite
  file: ledger.db
storage:
  candidates: ["/tmp/a", "/tmp/b"]
reconciliation:
  categories: ["Peajes", "Otro"]
maintenance:
  dateNormalization:
    enabled: true
    fromLayout: "02/01/2006"
    toLayout: "2006-01-02"
`)

	cfg, err := LoadConfigFor("test", dir)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "ledger.db", cfg.Database.File)
	assert.Equal(t, []string{"/tmp/a", "/tmp/b"}, cfg.Storage.Candidates)
	assert.Equal(t, []string{"Peajes", "Otro"}, cfg.Reconciliation.Categories)
	assert.True(t, cfg.Maintenance.DateNormalization.Enabled)
	assert.Equal(t, "02/01/2006", cfg.Maintenance.DateNormalization.FromLayout)
}

func TestLoadConfigFor_EnvOverride(t *testing.T) {
	t.Setenv("SP_SERVER_PORT", "7070")
	t.Setenv("SP_LOGGER_LEVEL", "debug")

	cfg, err := LoadConfigFor("missing", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfigFor_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"postgres without host", "database:\n  driver: postgres\n"},
		{"unknown driver", "database:\n  driver: mysql\n"},
		{"bad log level", "logger:\n  level: loud\n"},
		{"empty categories", "reconciliation:\n  categories: [\"\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, "bad", tt.body)

			_, err := LoadConfigFor("bad", dir)

			assert.Error(t, err)
		})
	}
}
