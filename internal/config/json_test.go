package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"json.db"}`), 0o600))

	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"cmd", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, "users_backup.json", cfg.BackupPath, "fields absent from JSON keep defaults")
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"cmd"}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "recetario.db", cfg.DatabasePath)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"cmd", "-c", filepath.Join(t.TempDir(), "missing.json")}

	var cfg Config
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(&cfg) })
}
