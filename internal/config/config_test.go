package config

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	assert.NilError(t, err)
	assert.Equal(t, cfg.Log.Level, "info")
	assert.Equal(t, cfg.Log.SeqURL, "")
	assert.Equal(t, cfg.Shell.Prompt, "> ")
	assert.Assert(t, !cfg.Shell.AutoReindex)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toyengine.yaml")
	yaml := "log:\n  level: debug\n  seq_url: http://localhost:5341\nshell:\n  prompt: 'db> '\n"
	assert.NilError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("TOYENGINE_SHELL_AUTO_REINDEX", "true")

	cfg, err := Load(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Log.Level, "debug")
	assert.Equal(t, cfg.Log.SeqURL, "http://localhost:5341")
	assert.Equal(t, cfg.Shell.Prompt, "db> ")
	assert.Assert(t, cfg.Shell.AutoReindex)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}
