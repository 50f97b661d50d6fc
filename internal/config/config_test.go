package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-dev/template-cli/internal/model"
)

// isolateEnv points XDG_CONFIG_HOME at a fresh temp directory and clears
// TEMPLATE_CLI_CONFIG so the developer's real configuration can never
// leak into a test. Returns the temp config home.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv(EnvConfigPath, "")
	os.Unsetenv(EnvConfigPath)
	return home
}

// writeFile creates a file with the given content inside dir and returns
// its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestDefaultPath verifies the XDG-based default location.
func TestDefaultPath(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		assert.Equal(t, filepath.Join("/custom/config", "template-cli", "config.toml"), DefaultPath())
	})

	t.Run("falls back to ~/.config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		os.Unsetenv("XDG_CONFIG_HOME")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "template-cli", "config.toml"), DefaultPath())
	})
}

// TestFind verifies the three-tier precedence, in particular that an
// explicit-but-missing path short-circuits to "no config" instead of
// falling through to the env var or default location.
func TestFind(t *testing.T) {
	t.Run("explicit path wins when it exists", func(t *testing.T) {
		home := isolateEnv(t)
		explicit := writeFile(t, t.TempDir(), "explicit.toml", `name = "x"`)
		envFile := writeFile(t, home, "env.toml", `name = "y"`)
		t.Setenv(EnvConfigPath, envFile)

		path, src := Find(explicit, EnvConfigPath)
		assert.Equal(t, explicit, path)
		assert.Equal(t, SourceFlag, src)
	})

	t.Run("missing explicit path short-circuits", func(t *testing.T) {
		home := isolateEnv(t)

		// Both lower tiers have valid files; neither may be used.
		envFile := writeFile(t, home, "env.toml", `name = "y"`)
		t.Setenv(EnvConfigPath, envFile)
		defaultDir := filepath.Join(home, "template-cli")
		require.NoError(t, os.MkdirAll(defaultDir, 0o755))
		writeFile(t, defaultDir, "config.toml", `name = "z"`)

		path, src := Find(filepath.Join(home, "does-not-exist.toml"), EnvConfigPath)
		assert.Empty(t, path)
		assert.Equal(t, SourceNone, src)
	})

	t.Run("env var used when its file exists", func(t *testing.T) {
		home := isolateEnv(t)
		envFile := writeFile(t, home, "env.toml", `name = "y"`)
		t.Setenv(EnvConfigPath, envFile)

		path, src := Find("", EnvConfigPath)
		assert.Equal(t, envFile, path)
		assert.Equal(t, SourceEnv, src)
	})

	t.Run("env var pointing at missing file falls through to default", func(t *testing.T) {
		home := isolateEnv(t)
		t.Setenv(EnvConfigPath, filepath.Join(home, "missing.toml"))
		defaultDir := filepath.Join(home, "template-cli")
		require.NoError(t, os.MkdirAll(defaultDir, 0o755))
		defaultFile := writeFile(t, defaultDir, "config.toml", `name = "z"`)

		path, src := Find("", EnvConfigPath)
		assert.Equal(t, defaultFile, path)
		assert.Equal(t, SourceDefault, src)
	})

	t.Run("nothing found", func(t *testing.T) {
		isolateEnv(t)
		path, src := Find("", EnvConfigPath)
		assert.Empty(t, path)
		assert.Equal(t, SourceNone, src)
	})
}

// TestLoad_NoFile verifies that a missing config file is the defaults
// path, not an error.
func TestLoad_NoFile(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load("", EnvConfigPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultName, cfg.Name)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Quiet)
}

// TestLoadFile verifies parsing, partial files, and validation failures.
func TestLoadFile(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.toml", `
name = "Alice"
verbose = true
quiet = false
`)
		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Alice", cfg.Name)
		assert.True(t, cfg.Verbose)
		assert.False(t, cfg.Quiet)
	})

	t.Run("partial file keeps defaults for missing keys", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.toml", `verbose = true`)
		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultName, cfg.Name)
		assert.True(t, cfg.Verbose)
	})

	t.Run("comments and unknown keys are ignored", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.toml", `
# a comment
name = "Bob"
unknown_key = "whatever"
`)
		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Bob", cfg.Name)
	})

	t.Run("wrong field type fails with config error", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.toml", `verbose = "definitely"`)
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.True(t, model.IsConfigError(err), "expected a config error, got: %v", err)
		assert.Contains(t, err.Error(), path, "error should name the offending file")
	})

	t.Run("missing file is a config error at this level", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
		assert.True(t, model.IsConfigError(err))
	})

	t.Run("default template round-trips", func(t *testing.T) {
		dir := t.TempDir()
		path, err := WriteDefault(filepath.Join(dir, "config.toml"))
		require.NoError(t, err)

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "World", cfg.Name)
		assert.False(t, cfg.Verbose)
		assert.False(t, cfg.Quiet)
	})
}

// TestWriteDefault verifies directory creation, the documented overwrite
// behavior, and the default-location fallback.
func TestWriteDefault(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "deeply", "nested", "config.toml")
		path, err := WriteDefault(target)
		require.NoError(t, err)
		assert.Equal(t, target, path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `name = "World"`)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		target := writeFile(t, t.TempDir(), "config.toml", `name = "stale"`)
		_, err := WriteDefault(target)
		require.NoError(t, err)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(data), `name = "World"`)
		assert.NotContains(t, string(data), "stale")
	})

	t.Run("empty path uses default location", func(t *testing.T) {
		home := isolateEnv(t)
		path, err := WriteDefault("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "template-cli", "config.toml"), path)
		assert.FileExists(t, path)
	})
}
