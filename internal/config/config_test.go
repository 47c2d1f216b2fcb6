package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestLoad(t *testing.T) {
	t.Run("returns defaults when config does not exist", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		require.NoError(t, err)
		require.Equal(t, "auto", cfg.ColorMode())
		require.Equal(t, "", cfg.LogFilePath())
		require.False(t, cfg.IsDebug())
		require.False(t, cfg.IsStrict())
	})

	t.Run("round trips through save", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.json")
		want := &Config{
			LogFile:      stringPtr("/tmp/stagelist.log"),
			Color:        stringPtr("never"),
			StrictBounds: boolPtr(true),
		}
		require.NoError(t, Save(path, want))

		got, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, "never", got.ColorMode())
		require.True(t, got.IsStrict())
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0600))

		_, err := Load(path)
		require.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("rejects unknown color mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"color":"sometimes"}`), 0600))

		_, err := Load(path)
		require.ErrorContains(t, err, "invalid config")
	})
}

func TestSaveValidates(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "config.json"), &Config{LogFile: stringPtr("")})
	require.ErrorContains(t, err, "invalid config")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("STAGELIST_LOG_FILE", "/tmp/env.log")
	t.Setenv("STAGELIST_COLOR", "always")
	t.Setenv("STAGELIST_STRICT", "true")
	t.Setenv("DEBUG", "1")

	cfg := &Config{Color: stringPtr("never")}
	cfg.ApplyEnv()

	require.Equal(t, "/tmp/env.log", cfg.LogFilePath())
	require.Equal(t, "always", cfg.ColorMode())
	require.True(t, cfg.IsStrict())
	require.True(t, cfg.IsDebug())
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("STAGELIST_CONFIG", "/etc/stagelist.json")
	require.Equal(t, "/etc/stagelist.json", DefaultPath())
}
