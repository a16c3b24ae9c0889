// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointConfigAt redirects the XDG config lookup into a temp directory so
// tests never touch the real user configuration.
func pointConfigAt(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadConfig(t *testing.T) {
	t.Run("should return an empty config when the file is missing", func(t *testing.T) {
		pointConfigAt(t)
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})

	t.Run("should round-trip through SaveConfig", func(t *testing.T) {
		pointConfigAt(t)
		want := Config{DataDir: "~/fitbook-data", LogLevel: "debug"}
		require.NoError(t, SaveConfig(want))

		got, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("should reject an unparseable file", func(t *testing.T) {
		dir := pointConfigAt(t)
		path := filepath.Join(dir, "fitbook", "config.yaml")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, []byte("data_dir: [not: valid"), 0640))

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "failed to parse config file")
	})
}

func TestEffectiveDataDir(t *testing.T) {
	t.Run("should prefer the configured directory", func(t *testing.T) {
		got, err := EffectiveDataDir(Config{DataDir: "/srv/fitbook"})
		require.NoError(t, err)
		assert.Equal(t, "/srv/fitbook", got)
	})

	t.Run("should expand a leading tilde", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := EffectiveDataDir(Config{DataDir: "~/fitbook-data"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "fitbook-data"), got)
	})

	t.Run("should fall back to the XDG data directory", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
		got, err := EffectiveDataDir(Config{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/tmp/xdg-data", "fitbook"), got)
	})
}

func TestResolvePath(t *testing.T) {
	t.Run("should leave absolute paths alone", func(t *testing.T) {
		got, err := ResolvePath("/var/lib/fitbook")
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/fitbook", got)
	})

	t.Run("should only expand the ~/ prefix", func(t *testing.T) {
		got, err := ResolvePath("data/~/x")
		require.NoError(t, err)
		assert.Equal(t, "data/~/x", got)
	})
}
