package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "pokedex.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "persisted", cfg.Store.Type)
		assert.Equal(t, 150, cfg.Catalog.Limit)
		assert.Equal(t, 60, cfg.Catalog.RefreshMinutes)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pokedex.yaml")
		content := `
port: 9090
logLevel: debug
store:
  type: memory
catalog:
  limit: 20
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "memory", cfg.Store.Type)
		assert.Equal(t, 20, cfg.Catalog.Limit)

		// Untouched sections keep their defaults
		assert.Equal(t, "127.0.0.1", cfg.Host)
		assert.Equal(t, "https://pokeapi.co/api/v2", cfg.Catalog.BaseUrl)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pokedex.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: [not a number"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
