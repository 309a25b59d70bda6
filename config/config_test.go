package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"CATALOG_DATASET", "DATABASE_URL", "HTTP_ADDR", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, Config{HTTPAddr: ":8080", LogLevel: "info", LogFormat: "text"}, cfg)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	for _, name := range []string{"CATALOG_DATASET", "LOG_FORMAT"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "CATALOG_DATASET=/srv/catalog.yaml\nHTTP_ADDR=:7000\nLOG_FORMAT=json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/catalog.yaml", cfg.DatasetPath)
	assert.Equal(t, ":9000", cfg.HTTPAddr, "environment wins over .env")
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLogger(t *testing.T) {
	t.Run("JSON output honours level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := Config{LogLevel: "warn", LogFormat: "json"}.Logger(&buf)
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown", "products", 3)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "shown", record["msg"])
		assert.Equal(t, float64(3), record["products"])
	})

	t.Run("Invalid level", func(t *testing.T) {
		_, err := Config{LogLevel: "loud"}.Logger(&bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := Config{LogLevel: "info", LogFormat: "xml"}.Logger(&bytes.Buffer{})
		assert.Error(t, err)
	})
}
