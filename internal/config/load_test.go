package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Units.CatalogFile)
	assert.Equal(t, 10000, cfg.Sim.MaxSteps)
	assert.Equal(t, 80.0, cfg.Sim.SafetyMargin)
}

func TestLoadFromFile(t *testing.T) {
	catalog := writeFile(t, "units.yaml", "units: []\n")
	path := writeFile(t, "config.yaml", `
server:
  port: 9090
  log_level: debug
  shutdown_timeout: 2s
units:
  catalog_file: `+catalog+`
sim:
  max_steps: 50
  origin_lat: 51.4779
  origin_lon: -0.0015
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, catalog, cfg.Units.CatalogFile)
	assert.Equal(t, 50, cfg.Sim.MaxSteps)
	assert.Equal(t, 51.4779, cfg.Sim.OriginLat)
	assert.Equal(t, 80.0, cfg.Sim.SafetyMargin, "unset keys keep their defaults")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "server:\n  port: 9090\n")
	t.Setenv("DIMENSIONAL_SERVER_PORT", "7070")
	t.Setenv("DIMENSIONAL_SIM_MAX_STEPS", "12")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 12, cfg.Sim.MaxSteps)
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port out of range", map[string]string{"DIMENSIONAL_SERVER_PORT": "999999"}},
		{"unknown log level", map[string]string{"DIMENSIONAL_SERVER_LOG_LEVEL": "verbose"}},
		{"missing catalog", map[string]string{"DIMENSIONAL_UNITS_CATALOG_FILE": "/nonexistent/units.yaml"}},
		{"latitude", map[string]string{"DIMENSIONAL_SIM_ORIGIN_LAT": "91"}},
		{"no steps", map[string]string{"DIMENSIONAL_SIM_MAX_STEPS": "0"}},
		{"negative margin", map[string]string{"DIMENSIONAL_SIM_SAFETY_MARGIN": "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}
