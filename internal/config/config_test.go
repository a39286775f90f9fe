package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint":"http://proxy:9000"}`), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://proxy:9000", cfg.Endpoint)
	assert.Equal(t, 5, cfg.RefreshIntervalSeconds)
	assert.Equal(t, 20, cfg.List.PageSize)
	assert.Equal(t, 112, cfg.Heatmap.LookbackDays)
}

func TestLoadFromRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"refresh_interval_seconds":-3,"list":{"page_size":0},"heatmap":{"lookback_days":-1}}`), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.RefreshIntervalSeconds)
	assert.Equal(t, 20, cfg.List.PageSize)
	assert.Equal(t, 112, cfg.Heatmap.LookbackDays)
}

func TestLoadFromBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o644))

	cfg, err := LoadFrom(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	in := DefaultConfig()
	in.Endpoint = "http://proxy:1234"
	in.ManagementKey = "secret"
	require.NoError(t, SaveTo(path, in))

	out, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
