package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultMaxN, cfg.MaxN)
	assert.Equal(t, DefaultFPS, cfg.FPSDefault)
	assert.Equal(t, DefaultStride, cfg.CheckpointStride)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"min_n below 1", func(c *Config) { c.MinN = 0 }},
		{"max_n below min_n", func(c *Config) { c.MaxN = c.MinN - 1 }},
		{"default_n above max_n", func(c *Config) { c.DefaultN = c.MaxN + 1 }},
		{"inverted value bounds", func(c *Config) { c.MinVal = 10; c.MaxVal = 5 }},
		{"fps_min below 1", func(c *Config) { c.FPSMin = 0 }},
		{"fps_max below fps_min", func(c *Config) { c.FPSMax = c.FPSMin - 1 }},
		{"non-positive stride", func(c *Config) { c.CheckpointStride = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestClampFPS(t *testing.T) {
	cfg := Default()
	assert.Equal(t, cfg.FPSMin, cfg.ClampFPS(0))
	assert.Equal(t, cfg.FPSMax, cfg.ClampFPS(10000))
	assert.Equal(t, 24, cfg.ClampFPS(24))
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_n: 64\nfps_default: 12\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MaxN)
	assert.Equal(t, 12, cfg.FPSDefault)
	assert.Equal(t, DefaultMinN, cfg.MinN, "unset keys keep defaults")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SORTVIZ_FPS_DEFAULT", "6")
	t.Setenv("SORTVIZ_MAX_N", "50")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.FPSDefault)
	assert.Equal(t, 50, cfg.MaxN)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checkpoint_stride: 0\n"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.MaxN = 77
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
