package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "./units", s.UnitsDir)
	assert.Equal(t, "./index.json", s.OutputPath)
	assert.False(t, s.Compress)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, 15, s.ExternalHeatSinkWarn)
	assert.Equal(t, 0.5, s.ArmorCoverageWarn)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{"unitsDir": "/data/units", "compress": true, "externalHeatSinkWarn": 20}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "calc-index.cfg.json"), []byte(cfg), 0o644))

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/data/units", s.UnitsDir)
	assert.True(t, s.Compress)
	assert.Equal(t, 20, s.ExternalHeatSinkWarn)
	// unset keys keep their defaults
	assert.Equal(t, "./index.json", s.OutputPath)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "calc-index.cfg.json"), []byte("{"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}
