package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/models"
)

func sampleIndex() *models.Index {
	return &models.Index{
		Version:    indexVersion,
		TotalUnits: 1,
		Units: []models.IndexEntry{
			{ID: "atlas-as7-d", Chassis: "Atlas", Model: "AS7-D", Tonnage: 100, Valid: true},
		},
	}
}

func TestWriteIndexPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, writeIndex(sampleIndex(), path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got models.Index
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *sampleIndex(), got)
}

func TestWriteIndexCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, writeIndex(sampleIndex(), path, true))

	// the ".gz" suffix is appended when missing
	f, err := os.Open(path + ".gz")
	require.NoError(t, err)
	defer f.Close()

	// a truncated or unflushed stream would not decode
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer gz.Close()

	var got models.Index
	require.NoError(t, json.NewDecoder(gz).Decode(&got))
	assert.Equal(t, *sampleIndex(), got)
}
