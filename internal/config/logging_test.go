package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.With("sweep_id", "a1b2c3").Info("run recorded", "species", "Homo_sapiens", "threads", 17)

	// Text stream for the person watching the sweep.
	assert.Contains(t, stderr.String(), "run recorded")
	assert.Contains(t, stderr.String(), "species=Homo_sapiens")
	assert.Contains(t, stderr.String(), "sweep_id=a1b2c3")

	// JSON stream for machine-parsed provenance.
	var rec map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &rec))
	assert.Equal(t, "run recorded", rec["msg"])
	assert.Equal(t, "a1b2c3", rec["sweep_id"])
	assert.Equal(t, "Homo_sapiens", rec["species"])
	assert.Equal(t, float64(17), rec["threads"])
}

func TestSetupLoggerWithWritersLevel(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelWarn)

	logger.Info("below threshold")
	logger.Warn("skipping pair: peptide file missing or empty")

	assert.NotContains(t, stderr.String(), "below threshold")
	assert.Contains(t, stderr.String(), "skipping pair")
	assert.NotContains(t, file.String(), "below threshold")
	assert.Contains(t, file.String(), "skipping pair")
}
