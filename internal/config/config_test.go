package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "cDNA_sequences", cfg.NucleotideDir)
	assert.Equal(t, "simulated_chimeric_peptides", cfg.PeptideDir)
	assert.Equal(t, "chimera_detect", cfg.ToolPath)
	assert.Equal(t, 1, cfg.MinThreads)
	assert.Equal(t, 128, cfg.MaxThreads)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PEPSWEEP_TOOL", "/opt/bin/detect")
	t.Setenv("PEPSWEEP_MAX_THREADS", "32")
	t.Setenv("PEPSWEEP_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "/opt/bin/detect", cfg.ToolPath)
	assert.Equal(t, 32, cfg.MaxThreads)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pepsweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"tool: /custom/tool\nmax_threads: 16\noutput_root: /scratch/bench\n"), 0o644))

	cfg := Load()
	require.NoError(t, cfg.ApplyFile(path))

	assert.Equal(t, "/custom/tool", cfg.ToolPath)
	assert.Equal(t, 16, cfg.MaxThreads)
	assert.Equal(t, "/scratch/bench", cfg.OutputRoot)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "cDNA_sequences", cfg.NucleotideDir)
}

func TestApplyFileMissing(t *testing.T) {
	cfg := Load()
	assert.Error(t, cfg.ApplyFile(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestValidate(t *testing.T) {
	cfg := Load()
	assert.NoError(t, cfg.Validate())

	bad := cfg
	bad.MinThreads = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.MaxThreads = cfg.MinThreads - 1
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.ToolPath = ""
	assert.Error(t, bad.Validate())
}
