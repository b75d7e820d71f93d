package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// Input locations
	NucleotideDir string `yaml:"nucleotide_dir"`
	PeptideDir    string `yaml:"peptide_dir"`

	// Sweep output
	OutputRoot  string `yaml:"output_root"`
	ResultsFile string `yaml:"results_file"`

	// External analysis tool
	ToolPath string `yaml:"tool"`

	// Thread-count sweep range (inclusive)
	MinThreads int `yaml:"min_threads"`
	MaxThreads int `yaml:"max_threads"`

	// Logging
	LogFile  string     `yaml:"log_file"`
	LogLevel slog.Level `yaml:"-"`
}

// Load reads configuration from environment variables.
// Defaults match the original benchmarking setup.
func Load() Config {
	return Config{
		NucleotideDir: getEnv("PEPSWEEP_NUCLEOTIDE_DIR", "cDNA_sequences"),
		PeptideDir:    getEnv("PEPSWEEP_PEPTIDE_DIR", "simulated_chimeric_peptides"),

		OutputRoot:  getEnv("PEPSWEEP_OUTPUT_ROOT", "benchmark_runs"),
		ResultsFile: getEnv("PEPSWEEP_RESULTS_FILE", "benchmark_results.csv"),

		ToolPath: getEnv("PEPSWEEP_TOOL", "chimera_detect"),

		MinThreads: getEnvInt("PEPSWEEP_MIN_THREADS", 1),
		MaxThreads: getEnvInt("PEPSWEEP_MAX_THREADS", 128),

		LogFile:  getEnv("PEPSWEEP_LOG_FILE", "pepsweep.log.jsonl"),
		LogLevel: parseLogLevel(getEnv("PEPSWEEP_LOG_LEVEL", "INFO")),
	}
}

// ApplyFile overlays values from a YAML config file onto c.
// Fields absent from the file leave the existing value untouched.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if overlay.NucleotideDir != "" {
		c.NucleotideDir = overlay.NucleotideDir
	}
	if overlay.PeptideDir != "" {
		c.PeptideDir = overlay.PeptideDir
	}
	if overlay.OutputRoot != "" {
		c.OutputRoot = overlay.OutputRoot
	}
	if overlay.ResultsFile != "" {
		c.ResultsFile = overlay.ResultsFile
	}
	if overlay.ToolPath != "" {
		c.ToolPath = overlay.ToolPath
	}
	if overlay.MinThreads != 0 {
		c.MinThreads = overlay.MinThreads
	}
	if overlay.MaxThreads != 0 {
		c.MaxThreads = overlay.MaxThreads
	}
	if overlay.LogFile != "" {
		c.LogFile = overlay.LogFile
	}
	return nil
}

// Validate checks that the sweep range makes sense.
func (c Config) Validate() error {
	if c.MinThreads < 1 {
		return fmt.Errorf("min threads must be >= 1, got %d", c.MinThreads)
	}
	if c.MaxThreads < c.MinThreads {
		return fmt.Errorf("max threads (%d) must be >= min threads (%d)", c.MaxThreads, c.MinThreads)
	}
	if c.ToolPath == "" {
		return fmt.Errorf("tool path must not be empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
