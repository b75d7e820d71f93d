// Package cli provides the command-line interface for pepsweep.
package cli

import (
	"log/slog"

	"github.com/lmeierlab/pepsweep/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool
	cfgFile string

	// Global config and logger
	cfg        config.Config
	logger     *slog.Logger
	logCleanup func() error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pepsweep",
	Short: "Benchmark sweep driver for chimeric-peptide detection",
	Long: `Pepsweep benchmarks an external chimeric-peptide detection tool across a
range of thread counts.

For every matched nucleotide/peptide input pair it runs the tool once per
thread count, measures wall-clock duration, and appends one CSV record per
completed run to an append-only results log. The simulate subcommand
generates the chimeric-peptide companion files the sweep consumes.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		if cfgFile != "" {
			if err := cfg.ApplyFile(cfgFile); err != nil {
				return err
			}
		}
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}

		logger, logCleanup = config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			_ = logCleanup()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML config file")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pepsweep version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("pepsweep " + Version)
	},
}
