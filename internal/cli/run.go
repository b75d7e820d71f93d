package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lmeierlab/pepsweep/internal/pairs"
	"github.com/lmeierlab/pepsweep/internal/runlog"
	"github.com/lmeierlab/pepsweep/internal/sweep"
)

var (
	runNucleotideDir string
	runPeptideDir    string
	runOutputRoot    string
	runTool          string
	runMinThreads    int
	runMaxThreads    int
	runProgress      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the thread-count benchmark sweep",
	Long: `Run the benchmark sweep.

Discovers nucleotide files (*` + pairs.NucleotideSuffix + `) in the nucleotide directory,
pairs each with its chimeric-peptide companion, and invokes the analysis
tool once per thread count from min to max. Each completed run appends one
row to the CSV results log inside the output root. A failed tool run aborts
the sweep; rows already written remain valid.

Examples:
  pepsweep run
  pepsweep run --nucleotide-dir cDNA_sequences --max-threads 32
  pepsweep run --tool /opt/bin/chimera_detect --output-root /scratch/bench`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runNucleotideDir, "nucleotide-dir", "", "directory with *"+pairs.NucleotideSuffix+" files")
	runCmd.Flags().StringVar(&runPeptideDir, "peptide-dir", "", "directory with chimeric peptide files")
	runCmd.Flags().StringVar(&runOutputRoot, "output-root", "", "root directory for per-run output")
	runCmd.Flags().StringVar(&runTool, "tool", "", "analysis tool executable")
	runCmd.Flags().IntVar(&runMinThreads, "min-threads", 0, "lowest thread count in the sweep")
	runCmd.Flags().IntVar(&runMaxThreads, "max-threads", 0, "highest thread count in the sweep")
	runCmd.Flags().BoolVar(&runProgress, "progress", false, "interactive progress display (requires a terminal)")
}

func runRun(cmd *cobra.Command, args []string) error {
	applyRunFlags(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputRoot, 0o755); err != nil {
		return fmt.Errorf("create output root: %w", err)
	}
	resultsPath := cfg.ResultsFile
	if !filepath.IsAbs(resultsPath) {
		resultsPath = filepath.Join(cfg.OutputRoot, resultsPath)
	}

	tracker := sweep.NewTracker(uuid.NewString())
	executor := sweep.NewExecutor(logger)

	useProgress := runProgress && term.IsTerminal(int(os.Stderr.Fd()))
	if useProgress {
		// The display owns the terminal; tool output would corrupt
		// it and is already opaque to the sweep anyway.
		executor.Stdout = io.Discard
		executor.Stderr = io.Discard
	}

	ctrl := sweep.NewController(
		sweep.Options{
			Tool:       cfg.ToolPath,
			OutputRoot: cfg.OutputRoot,
			MinThreads: cfg.MinThreads,
			MaxThreads: cfg.MaxThreads,
		},
		pairs.NewResolver(cfg.NucleotideDir, cfg.PeptideDir, logger),
		runlog.New(resultsPath),
		executor,
		tracker,
		logger,
	)

	ctx := cmd.Context()
	var summary sweep.Summary
	var err error
	if useProgress {
		type result struct {
			summary sweep.Summary
			err     error
		}
		done := make(chan result, 1)
		go func() {
			s, e := ctrl.Run(ctx)
			done <- result{s, e}
		}()
		if uiErr := RunSweepProgress(tracker); uiErr != nil {
			logger.Warn("progress display failed", "error", uiErr)
		}
		r := <-done
		summary, err = r.summary, r.err
	} else {
		summary, err = ctrl.Run(ctx)
	}
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), summary)
	return nil
}

// applyRunFlags overlays explicitly-set flags onto the loaded config.
func applyRunFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("nucleotide-dir") {
		cfg.NucleotideDir = runNucleotideDir
	}
	if cmd.Flags().Changed("peptide-dir") {
		cfg.PeptideDir = runPeptideDir
	}
	if cmd.Flags().Changed("output-root") {
		cfg.OutputRoot = runOutputRoot
	}
	if cmd.Flags().Changed("tool") {
		cfg.ToolPath = runTool
	}
	if cmd.Flags().Changed("min-threads") {
		cfg.MinThreads = runMinThreads
	}
	if cmd.Flags().Changed("max-threads") {
		cfg.MaxThreads = runMaxThreads
	}
}

func printSummary(w io.Writer, s sweep.Summary) {
	fmt.Fprintln(w, defaultTheme.completedStyle().Render("✓ Sweep complete"))
	fmt.Fprintf(w, "  Sweep ID:    %s\n", s.SweepID)
	fmt.Fprintf(w, "  Pairs:       %d\n", s.Pairs)
	fmt.Fprintf(w, "  Runs:        %d\n", s.Runs)
	fmt.Fprintf(w, "  Results log: %s\n", s.ResultsPath)
	fmt.Fprintf(w, "  Output root: %s\n", s.OutputRoot)
	if len(s.Stats.Species) > 0 {
		fmt.Fprintln(w, "  Timing per species (seconds):")
		for _, sp := range s.Stats.Species {
			fmt.Fprintf(w, "    %-24s runs=%d avg=%.1f min=%.1f max=%.1f\n",
				sp.Species, sp.Count, sp.AvgSec, sp.MinSec, sp.MaxSec)
		}
	}
}
