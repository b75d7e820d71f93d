// Package sweep orchestrates the thread-count benchmark sweep: plan an
// output directory per (species, threads) point, run the analysis tool
// there, and append one record per completed run to the results log.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lmeierlab/pepsweep/internal/metrics"
	"github.com/lmeierlab/pepsweep/internal/pairs"
	"github.com/lmeierlab/pepsweep/internal/runlog"
)

// Options configures a sweep.
type Options struct {
	Tool       string
	OutputRoot string

	// Inclusive thread-count range, ascending.
	MinThreads int
	MaxThreads int
}

// Summary reports a completed sweep.
type Summary struct {
	SweepID     string
	Pairs       int
	Runs        int
	ResultsPath string
	OutputRoot  string
	Stats       metrics.Snapshot
}

// Controller drives the whole sweep strictly sequentially: pairs in
// discovery order, thread counts ascending within each pair. The first
// unrecoverable error (directory creation, tool failure, log write) aborts
// the sweep; rows already appended remain valid.
type Controller struct {
	opts     Options
	resolver *pairs.Resolver
	log      *runlog.Logger
	exec     *Executor
	stats    *metrics.Collector
	tracker  *Tracker
	logger   *slog.Logger
}

// NewController wires up a sweep. A nil tracker gets a fresh one; a nil
// logger falls back to slog.Default.
func NewController(opts Options, resolver *pairs.Resolver, log *runlog.Logger, exec *Executor, tracker *Tracker, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if tracker == nil {
		tracker = NewTracker(uuid.NewString())
	}
	return &Controller{
		opts:     opts,
		resolver: resolver,
		log:      log,
		exec:     exec,
		stats:    metrics.NewCollector(),
		tracker:  tracker,
		logger:   logger,
	}
}

// Tracker returns the progress tracker for this sweep.
func (c *Controller) Tracker() *Tracker { return c.tracker }

// Run executes the full sweep and returns its summary. On error the
// returned summary still carries the sweep ID and paths so the caller can
// point at the partial log.
func (c *Controller) Run(ctx context.Context) (Summary, error) {
	sweepID := c.tracker.Snapshot().SweepID
	logger := c.logger.With("sweep_id", sweepID)
	defer c.tracker.finish()

	summary := Summary{
		SweepID:     sweepID,
		ResultsPath: c.log.Path,
		OutputRoot:  c.opts.OutputRoot,
	}

	resolved, err := c.resolver.Resolve()
	if err != nil {
		return summary, err
	}
	summary.Pairs = len(resolved)

	pointsPerPair := c.opts.MaxThreads - c.opts.MinThreads + 1
	c.tracker.setTotal(len(resolved) * pointsPerPair)
	logger.Info("sweep planned",
		"pairs", len(resolved),
		"min_threads", c.opts.MinThreads,
		"max_threads", c.opts.MaxThreads,
		"runs", len(resolved)*pointsPerPair)

	if err := c.log.EnsureHeader(); err != nil {
		return summary, err
	}

	for _, pair := range resolved {
		if err := c.sweepPair(ctx, logger, pair, &summary); err != nil {
			return summary, err
		}
	}

	summary.Stats = c.stats.Snapshot()
	logger.Info("sweep complete", "runs", summary.Runs, "results", summary.ResultsPath)
	return summary, nil
}

func (c *Controller) sweepPair(ctx context.Context, logger *slog.Logger, pair pairs.Pair, summary *Summary) error {
	for threads := c.opts.MinThreads; threads <= c.opts.MaxThreads; threads++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("sweep interrupted: %w", err)
		}
		c.tracker.startRun(pair.Species, threads)

		dir, err := PlanOutputDir(c.opts.OutputRoot, pair.Species, threads)
		if err != nil {
			return err
		}

		inv := NewInvocation(c.opts.Tool, pair, threads, dir)
		timing, err := c.exec.Execute(ctx, inv)
		if err != nil {
			return err
		}

		elapsed := timing.ElapsedSeconds()
		rec := runlog.Record{
			Species:        pair.Species,
			Threads:        threads,
			ElapsedSeconds: elapsed,
			StartISO:       timing.Start.Format(time.RFC3339),
			EndISO:         timing.End.Format(time.RFC3339),
			OutputDir:      OutputRelDir(pair.Species, threads),
			Command:        inv.String(),
			NucleotideFile: pair.NucleotidePath,
			PeptideFile:    pair.PeptidePath,
		}
		if err := c.log.Append(rec); err != nil {
			return err
		}

		c.stats.RecordRun(pair.Species, timing.End.Sub(timing.Start))
		c.tracker.finishRun(elapsed)
		summary.Runs++

		logger.Info("run recorded",
			"species", pair.Species,
			"threads", threads,
			"elapsed_seconds", elapsed)
	}
	return nil
}
