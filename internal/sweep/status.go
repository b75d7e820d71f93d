package sweep

import "sync"

// Status is a point-in-time snapshot of sweep progress, safe to copy.
type Status struct {
	SweepID string

	// TotalRuns counts every planned (pair, threads) point; DoneRuns
	// counts completed ones.
	TotalRuns int
	DoneRuns  int

	// CurrentSpecies and CurrentThreads identify the run in flight, if
	// any.
	CurrentSpecies string
	CurrentThreads int

	// LastElapsedSeconds is the duration of the most recently completed
	// run.
	LastElapsedSeconds int64

	Done bool
}

// Tracker publishes sweep progress for pollers (the progress UI reads it on
// a tick). All methods are safe for concurrent use.
type Tracker struct {
	mu sync.RWMutex
	s  Status
}

// NewTracker creates a Tracker for one sweep.
func NewTracker(sweepID string) *Tracker {
	return &Tracker{s: Status{SweepID: sweepID}}
}

// Snapshot returns a copy of the current status.
func (t *Tracker) Snapshot() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.s
}

func (t *Tracker) setTotal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.s.TotalRuns = n
}

func (t *Tracker) startRun(species string, threads int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.s.CurrentSpecies = species
	t.s.CurrentThreads = threads
}

func (t *Tracker) finishRun(elapsedSeconds int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.s.DoneRuns++
	t.s.LastElapsedSeconds = elapsedSeconds
}

func (t *Tracker) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.s.Done = true
	t.s.CurrentSpecies = ""
	t.s.CurrentThreads = 0
}
