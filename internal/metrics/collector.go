// Package metrics aggregates per-species run timings for the sweep summary.
package metrics

import (
	"math"
	"sort"
	"sync"
	"time"
)

// SpeciesMetrics holds aggregated timings for one species.
type SpeciesMetrics struct {
	Count     int64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// SpeciesSnapshot provides computed stats from raw metrics.
type SpeciesSnapshot struct {
	Species  string
	Count    int64
	TotalSec float64
	AvgSec   float64
	MinSec   float64
	MaxSec   float64
}

// Snapshot represents the full sweep statistics at a point in time.
type Snapshot struct {
	ElapsedSeconds float64
	Species        []SpeciesSnapshot
	TotalRuns      int64
}

// Collector aggregates run timings in memory.
// All methods are thread-safe.
type Collector struct {
	mu        sync.RWMutex
	startTime time.Time
	species   map[string]*SpeciesMetrics
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		species:   make(map[string]*SpeciesMetrics),
	}
}

// getOrCreate returns existing metrics or creates new ones for a species.
// Caller must hold write lock.
func (c *Collector) getOrCreate(species string) *SpeciesMetrics {
	m, ok := c.species[species]
	if !ok {
		m = &SpeciesMetrics{MinTime: time.Duration(math.MaxInt64)}
		c.species[species] = m
	}
	return m
}

// RecordRun records the duration of one completed run for a species.
func (c *Collector) RecordRun(species string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.getOrCreate(species)
	m.Count++
	m.TotalTime += duration

	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}
}

// Snapshot returns a point-in-time snapshot of all metrics, species sorted
// by name.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		ElapsedSeconds: time.Since(c.startTime).Seconds(),
	}
	for name, m := range c.species {
		if m.Count == 0 {
			continue
		}
		snap.TotalRuns += m.Count
		snap.Species = append(snap.Species, SpeciesSnapshot{
			Species:  name,
			Count:    m.Count,
			TotalSec: m.TotalTime.Seconds(),
			AvgSec:   m.TotalTime.Seconds() / float64(m.Count),
			MinSec:   m.MinTime.Seconds(),
			MaxSec:   m.MaxTime.Seconds(),
		})
	}
	sort.Slice(snap.Species, func(i, j int) bool {
		return snap.Species[i].Species < snap.Species[j].Species
	})
	return snap
}
