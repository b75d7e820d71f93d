// Package runlog persists one CSV record per completed benchmark run.
package runlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Header is the fixed column order of the results log.
var Header = []string{
	"species",
	"threads",
	"elapsed_seconds",
	"start_iso",
	"end_iso",
	"output_dir",
	"command",
	"nucleotide_file",
	"peptide_file",
}

// Record is one row of the results log.
type Record struct {
	Species        string
	Threads        int
	ElapsedSeconds int64
	StartISO       string
	EndISO         string
	OutputDir      string
	Command        string
	NucleotideFile string
	PeptideFile    string
}

func (r Record) row() []string {
	return []string{
		r.Species,
		strconv.Itoa(r.Threads),
		strconv.FormatInt(r.ElapsedSeconds, 10),
		r.StartISO,
		r.EndISO,
		r.OutputDir,
		r.Command,
		r.NucleotideFile,
		r.PeptideFile,
	}
}

// Logger appends records to a CSV file at Path. The header is written once,
// only when the file does not yet exist, so repeated sweeps accumulate rows
// under a single header.
type Logger struct {
	Path string
}

// New creates a Logger for the given path.
func New(path string) *Logger {
	return &Logger{Path: path}
}

// EnsureHeader writes the header line if the log file does not exist yet.
// Calling it against an existing log is a no-op.
func (l *Logger) EnsureHeader() error {
	if _, err := os.Stat(l.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat results log: %w", err)
	}

	f, err := os.OpenFile(l.Path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("create results log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("write results header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write results header: %w", err)
	}
	return f.Close()
}

// Append adds one record to the log. The file is opened, written, and
// flushed per call so every completed run survives a later abort.
func (l *Logger) Append(rec Record) error {
	f, err := os.OpenFile(l.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open results log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(rec.row()); err != nil {
		return fmt.Errorf("append result row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("append result row: %w", err)
	}
	return f.Close()
}
