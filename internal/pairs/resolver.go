// Package pairs discovers and validates matched nucleotide/peptide input
// files for the benchmark sweep.
package pairs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// NucleotideSuffix is the fixed suffix of recognized cDNA input files.
const NucleotideSuffix = ".cdna.all.fa"

// PeptideFileName returns the conventional peptide companion file name for a
// nucleotide base name.
func PeptideFileName(baseName string) string {
	return fmt.Sprintf("chimeric_peptides_%s_combined.fasta", baseName)
}

// Pair is a matched nucleotide/peptide input combination.
type Pair struct {
	// Species is the leading dot-delimited segment of BaseName,
	// e.g. "Homo_sapiens" for "Homo_sapiens.GRCh38.cdna.all".
	Species string

	// BaseName is the nucleotide file name with NucleotideSuffix stripped.
	BaseName string

	// NucleotidePath and PeptidePath are absolute paths to existing,
	// non-empty files.
	NucleotidePath string
	PeptidePath    string
}

// Resolver discovers input pairs under a nucleotide directory and validates
// their peptide companions under a peptide directory.
type Resolver struct {
	NucleotideDir string
	PeptideDir    string
	Logger        *slog.Logger
}

// NewResolver creates a Resolver. A nil logger falls back to slog.Default.
func NewResolver(nucleotideDir, peptideDir string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		NucleotideDir: nucleotideDir,
		PeptideDir:    peptideDir,
		Logger:        logger,
	}
}

// Resolve lists the nucleotide directory, filters for NucleotideSuffix, and
// returns validated pairs in sorted file-name order. Candidates whose
// nucleotide or peptide file is missing or empty are skipped with a warning
// rather than failing the sweep. An unreadable nucleotide directory is an
// error.
func (r *Resolver) Resolve() ([]Pair, error) {
	entries, err := os.ReadDir(r.NucleotideDir)
	if err != nil {
		return nil, fmt.Errorf("list nucleotide dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), NucleotideSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	// ReadDir already sorts, but do not depend on that.
	sort.Strings(names)

	var out []Pair
	for _, name := range names {
		p, ok := r.resolveOne(name)
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *Resolver) resolveOne(fileName string) (Pair, bool) {
	baseName := strings.TrimSuffix(fileName, NucleotideSuffix)
	species, _, _ := strings.Cut(baseName, ".")

	nucPath, err := filepath.Abs(filepath.Join(r.NucleotideDir, fileName))
	if err != nil {
		r.Logger.Warn("skipping pair: cannot resolve nucleotide path",
			"file", fileName, "error", err)
		return Pair{}, false
	}
	if !existsNonEmpty(nucPath) {
		r.Logger.Warn("skipping pair: nucleotide file missing or empty",
			"species", species, "file", nucPath)
		return Pair{}, false
	}

	pepPath, err := filepath.Abs(filepath.Join(r.PeptideDir, PeptideFileName(baseName)))
	if err != nil {
		r.Logger.Warn("skipping pair: cannot resolve peptide path",
			"species", species, "error", err)
		return Pair{}, false
	}
	if !existsNonEmpty(pepPath) {
		r.Logger.Warn("skipping pair: peptide file missing or empty",
			"species", species, "file", pepPath)
		return Pair{}, false
	}

	return Pair{
		Species:        species,
		BaseName:       baseName,
		NucleotidePath: nucPath,
		PeptidePath:    pepPath,
	}, true
}

func existsNonEmpty(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}
