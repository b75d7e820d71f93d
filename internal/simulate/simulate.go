// Package simulate generates chimeric-peptide FASTA files from cDNA inputs.
// For each transcript it emulates a midpoint fusion under five reading-frame
// shifts and emits the resulting 12-residue peptides, producing exactly the
// peptide companion files the benchmark sweep consumes.
package simulate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmeierlab/pepsweep/internal/fasta"
	"github.com/lmeierlab/pepsweep/internal/pairs"
)

const (
	// aaEachSide is the peptide length contributed by each side of the
	// fusion point.
	aaEachSide = 6
	ntEachSide = aaEachSide * 3
)

// frameShifts in emission order: in-frame first, then the four shifted
// frames.
var frameShifts = []struct {
	Label string
	Shift int
}{
	{"0_frame", 0},
	{"+1_frame", 1},
	{"+2_frame", 2},
	{"-1_frame", -1},
	{"-2_frame", -2},
}

// Options configures a simulation pass.
type Options struct {
	NucleotideDir  string
	PeptideDir     string
	MaxTranscripts int
}

// FileSummary reports one generated peptide file.
type FileSummary struct {
	Input       string
	Output      string
	Transcripts int
	Peptides    int
}

// Run generates one combined peptide file per FASTA file in the nucleotide
// directory. Inputs that yield no records are skipped with a warning.
func Run(opts Options, logger *slog.Logger) ([]FileSummary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxTranscripts <= 0 {
		opts.MaxTranscripts = 20
	}

	entries, err := os.ReadDir(opts.NucleotideDir)
	if err != nil {
		return nil, fmt.Errorf("list nucleotide dir: %w", err)
	}
	if err := os.MkdirAll(opts.PeptideDir, 0o755); err != nil {
		return nil, fmt.Errorf("create peptide dir: %w", err)
	}

	var out []FileSummary
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(opts.NucleotideDir, e.Name())
		sum, err := generateFile(path, opts.PeptideDir, opts.MaxTranscripts)
		if err != nil {
			return out, err
		}
		if sum.Transcripts == 0 {
			logger.Warn("no usable transcripts", "file", path)
		}
		logger.Info("peptides generated",
			"input", path,
			"output", sum.Output,
			"transcripts", sum.Transcripts,
			"peptides", sum.Peptides)
		out = append(out, sum)
	}
	return out, nil
}

// BaseName strips .fa.gz, .fasta.gz, or the final extension from a FASTA
// file name.
func BaseName(fileName string) string {
	switch {
	case strings.HasSuffix(fileName, ".fa.gz"):
		return strings.TrimSuffix(fileName, ".fa.gz")
	case strings.HasSuffix(fileName, ".fasta.gz"):
		return strings.TrimSuffix(fileName, ".fasta.gz")
	default:
		return strings.TrimSuffix(fileName, filepath.Ext(fileName))
	}
}

func generateFile(path, peptideDir string, maxTranscripts int) (FileSummary, error) {
	recs, err := fasta.ReadFile(path)
	if err != nil {
		return FileSummary{}, err
	}

	base := BaseName(filepath.Base(path))
	outPath := filepath.Join(peptideDir, pairs.PeptideFileName(base))
	sum := FileSummary{Input: path, Output: outPath}

	f, err := os.Create(outPath)
	if err != nil {
		return sum, fmt.Errorf("create peptide file: %w", err)
	}
	defer f.Close()

	for _, rec := range recs {
		if sum.Transcripts >= maxTranscripts {
			break
		}
		peps, ok := transcriptPeptides(rec.Seq)
		if !ok {
			continue
		}
		for i, pep := range peps {
			if _, err := fmt.Fprintf(f, ">%s_%s\n%s\n", rec.ID, frameShifts[i].Label, pep); err != nil {
				return sum, fmt.Errorf("write peptide file: %w", err)
			}
		}
		sum.Transcripts++
		sum.Peptides += len(peps)
	}

	if err := f.Close(); err != nil {
		return sum, fmt.Errorf("write peptide file: %w", err)
	}
	return sum, nil
}

// transcriptPeptides builds the five frame-shift peptides for one
// transcript. A transcript is usable only if every shift yields a full
// stop-codon-free peptide.
func transcriptPeptides(seq string) ([]string, bool) {
	mid := len(seq) / 2
	peps := make([]string, 0, len(frameShifts))
	for _, fs := range frameShifts {
		pep, ok := chimericPeptide(seq, mid, fs.Shift)
		if !ok {
			return nil, false
		}
		peps = append(peps, pep)
	}
	return peps, true
}

// chimericPeptide translates aaEachSide residues on each side of the fusion
// midpoint, with the right side read in a shifted frame.
func chimericPeptide(seq string, mid, shift int) (string, bool) {
	leftStart := mid - ntEachSide
	if leftStart < 0 {
		leftStart = 0
	}
	left := Translate(seq[leftStart:mid])

	rightStart := mid + shift
	if rightStart < 0 {
		rightStart = 0
	}
	rightEnd := rightStart + ntEachSide
	if rightStart > len(seq) {
		rightStart = len(seq)
	}
	if rightEnd > len(seq) {
		rightEnd = len(seq)
	}
	right := Translate(seq[rightStart:rightEnd])

	pep := left + right
	if len(pep) < aaEachSide*2 {
		return "", false
	}
	if strings.ContainsRune(pep, '*') {
		return "", false
	}
	return pep[:aaEachSide*2], true
}

// Translate converts a nucleotide sequence to amino acids using the
// standard codon table. A trailing partial codon is dropped; codons with
// ambiguous bases become X; stop codons become *.
func Translate(seq string) string {
	s := strings.ToUpper(seq)
	var b strings.Builder
	b.Grow(len(s) / 3)
	for i := 0; i+3 <= len(s); i += 3 {
		codon := strings.ReplaceAll(s[i:i+3], "U", "T")
		aa, ok := codonTable[codon]
		if !ok {
			aa = 'X'
		}
		b.WriteByte(aa)
	}
	return b.String()
}

var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}
