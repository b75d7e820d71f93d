package simulate

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmeierlab/pepsweep/internal/fasta"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ATGGCT", "MA"},
		{"atggct", "MA"},
		{"TAA", "*"},
		{"ATGNNN", "MX"},
		{"ATGG", "M"}, // trailing partial codon dropped
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Translate(tt.in), "Translate(%q)", tt.in)
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Homo_sapiens.GRCh38.cdna.all", BaseName("Homo_sapiens.GRCh38.cdna.all.fa"))
	assert.Equal(t, "Homo_sapiens.GRCh38.cdna.all", BaseName("Homo_sapiens.GRCh38.cdna.all.fa.gz"))
	assert.Equal(t, "x", BaseName("x.fasta.gz"))
	assert.Equal(t, "x", BaseName("x.fasta"))
}

// polyAla builds n repeats of the alanine codon GCT. Every reading frame of
// the repeat (GCT, CTG, TGC) is stop-free, so midpoint shifts always
// translate cleanly.
func polyAla(n int) string {
	return strings.Repeat("GCT", n)
}

func TestTranscriptPeptides(t *testing.T) {
	peps, ok := transcriptPeptides(polyAla(24))
	require.True(t, ok)
	require.Len(t, peps, 5)

	assert.Equal(t, "AAAAAAAAAAAA", peps[0]) // in frame
	assert.Equal(t, "AAAAAALLLLLL", peps[1]) // +1
	assert.Equal(t, "AAAAAACCCCCC", peps[2]) // +2
	for _, p := range peps {
		assert.Len(t, p, 12)
		assert.NotContains(t, p, "*")
	}
}

func TestTranscriptPeptidesRejectsStops(t *testing.T) {
	// TAA repeats put a stop codon in the in-frame window.
	_, ok := transcriptPeptides(strings.Repeat("TAA", 24))
	assert.False(t, ok)
}

func TestTranscriptPeptidesRejectsShort(t *testing.T) {
	_, ok := transcriptPeptides("GCTGCT")
	assert.False(t, ok)
}

func TestRun(t *testing.T) {
	nucDir := t.TempDir()
	pepDir := filepath.Join(t.TempDir(), "pep")

	content := ">tx1\n" + polyAla(24) + "\n>tx2 short\nGCT\n"
	require.NoError(t, os.WriteFile(filepath.Join(nucDir, "Homo_sapiens.GRCh38.cdna.all.fa"), []byte(content), 0o644))

	sums, err := Run(Options{
		NucleotideDir:  nucDir,
		PeptideDir:     pepDir,
		MaxTranscripts: 20,
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	require.Len(t, sums, 1)
	assert.Equal(t, 1, sums[0].Transcripts)
	assert.Equal(t, 5, sums[0].Peptides)

	// The output uses the file-name convention the sweep resolver expects.
	outPath := filepath.Join(pepDir, "chimeric_peptides_Homo_sapiens.GRCh38.cdna.all_combined.fasta")
	assert.Equal(t, outPath, sums[0].Output)

	recs, err := fasta.ReadFile(outPath)
	require.NoError(t, err)
	require.Len(t, recs, 5)
	assert.Equal(t, "tx1_0_frame", recs[0].ID)
	assert.Equal(t, "tx1_-2_frame", recs[4].ID)
}

func TestRunCapsTranscripts(t *testing.T) {
	nucDir := t.TempDir()
	pepDir := t.TempDir()

	var sb strings.Builder
	for i := 0; i < 5; i++ {
		sb.WriteString(">tx")
		sb.WriteByte(byte('a' + i))
		sb.WriteString("\n")
		sb.WriteString(polyAla(24))
		sb.WriteString("\n")
	}
	require.NoError(t, os.WriteFile(filepath.Join(nucDir, "Sp.v1.cdna.all.fa"), []byte(sb.String()), 0o644))

	sums, err := Run(Options{
		NucleotideDir:  nucDir,
		PeptideDir:     pepDir,
		MaxTranscripts: 2,
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, 2, sums[0].Transcripts)
	assert.Equal(t, 10, sums[0].Peptides)
}
