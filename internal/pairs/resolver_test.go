package pairs

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestResolve(t *testing.T) {
	nucDir := t.TempDir()
	pepDir := t.TempDir()

	writeFile(t, filepath.Join(nucDir, "Homo_sapiens.GRCh38.cdna.all.fa"), ">tx1\nACGT\n")
	writeFile(t, filepath.Join(pepDir, "chimeric_peptides_Homo_sapiens.GRCh38.cdna.all_combined.fasta"), ">p1\nMKT\n")

	writeFile(t, filepath.Join(nucDir, "Mus_musculus.GRCm39.cdna.all.fa"), ">tx1\nACGT\n")
	// no peptide companion for Mus_musculus

	writeFile(t, filepath.Join(nucDir, "notes.txt"), "ignored\n")

	r := NewResolver(nucDir, pepDir, discardLogger())
	got, err := r.Resolve()
	require.NoError(t, err)

	require.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, "Homo_sapiens", p.Species)
	assert.Equal(t, "Homo_sapiens.GRCh38.cdna.all", p.BaseName)
	assert.True(t, filepath.IsAbs(p.NucleotidePath))
	assert.True(t, filepath.IsAbs(p.PeptidePath))
}

func TestResolveSkipsEmptyFiles(t *testing.T) {
	nucDir := t.TempDir()
	pepDir := t.TempDir()

	// empty nucleotide file
	writeFile(t, filepath.Join(nucDir, "Danio_rerio.GRCz11.cdna.all.fa"), "")
	writeFile(t, filepath.Join(pepDir, "chimeric_peptides_Danio_rerio.GRCz11.cdna.all_combined.fasta"), ">p\nMK\n")

	// empty peptide file
	writeFile(t, filepath.Join(nucDir, "Gallus_gallus.GRCg7b.cdna.all.fa"), ">tx\nACGT\n")
	writeFile(t, filepath.Join(pepDir, "chimeric_peptides_Gallus_gallus.GRCg7b.cdna.all_combined.fasta"), "")

	r := NewResolver(nucDir, pepDir, discardLogger())
	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveSortedOrder(t *testing.T) {
	nucDir := t.TempDir()
	pepDir := t.TempDir()

	for _, base := range []string{"Zeta.v1.cdna.all", "Alpha.v1.cdna.all", "Mid.v1.cdna.all"} {
		writeFile(t, filepath.Join(nucDir, base+".fa"), ">tx\nACGT\n")
		writeFile(t, filepath.Join(pepDir, PeptideFileName(base)), ">p\nMK\n")
	}

	r := NewResolver(nucDir, pepDir, discardLogger())
	got, err := r.Resolve()
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "Alpha", got[0].Species)
	assert.Equal(t, "Mid", got[1].Species)
	assert.Equal(t, "Zeta", got[2].Species)
}

func TestResolveMissingDir(t *testing.T) {
	r := NewResolver(filepath.Join(t.TempDir(), "nope"), t.TempDir(), discardLogger())
	_, err := r.Resolve()
	assert.Error(t, err)
}
