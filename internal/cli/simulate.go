package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmeierlab/pepsweep/internal/simulate"
)

var (
	simNucleotideDir  string
	simPeptideDir     string
	simMaxTranscripts int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate chimeric peptide files from cDNA inputs",
	Long: `Generate the chimeric-peptide FASTA companions the sweep consumes.

For each transcript the midpoint of the cDNA sequence is treated as a fusion
breakpoint and translated under five reading-frame shifts (0, +1, +2, -1,
-2), yielding five 12-residue peptides per usable transcript. Transcripts
whose peptides are short or contain stop codons are skipped.

Examples:
  pepsweep simulate
  pepsweep simulate --nucleotide-dir cDNA_sequences --max-transcripts 200`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simNucleotideDir, "nucleotide-dir", "", "directory with cDNA FASTA files (plain or gzipped)")
	simulateCmd.Flags().StringVar(&simPeptideDir, "peptide-dir", "", "directory to write peptide files into")
	simulateCmd.Flags().IntVar(&simMaxTranscripts, "max-transcripts", 20, "max transcripts per input file")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("nucleotide-dir") {
		cfg.NucleotideDir = simNucleotideDir
	}
	if cmd.Flags().Changed("peptide-dir") {
		cfg.PeptideDir = simPeptideDir
	}

	sums, err := simulate.Run(simulate.Options{
		NucleotideDir:  cfg.NucleotideDir,
		PeptideDir:     cfg.PeptideDir,
		MaxTranscripts: simMaxTranscripts,
	}, logger)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, s := range sums {
		fmt.Fprintf(w, "%s: %d transcripts (%d peptides) -> %s\n",
			s.Input, s.Transcripts, s.Peptides, s.Output)
	}
	return nil
}
