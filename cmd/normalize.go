package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/dataset"
	"github.com/adriandez/de-zamacona-data/internal/pipeline"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <input.csv>",
	Short: "Normalize, classify and split the names of every record",
	Long: `Normalize every name column of the dataset into a "__work" column,
classify each record as accept, review or reject, and split the names of
accepted records into given name, first and second surname.

A status already present in the input is kept when it ranks higher than the
new one, so re-running on a previous output never demotes a record.

Outputs (in --out-dir):
  normalized.csv       the dataset with derived columns
  review_log.txt       records sent to review
  unique_given.tsv     distinct given names of accepted records
  unique_surnames.tsv  distinct surnames of accepted records

Examples:
  # Normalize a consolidated export
  zamacona normalize data/consolidated.csv

  # Use more workers
  zamacona normalize data/consolidated.csv --concurrency 8`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	t, err := readTable(args[0])
	if err != nil {
		return err
	}
	return s.normalize(t)
}

func (s *session) normalize(t *dataset.Table) error {
	rep := pipeline.Normalize(t, s.engines, s.options("Normalizing", len(t.Rows)))
	fmt.Println()

	if err := s.writeTable(constants.NormalizedFile, t); err != nil {
		return err
	}
	if err := s.writer.WriteNormalize(rep); err != nil {
		return fmt.Errorf("failed to write normalize reports: %w", err)
	}

	fmt.Println("\nClassification:")
	printTiers(rep.Tiers)
	if rep.Inherited > 0 {
		fmt.Printf("  Kept from a previous run: %d\n", rep.Inherited)
	}
	fmt.Printf("  Distinct given names: %d, surnames: %d\n", len(rep.UniqueGiven), len(rep.UniqueSurnames))
	return nil
}
