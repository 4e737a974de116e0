package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/dataset"
	"github.com/adriandez/de-zamacona-data/internal/pipeline"
)

var promoteCmd = &cobra.Command{
	Use:   "promote [input.csv]",
	Short: "Promote records whose full name carries the Zamacona surname",
	Long: `Promote review and reject records to accept when their normalized full
name contains the target surname or one of its strong synonyms. Records that
also contain a rejected surname become review:ambiguous. Accepted records are
never demoted.

Without an input the command reads normalized.csv from --out-dir.

Outputs (in --out-dir):
  normalized_patched.csv  the dataset with updated status
  force_green.tsv         promoted and ambiguous records

Examples:
  # Promote the output of the normalize stage
  zamacona promote

  # Keep statuses raised by an earlier run
  zamacona promote --prior out/previous/normalized_patched.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPromote,
}

func init() {
	rootCmd.AddCommand(promoteCmd)

	promoteCmd.Flags().String("prior", "", "Dataset from a previous run whose statuses are inherited by arkId")
}

func runPromote(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	path, err := s.inputPath(args, constants.NormalizedFile)
	if err != nil {
		return err
	}
	t, err := readTable(path)
	if err != nil {
		return err
	}

	if prior := mustGetString(cmd, "prior"); prior != "" {
		pt, err := dataset.ReadFile(prior)
		if err != nil {
			return fmt.Errorf("failed to read prior dataset: %w", err)
		}
		n := pipeline.InheritStatuses(t, pipeline.PriorStatuses(pt))
		fmt.Printf("Inherited %d statuses from %s\n", n, prior)
	}

	return s.promote(t)
}

func (s *session) promote(t *dataset.Table) error {
	rep := pipeline.Promote(t, s.engines, s.options("Promoting", len(t.Rows)))
	fmt.Println()

	if err := s.writeTable(constants.PatchedFile, t); err != nil {
		return err
	}
	if err := s.writer.WritePromote(rep); err != nil {
		return fmt.Errorf("failed to write promotion log: %w", err)
	}

	fmt.Println("\nPromotion:")
	fmt.Printf("  Promoted:           %d\n", rep.Promoted)
	fmt.Printf("  Already accepted:   %d\n", rep.Preserved)
	fmt.Printf("  Ambiguous:          %d\n", rep.Ambiguous)
	fmt.Printf("  Excluded:           %d\n", rep.Excluded)
	fmt.Printf("  Unchanged:          %d\n", rep.Unchanged)
	fmt.Println("\nStatus after promotion:")
	printTiers(tableTiers(t))
	return nil
}
