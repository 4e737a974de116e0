package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adriandez/de-zamacona-data/internal/classify"
	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/dataset"
	"github.com/adriandez/de-zamacona-data/internal/pipeline"
)

var auditCmd = &cobra.Command{
	Use:   "audit [input.csv]",
	Short: "Resolve every surname against the canonical whitelist",
	Long: `Count every distinct surname in the split surname columns and classify
it as OK (whitelisted or a known synonym), NEAR (within edit distance 2 of a
whitelisted surname) or REJECT.

Without an input the command reads the most processed dataset in --out-dir:
normalized_enhanced.csv, normalized_patched.csv or normalized.csv.

Outputs (in --out-dir):
  surnames_ok.tsv, surnames_near.tsv, surnames_reject.tsv
  surnames_looks_like_given.tsv   non-OK tokens that read as given names
  surnames_suggestions.tsv        NEAR tokens with their suggested surname`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	path, err := s.inputPath(args, constants.EnhancedFile, constants.PatchedFile, constants.NormalizedFile)
	if err != nil {
		return err
	}
	t, err := readTable(path)
	if err != nil {
		return err
	}
	return s.audit(t)
}

func (s *session) audit(t *dataset.Table) error {
	rep := pipeline.Audit(t, s.engines)
	if err := s.writer.WriteAudit(rep); err != nil {
		return fmt.Errorf("failed to write surname audit: %w", err)
	}

	fmt.Println("\nSurname audit:")
	fmt.Printf("  Distinct surnames: %d\n", len(rep.All))
	tierColors[classify.TierAccept].Printf("  OK:      %d\n", len(rep.OK))
	tierColors[classify.TierReview].Printf("  NEAR:    %d\n", len(rep.Near))
	tierColors[classify.TierReject].Printf("  REJECT:  %d\n", len(rep.Reject))
	fmt.Printf("  Look like given names: %d\n", len(rep.GivenLike))
	return nil
}
