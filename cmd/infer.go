package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/dataset"
	"github.com/adriandez/de-zamacona-data/internal/inference"
	"github.com/adriandez/de-zamacona-data/internal/pipeline"
)

var inferCmd = &cobra.Command{
	Use:   "infer [input.csv]",
	Short: "Check children's surnames against their parents'",
	Long: `Check every accepted record naming the Zamacona surname against the rule
child = (father's first surname, mother's first surname). Records whose
surnames are swapped, or missing where a parent provides them, get a
proposed correction; everything else is logged for review.

Without --apply the command only writes the log. With --apply fills and
swaps are written to the subject's surname columns and tagged in
surnameInferenceApplied.

Without an input the command reads normalized_patched.csv, falling back to
normalized.csv, from --out-dir.

Outputs (in --out-dir):
  infer_log.tsv             every candidate, corrections first
  normalized_enhanced.csv   the corrected dataset (with --apply)

Examples:
  # Review proposals
  zamacona infer --show 20

  # Apply fills and swaps
  zamacona infer --apply`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfer,
}

func init() {
	rootCmd.AddCommand(inferCmd)

	inferCmd.Flags().Bool("apply", false, "Write fills and swaps to the dataset")
	inferCmd.Flags().Int("show", 10, "Number of proposed corrections to list (0 = none)")
}

func runInfer(cmd *cobra.Command, args []string) error {
	apply := mustGetBool(cmd, "apply")
	show := mustGetInt(cmd, "show")

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	path, err := s.inputPath(args, constants.PatchedFile, constants.NormalizedFile)
	if err != nil {
		return err
	}
	t, err := readTable(path)
	if err != nil {
		return err
	}
	return s.infer(t, apply, show)
}

func (s *session) infer(t *dataset.Table, apply bool, show int) error {
	rep := pipeline.Infer(t, s.engines, apply, s.options("Inferring", len(t.Rows)))
	fmt.Println()

	if err := s.writer.WriteInfer(rep); err != nil {
		return fmt.Errorf("failed to write inference log: %w", err)
	}
	if apply {
		if err := s.writeTable(constants.EnhancedFile, t); err != nil {
			return err
		}
	}

	fmt.Printf("\nCandidates: %d\n", rep.Candidates)
	for _, a := range []inference.Action{
		inference.ActionSwap, inference.ActionFill, inference.ActionMismatch,
		inference.ActionOKRule, inference.ActionInsufficient,
	} {
		fmt.Printf("  %-26s %d\n", string(a)+":", rep.Actions[a])
	}
	if apply {
		fmt.Printf("Applied: %d\n", rep.Applied)
	} else if rep.Actions[inference.ActionSwap]+rep.Actions[inference.ActionFill] > 0 {
		fmt.Println("Dry run - use --apply to write fills and swaps")
	}

	printProposals(s, rep.Log, show)
	return nil
}

// printProposals lists the first n safe corrections with links to the records.
func printProposals(s *session, log []inference.Result, n int) {
	listed := 0
	for _, r := range log {
		if listed >= n || !r.Action.Safe() {
			break
		}
		if listed == 0 {
			fmt.Println("\nProposed corrections:")
		}
		fmt.Printf("  %-5s %s: %s %s -> %s %s\n", r.Action, s.cfg.Archive.RecordLink(r.Key),
			r.Observed.Surname1, r.Observed.Surname2, r.Proposed.Surname1, r.Proposed.Surname2)
		listed++
	}
}
