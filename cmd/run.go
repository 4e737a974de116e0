package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <input.csv>",
	Short: "Run every stage: normalize, promote, infer and audit",
	Long: `Run the whole pipeline over one dataset. Each stage writes its outputs to
--out-dir exactly as the single-stage commands do, and all logs share one
run ID.

Examples:
  # Full run, applying fills and swaps
  zamacona run data/consolidated.csv

  # Full run, leaving surnames untouched
  zamacona run data/consolidated.csv --apply=false`,
	Args: cobra.ExactArgs(1),
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("apply", true, "Write fills and swaps to the dataset")
	runCmd.Flags().Int("show", 10, "Number of proposed corrections to list (0 = none)")
}

func runAll(cmd *cobra.Command, args []string) error {
	apply := mustGetBool(cmd, "apply")
	show := mustGetInt(cmd, "show")

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	t, err := readTable(args[0])
	if err != nil {
		return err
	}

	fmt.Println("\n== Normalize ==")
	if err := s.normalize(t); err != nil {
		return err
	}
	fmt.Println("\n== Promote ==")
	if err := s.promote(t); err != nil {
		return err
	}
	fmt.Println("\n== Infer ==")
	if err := s.infer(t, apply, show); err != nil {
		return err
	}
	fmt.Println("\n== Audit ==")
	return s.audit(t)
}
