package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/adriandez/de-zamacona-data/internal/classify"
	"github.com/adriandez/de-zamacona-data/internal/config"
	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/dataset"
	"github.com/adriandez/de-zamacona-data/internal/lexicon"
	"github.com/adriandez/de-zamacona-data/internal/pipeline"
)

// session is the state shared by one command invocation.
type session struct {
	cfg     *config.Config
	engines *pipeline.Engines
	writer  pipeline.Writer
}

// newSession loads config and lexicon and stamps the run with a fresh ID.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg := config.Load()
	if v := mustGetString(cmd, "data-dir"); v != "" {
		cfg.Paths.DataDir = v
	}
	if v := mustGetString(cmd, "out-dir"); v != "" {
		cfg.Paths.OutDir = v
	}
	if v := mustGetInt(cmd, "concurrency"); v > 0 {
		cfg.Pipeline.Concurrency = v
	}

	lex, err := lexicon.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load default lexicon: %w", err)
	}
	lex, err = lexicon.LoadDir(lex, cfg.Paths.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexical resources from %s: %w", cfg.Paths.DataDir, err)
	}

	runID := uuid.New().String()
	fmt.Printf("Run %s (whitelist: %d surnames, %d synonyms)\n", runID, lex.Whitelist.Len(), len(lex.SurnameSynonyms))

	return &session{
		cfg:     cfg,
		engines: pipeline.NewEngines(lex),
		writer:  pipeline.Writer{Dir: cfg.Paths.OutDir, RunID: runID},
	}, nil
}

// options returns stage options reporting to a new progress bar. Callers
// print a newline once the stage returns.
func (s *session) options(description string, total int) pipeline.Options {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("records"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)
	return pipeline.Options{
		Concurrency: s.cfg.Pipeline.Concurrency,
		OnRecord:    func() { _ = bar.Add(1) },
	}
}

func (s *session) outPath(name string) string {
	return filepath.Join(s.cfg.Paths.OutDir, name)
}

// inputPath returns the explicit argument, or the first existing default
// output of an earlier stage.
func (s *session) inputPath(args []string, defaults ...string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	for _, name := range defaults {
		p := s.outPath(name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	if len(defaults) == 0 {
		return "", errors.New("input file is required")
	}
	return "", fmt.Errorf("no input given and %s not found", s.outPath(defaults[len(defaults)-1]))
}

func readTable(path string) (*dataset.Table, error) {
	fmt.Printf("Reading %s...\n", path)
	t, err := dataset.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("%s has no records", path)
	}
	fmt.Printf("Records: %d\n", len(t.Rows))
	return t, nil
}

func (s *session) writeTable(name string, t *dataset.Table) error {
	if err := s.writer.WriteTable(name, t); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	fmt.Printf("Wrote %s\n", s.outPath(name))
	return nil
}

var tierColors = map[classify.Tier]*color.Color{
	classify.TierAccept: color.New(color.FgGreen),
	classify.TierReview: color.New(color.FgYellow),
	classify.TierReject: color.New(color.FgRed),
}

// printTiers prints a coloured count per tier, highest first.
func printTiers(counts map[classify.Tier]int) {
	for _, tier := range []classify.Tier{classify.TierAccept, classify.TierReview, classify.TierReject} {
		tierColors[tier].Printf("  %-16s %d\n", tierLabel(tier)+":", counts[tier])
	}
}

// tierLabel names a tier together with its legacy spreadsheet color.
func tierLabel(tier classify.Tier) string {
	return fmt.Sprintf("%s (%s)", tier, tier.Color())
}

// tableTiers counts the status of every row.
func tableTiers(t *dataset.Table) map[classify.Tier]int {
	counts := make(map[classify.Tier]int)
	for _, row := range t.Rows {
		if s, ok := classify.ParseStatus(row.Get(constants.ColStatus)); ok {
			counts[s.Tier]++
		}
	}
	return counts
}
