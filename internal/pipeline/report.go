package pipeline

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/dataset"
	"github.com/adriandez/de-zamacona-data/internal/surnames"
)

// Writer writes stage outputs into one directory. Every TSV row starts with
// the run ID so logs from several runs can be concatenated.
type Writer struct {
	Dir   string
	RunID string
}

func (w Writer) path(name string) string {
	return filepath.Join(w.Dir, name)
}

// WriteNormalize writes the review log and the unique name counts.
func (w Writer) WriteNormalize(rep NormalizeReport) error {
	lines := make([]string, 0, len(rep.Review))
	for _, r := range rep.Review {
		line := fmt.Sprintf("%s | %s", r.ArkID, r.FullName)
		if r.Reason != "" {
			line += " | " + r.Reason
		}
		lines = append(lines, line)
	}
	if err := dataset.WriteLinesFile(w.path(constants.ReviewLogFile), lines); err != nil {
		return err
	}
	if err := w.writeCounts(constants.UniqueGivenFile, "given", rep.UniqueGiven); err != nil {
		return err
	}
	return w.writeCounts(constants.UniqueSurnamesFile, "surname", rep.UniqueSurnames)
}

func (w Writer) writeCounts(name, column string, counts []NameCount) error {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{w.RunID, c.Name, strconv.Itoa(c.Count)})
	}
	return dataset.WriteTSVFile(w.path(name), []string{"runId", column, "count"}, rows)
}

// WritePromote writes the promotion log.
func (w Writer) WritePromote(rep PromoteReport) error {
	rows := make([][]string, 0, len(rep.Log))
	for _, e := range rep.Log {
		rows = append(rows, []string{
			w.RunID,
			strconv.Itoa(e.Row),
			e.ArkID,
			e.FullName,
			e.From.String(),
			e.To.String(),
			string(e.Action),
			e.Reason,
		})
	}
	header := []string{"runId", "row", constants.ColArkID, constants.RoleSubject, "from", "to", "action", "reason"}
	return dataset.WriteTSVFile(w.path(constants.PromotionLogFile), header, rows)
}

// WriteInfer writes the inference log in review order.
func (w Writer) WriteInfer(rep InferReport) error {
	rows := make([][]string, 0, len(rep.Log))
	for _, r := range rep.Log {
		rows = append(rows, []string{
			w.RunID,
			r.Key,
			strconv.Itoa(r.Row),
			r.Observed.Surname1,
			r.Observed.Surname2,
			r.Proposed.Surname1,
			r.Proposed.Surname2,
			string(r.Action),
			r.Reason,
		})
	}
	header := []string{"runId", constants.ColArkID, "row", "obs_surn1", "obs_surn2", "prop_surn1", "prop_surn2", "action", "reason"}
	return dataset.WriteTSVFile(w.path(constants.InferLogFile), header, rows)
}

// WriteAudit writes one file per surname class, the given-name-like tokens,
// and the suggested corrections for NEAR tokens.
func (w Writer) WriteAudit(rep surnames.Report) error {
	files := []struct {
		name string
		rows []surnames.Classification
	}{
		{constants.SurnamesOKFile, rep.OK},
		{constants.SurnamesNearFile, rep.Near},
		{constants.SurnamesRejectFile, rep.Reject},
		{constants.LooksLikeGivenFile, rep.GivenLike},
	}
	header := []string{"runId", "variant", "count", "class", "canonical", "distance", "reason", "looks_like_given"}
	for _, f := range files {
		rows := make([][]string, 0, len(f.rows))
		for _, c := range f.rows {
			rows = append(rows, []string{
				w.RunID,
				c.Variant,
				strconv.Itoa(c.Count),
				string(c.Class),
				c.Canonical,
				distance(c),
				c.Reason,
				strconv.FormatBool(c.LooksLikeGiven),
			})
		}
		if err := dataset.WriteTSVFile(w.path(f.name), header, rows); err != nil {
			return err
		}
	}

	suggestions := make([][]string, 0, len(rep.Near))
	for _, c := range rep.Near {
		suggestions = append(suggestions, []string{w.RunID, c.Variant, c.Canonical, distance(c), strconv.Itoa(c.Count)})
	}
	return dataset.WriteTSVFile(w.path(constants.SuggestionsFile),
		[]string{"runId", "variant", "suggested", "distance", "count"}, suggestions)
}

func distance(c surnames.Classification) string {
	if !c.HasDistance {
		return ""
	}
	return strconv.Itoa(c.Distance)
}

// WriteTable writes a dataset table under name.
func (w Writer) WriteTable(name string, t *dataset.Table) error {
	return t.WriteFile(w.path(name))
}
