package pipeline

import (
	"cmp"
	"slices"
	"strings"

	"github.com/adriandez/de-zamacona-data/internal/classify"
	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/dataset"
	"github.com/adriandez/de-zamacona-data/internal/names"
	"github.com/adriandez/de-zamacona-data/internal/textnorm"
)

// ReviewEntry is a record the classifier sent to review.
type ReviewEntry struct {
	Row      int
	ArkID    string
	FullName string
	Reason   string
}

// NameCount is one distinct name and how many accepted records carry it.
type NameCount struct {
	Name  string
	Count int
}

// NormalizeReport summarizes a normalize run.
type NormalizeReport struct {
	Total          int
	Tiers          map[classify.Tier]int
	Inherited      int
	Review         []ReviewEntry
	UniqueGiven    []NameCount
	UniqueSurnames []NameCount
}

type normalizedRow struct {
	work      map[string]string
	splits    map[string]names.Split
	result    classify.Result
	status    classify.Status
	inherited bool
}

// Normalize cleans every name role of every row into its "__work" column,
// classifies the record, and splits accepted names into given name and
// surnames. A status already present on a row is treated as the status of a
// previous run: it is kept when it ranks higher than the fresh one.
func Normalize(t *dataset.Table, e *Engines, opts Options) NormalizeReport {
	roles := presentRoles(t)
	prepareColumns(t, roles)

	results := make([]normalizedRow, len(t.Rows))
	forEach(len(t.Rows), opts, func(i int) {
		results[i] = normalizeRow(t.Rows[i], roles, e)
	})

	rep := NormalizeReport{Total: len(t.Rows), Tiers: make(map[classify.Tier]int)}
	given := make(map[string]int)
	surnames := make(map[string]int)

	for i, res := range results {
		row := t.Rows[i]
		for role, v := range res.work {
			row[role+constants.SuffixWork] = v
		}
		row[constants.ColStatus] = res.status.String()
		row[constants.ColBlacklistFlag] = itoa01(res.result.BlacklistFlag)
		row[constants.ColReviewFlag] = itoa01(res.result.ReviewFlag)
		row[constants.ColBlacklistRsn] = res.result.Reason

		for _, role := range roles {
			s := res.splits[role]
			row[dataset.Column(role, constants.SuffixGiven)] = s.Given
			row[dataset.Column(role, constants.SuffixSurname1)] = s.Surname1
			row[dataset.Column(role, constants.SuffixSurname2)] = s.Surname2
		}

		rep.Tiers[res.status.Tier]++
		if res.inherited {
			rep.Inherited++
		}
		if res.result.ReviewFlag == 1 {
			rep.Review = append(rep.Review, ReviewEntry{
				Row:      i,
				ArkID:    row.Get(constants.ColArkID),
				FullName: row.Field(constants.RoleSubject),
				Reason:   res.result.Reason,
			})
		}
		if res.status.Tier == classify.TierAccept {
			countNames(res.splits, given, surnames)
		}
	}

	rep.UniqueGiven = sortedCounts(given)
	rep.UniqueSurnames = sortedCounts(surnames)
	return rep
}

// prepareColumns adds the derived columns of every role next to its source.
func prepareColumns(t *dataset.Table, roles []string) {
	for _, role := range roles {
		work := role + constants.SuffixWork
		t.EnsureColumnAfter(work, role)
		prev := work
		for _, suffix := range []string{constants.SuffixGiven, constants.SuffixSurname1, constants.SuffixSurname2} {
			col := dataset.Column(role, suffix)
			t.EnsureColumnAfter(col, prev)
			prev = col
		}
	}
	for _, col := range []string{constants.ColStatus, constants.ColBlacklistFlag, constants.ColReviewFlag, constants.ColBlacklistRsn} {
		t.EnsureColumn(col)
	}
}

func normalizeRow(row dataset.Row, roles []string, e *Engines) normalizedRow {
	out := normalizedRow{
		work:   make(map[string]string, len(roles)),
		splits: make(map[string]names.Split, len(roles)),
	}

	fields := make([]string, 0, len(roles))
	for _, role := range roles {
		w := e.Normalizer.NormalizeCell(row.Field(role))
		out.work[role] = w
		fields = append(fields, w)
	}

	out.result = e.Classifier.Classify(fields)
	fresh := classify.Status{Tier: out.result.Tier}
	prior, hasPrior := classify.ParseStatus(row.Get(constants.ColStatus))
	out.status = classify.MergePrior(fresh, prior, hasPrior)
	out.inherited = out.status != fresh

	if out.status.Tier != classify.TierAccept {
		return out
	}
	for _, role := range roles {
		out.splits[role] = e.Splitter.Split(out.work[role])
	}
	return out
}

func countNames(splits map[string]names.Split, given, surnames map[string]int) {
	for _, s := range splits {
		if g := textnorm.TitleCase(textnorm.CleanSpaces(s.Given)); g != "" {
			given[g]++
		}
		for _, sn := range []string{s.Surname1, s.Surname2} {
			for part := range strings.SplitSeq(sn, ";") {
				if part = textnorm.CleanSpaces(part); part != "" {
					surnames[part]++
				}
			}
		}
	}
}

// sortedCounts orders names by descending count, then case-insensitively.
func sortedCounts(m map[string]int) []NameCount {
	out := make([]NameCount, 0, len(m))
	for name, n := range m {
		out = append(out, NameCount{Name: name, Count: n})
	}
	slices.SortFunc(out, func(a, b NameCount) int {
		return cmp.Or(
			cmp.Compare(b.Count, a.Count),
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.Name, b.Name),
		)
	})
	return out
}

func itoa01(v int) string {
	if v != 0 {
		return "1"
	}
	return "0"
}
