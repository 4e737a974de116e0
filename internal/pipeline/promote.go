package pipeline

import (
	"github.com/adriandez/de-zamacona-data/internal/classify"
	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/dataset"
)

// PromotionEntry is one row the promoter acted on.
type PromotionEntry struct {
	Row      int
	ArkID    string
	FullName string
	From     classify.Status
	To       classify.Status
	Action   classify.PromotionAction
	Reason   string
}

// PromoteReport counts what a promotion run did. Log holds the promoted and
// ambiguous rows in row order.
type PromoteReport struct {
	Total     int
	Promoted  int
	Preserved int
	Ambiguous int
	Excluded  int
	Unchanged int
	Log       []PromotionEntry
}

// Promote upgrades rows whose full name carries the target surname or one
// of its strong synonyms. Accepted rows with no split subject name (promoted
// ones, or ones that inherited accept from a previous run) get their names
// split, since the normalize stage only splits rows it accepted itself.
func Promote(t *dataset.Table, e *Engines, opts Options) PromoteReport {
	roles := presentRoles(t)
	prepareColumns(t, roles)

	results := make([]classify.Promotion, len(t.Rows))
	forEach(len(t.Rows), opts, func(i int) {
		row := t.Rows[i]
		results[i] = e.Promoter.Promote(currentStatus(row), row.Field(constants.RoleSubject))
	})

	rep := PromoteReport{Total: len(t.Rows)}
	for i, p := range results {
		row := t.Rows[i]
		from := currentStatus(row)
		row[constants.ColStatus] = p.Status.String()

		switch p.Action {
		case classify.ActionPromote:
			rep.Promoted++
		case classify.ActionPreserve:
			rep.Preserved++
		case classify.ActionAmbiguous:
			rep.Ambiguous++
		case classify.ActionExcluded:
			rep.Excluded++
		default:
			rep.Unchanged++
		}

		if p.Status.Tier == classify.TierAccept && unsplit(row) {
			splitRoles(row, roles, e.Splitter)
		}

		if p.Action == classify.ActionPromote || p.Action == classify.ActionAmbiguous {
			rep.Log = append(rep.Log, PromotionEntry{
				Row:      i,
				ArkID:    row.Get(constants.ColArkID),
				FullName: row.Field(constants.RoleSubject),
				From:     from,
				To:       p.Status,
				Action:   p.Action,
				Reason:   p.Reason,
			})
		}
	}
	return rep
}

func unsplit(row dataset.Row) bool {
	for _, suffix := range []string{constants.SuffixGiven, constants.SuffixSurname1, constants.SuffixSurname2} {
		if row.Get(dataset.Column(constants.RoleSubject, suffix)) != "" {
			return false
		}
	}
	return true
}

// PriorStatuses indexes the statuses of a previous run by arkId. Rows
// without an arkId or a readable status are skipped.
func PriorStatuses(prior *dataset.Table) map[string]classify.Status {
	out := make(map[string]classify.Status, len(prior.Rows))
	for _, row := range prior.Rows {
		key := row.Get(constants.ColArkID)
		if key == "" {
			continue
		}
		if s, ok := classify.ParseStatus(row.Get(constants.ColStatus)); ok {
			out[key] = s
		}
	}
	return out
}

// InheritStatuses raises the status of every row to the one a previous run
// stored for the same arkId, when that one ranks higher. It returns the
// number of rows changed.
func InheritStatuses(t *dataset.Table, prior map[string]classify.Status) int {
	t.EnsureColumn(constants.ColStatus)
	n := 0
	for _, row := range t.Rows {
		p, ok := prior[row.Get(constants.ColArkID)]
		cur := currentStatus(row)
		merged := classify.MergePrior(cur, p, ok)
		if merged != cur {
			row[constants.ColStatus] = merged.String()
			n++
		}
	}
	return n
}
