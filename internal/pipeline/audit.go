package pipeline

import (
	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/dataset"
	"github.com/adriandez/de-zamacona-data/internal/surnames"
)

// Audit resolves every surname found in the split columns of all roles.
func Audit(t *dataset.Table, e *Engines) surnames.Report {
	var cells []string
	for _, role := range presentRoles(t) {
		for _, suffix := range []string{constants.SuffixSurname1, constants.SuffixSurname2} {
			col := dataset.Column(role, suffix)
			for _, row := range t.Rows {
				if v := row.Get(col); v != "" {
					cells = append(cells, v)
				}
			}
		}
	}
	return surnames.NewReport(e.Resolver.Audit(cells))
}
