package surnames

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// Audit counts the distinct surname tokens found in cells (each cell may
// hold several ';' separated values), resolves each one and returns them
// ordered OK, NEAR, REJECT, then by distance, by descending count and by
// variant.
func (r *Resolver) Audit(cells []string) []Classification {
	counts := make(map[string]int)
	var order []string
	for _, cell := range cells {
		for _, part := range strings.Split(cell, ";") {
			tok := NormalizeToken(part)
			if tok == "" {
				continue
			}
			if counts[tok] == 0 {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	out := make([]Classification, 0, len(order))
	for _, tok := range order {
		out = append(out, r.Resolve(tok, counts[tok]))
	}
	slices.SortStableFunc(out, compareClassifications)
	return out
}

func compareClassifications(a, b Classification) int {
	return cmp.Or(
		cmp.Compare(a.Class.rank(), b.Class.rank()),
		cmp.Compare(distanceKey(a), distanceKey(b)),
		cmp.Compare(b.Count, a.Count),
		cmp.Compare(a.Variant, b.Variant),
	)
}

// distanceKey sorts classifications without a distance last.
func distanceKey(c Classification) int {
	if !c.HasDistance {
		return math.MaxInt
	}
	return c.Distance
}

// Report groups audit results the way they are written out.
type Report struct {
	OK     []Classification
	Near   []Classification
	Reject []Classification
	// GivenLike holds non-OK tokens that look like given names.
	GivenLike []Classification
	All       []Classification
}

// NewReport partitions ordered audit results.
func NewReport(results []Classification) Report {
	rep := Report{All: results}
	for _, c := range results {
		switch c.Class {
		case ClassOK:
			rep.OK = append(rep.OK, c)
		case ClassNear:
			rep.Near = append(rep.Near, c)
		default:
			rep.Reject = append(rep.Reject, c)
		}
		if c.LooksLikeGiven && c.Class != ClassOK {
			rep.GivenLike = append(rep.GivenLike, c)
		}
	}
	return rep
}
