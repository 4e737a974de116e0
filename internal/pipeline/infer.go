package pipeline

import (
	"slices"

	"github.com/adriandez/de-zamacona-data/internal/classify"
	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/dataset"
	"github.com/adriandez/de-zamacona-data/internal/inference"
)

// InferReport holds the candidates of an inference run, sorted for review,
// and how many corrections were applied.
type InferReport struct {
	Total      int
	Candidates int
	Actions    map[inference.Action]int
	Applied    int
	Log        []inference.Result
}

// Infer evaluates the surname rule on every candidate row. When apply is
// set, fills and swaps are written to the subject's surname columns and the
// rows are tagged in surnameInferenceApplied.
func Infer(t *dataset.Table, e *Engines, apply bool, opts Options) InferReport {
	type evaluation struct {
		res inference.Result
		ok  bool
	}

	evals := make([]evaluation, len(t.Rows))
	forEach(len(t.Rows), opts, func(i int) {
		res, ok := e.Inference.Evaluate(record(i, t.Rows[i]))
		evals[i] = evaluation{res: res, ok: ok}
	})

	rep := InferReport{Total: len(t.Rows), Actions: make(map[inference.Action]int)}
	var results []inference.Result
	for _, ev := range evals {
		if !ev.ok {
			continue
		}
		results = append(results, ev.res)
		rep.Actions[ev.res.Action]++
	}
	rep.Candidates = len(results)

	if apply {
		t.EnsureColumn(constants.ColInferenceApply)
		rep.Applied = inference.Apply(results, tableTarget{t: t})
	}

	rep.Log = slices.Clone(results)
	inference.SortLog(rep.Log)
	return rep
}

func record(i int, row dataset.Row) inference.Record {
	status, _ := classify.ParseStatus(row.Get(constants.ColStatus))
	col := func(role, suffix string) string {
		return row.Get(dataset.Column(role, suffix))
	}
	return inference.Record{
		Row:         i,
		Key:         row.Get(constants.ColArkID),
		Status:      status,
		FullName:    row.Field(constants.RoleSubject),
		ChildGiven:  col(constants.RoleSubject, constants.SuffixGiven),
		FatherGiven: col(constants.RoleFather, constants.SuffixGiven),
		MotherGiven: col(constants.RoleMother, constants.SuffixGiven),
		Input: inference.Input{
			Child: inference.Pair{
				Surname1: col(constants.RoleSubject, constants.SuffixSurname1),
				Surname2: col(constants.RoleSubject, constants.SuffixSurname2),
			},
			FatherSurname1: col(constants.RoleFather, constants.SuffixSurname1),
			MotherSurname1: col(constants.RoleMother, constants.SuffixSurname1),
		},
	}
}

// tableTarget writes applied corrections back into the table.
type tableTarget struct {
	t *dataset.Table
}

func (tt tableTarget) SetSurnames(row int, surnames inference.Pair, applied inference.Action) {
	r := tt.t.Rows[row]
	r[dataset.Column(constants.RoleSubject, constants.SuffixSurname1)] = surnames.Surname1
	r[dataset.Column(constants.RoleSubject, constants.SuffixSurname2)] = surnames.Surname2
	r[constants.ColInferenceApply] = string(applied)
}
