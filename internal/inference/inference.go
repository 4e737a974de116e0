// Package inference checks a child's two surnames against the first surnames
// of the parents (surname 1 from the father, surname 2 from the mother) and
// proposes swaps or fills where the rule allows a safe correction.
package inference

import (
	"cmp"
	"slices"

	"github.com/adriandez/de-zamacona-data/internal/classify"
	"github.com/adriandez/de-zamacona-data/internal/lexicon"
	"github.com/adriandez/de-zamacona-data/internal/textnorm"
)

// Action is the verdict for one child record.
type Action string

const (
	ActionOKRule       Action = "ok_rule"
	ActionSwap         Action = "swap"
	ActionFill         Action = "fill"
	ActionMismatch     Action = "mismatch"
	ActionInsufficient Action = "insufficient_parent_data"
)

// Reasons attached to results.
const (
	ReasonCoherent        = "coherent"
	ReasonCoherentPartial = "coherent_partial"
	ReasonSwapped         = "swapped_order"
	ReasonMismatch        = "child!=father/mother rule"
	ReasonFillSurname1    = "fill_surn1_from_father;"
	ReasonFillSurname2    = "fill_surn2_from_mother;"
	ReasonMissingParent   = "missing_parent_surn1"
	ReasonMissingGiven    = "missing_given_names"
)

// Safe reports whether the action may be applied without review.
func (a Action) Safe() bool {
	return a == ActionFill || a == ActionSwap
}

func (a Action) rank() int {
	switch a {
	case ActionSwap:
		return 0
	case ActionFill:
		return 1
	case ActionMismatch:
		return 2
	case ActionOKRule:
		return 3
	case ActionInsufficient:
		return 4
	default:
		return 5
	}
}

// Pair is a first and second surname.
type Pair struct {
	Surname1 string
	Surname2 string
}

// Input holds the surnames the rule looks at.
type Input struct {
	Child          Pair
	FatherSurname1 string
	MotherSurname1 string
}

// Proposal is the outcome of Infer.
type Proposal struct {
	Surnames Pair
	Action   Action
	Reason   string
}

// Record is one candidate row with everything the eligibility gate needs.
type Record struct {
	Row    int
	Key    string
	Status classify.Status
	// FullName is the normalized subject name used to find the target surname.
	FullName    string
	ChildGiven  string
	FatherGiven string
	MotherGiven string
	Input
}

// Result is the evaluation of one eligible record.
type Result struct {
	Row      int
	Key      string
	Observed Pair
	Proposed Pair
	Action   Action
	Reason   string
}

// Engine evaluates the surname rule. Surnames are compared after synonym
// resolution, ignoring case and accents.
type Engine struct {
	lex *lexicon.Lexicon
}

// New creates an Engine over lex.
func New(lex *lexicon.Lexicon) *Engine {
	return &Engine{lex: lex}
}

// Infer applies the rule child = (father.surname1, mother.surname1).
//
// A missing child surname is filled from the matching parent only when the
// child's other surname agrees with its parent. A present child surname that
// disagrees with a known parent surname1 yields mismatch, and the missing side
// is not filled.
func (e *Engine) Infer(in Input) Proposal {
	c1, c2 := e.clean(in.Child.Surname1), e.clean(in.Child.Surname2)
	f1, m1 := e.clean(in.FatherSurname1), e.clean(in.MotherSurname1)
	observed := Pair{Surname1: c1, Surname2: c2}

	if c1 != "" && c2 != "" {
		switch {
		case f1 != "" && m1 != "":
			switch {
			case same(c1, f1) && same(c2, m1):
				return Proposal{Surnames: observed, Action: ActionOKRule, Reason: ReasonCoherent}
			case same(c1, m1) && same(c2, f1):
				return Proposal{Surnames: Pair{Surname1: f1, Surname2: m1}, Action: ActionSwap, Reason: ReasonSwapped}
			default:
				return Proposal{Surnames: observed, Action: ActionMismatch, Reason: ReasonMismatch}
			}
		case f1 != "" || m1 != "":
			if (f1 == "" || same(c1, f1)) && (m1 == "" || same(c2, m1)) {
				return Proposal{Surnames: observed, Action: ActionOKRule, Reason: ReasonCoherentPartial}
			}
			return Proposal{Surnames: observed, Action: ActionMismatch, Reason: ReasonMismatch}
		default:
			return Proposal{Surnames: observed, Action: ActionInsufficient, Reason: ReasonMissingParent}
		}
	}

	if (c1 != "" && f1 != "" && !same(c1, f1)) || (c2 != "" && m1 != "" && !same(c2, m1)) {
		return Proposal{Surnames: observed, Action: ActionMismatch, Reason: ReasonMismatch}
	}

	proposed := observed
	reason := ""
	if c1 == "" && f1 != "" {
		proposed.Surname1 = f1
		reason += ReasonFillSurname1
	}
	if c2 == "" && m1 != "" {
		proposed.Surname2 = m1
		reason += ReasonFillSurname2
	}
	if reason == "" {
		return Proposal{Surnames: observed, Action: ActionInsufficient, Reason: ReasonMissingParent}
	}
	return Proposal{Surnames: proposed, Action: ActionFill, Reason: reason}
}

// Eligible reports whether a record is a candidate at all: accepted and
// naming the target surname in its full name.
func (e *Engine) Eligible(r Record) bool {
	if r.Status.Tier != classify.TierAccept {
		return false
	}
	return textnorm.ContainsWord(textnorm.LettersOnly(r.FullName), e.lex.TargetKey())
}

// Evaluate runs the gate and the rule on one record. The boolean is false for
// records that are not candidates.
func (e *Engine) Evaluate(r Record) (Result, bool) {
	if !e.Eligible(r) {
		return Result{}, false
	}

	res := Result{
		Row: r.Row,
		Key: r.Key,
		Observed: Pair{
			Surname1: textnorm.CleanSpaces(r.Child.Surname1),
			Surname2: textnorm.CleanSpaces(r.Child.Surname2),
		},
	}
	if blank(r.ChildGiven) || blank(r.FatherGiven) || blank(r.MotherGiven) {
		res.Proposed = res.Observed
		res.Action = ActionInsufficient
		res.Reason = ReasonMissingGiven
		return res, true
	}

	p := e.Infer(r.Input)
	res.Action, res.Reason = p.Action, p.Reason
	res.Proposed = res.Observed
	if p.Action.Safe() {
		res.Proposed = p.Surnames
	}
	return res, true
}

// SortLog orders results for review: swaps, fills, mismatches, coherent
// records, insufficient data, then by key.
func SortLog(results []Result) {
	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Or(
			cmp.Compare(a.Action.rank(), b.Action.rank()),
			cmp.Compare(a.Key, b.Key),
		)
	})
}

// Target receives the corrections chosen by Apply.
type Target interface {
	SetSurnames(row int, surnames Pair, applied Action)
}

// Apply writes the proposals of safe results to t and returns how many were
// applied. Other results are left alone.
func Apply(results []Result, t Target) int {
	n := 0
	for _, r := range results {
		if !r.Action.Safe() {
			continue
		}
		t.SetSurnames(r.Row, r.Proposed, r.Action)
		n++
	}
	return n
}

func (e *Engine) clean(s string) string {
	s = textnorm.CleanSpaces(s)
	if s == "" {
		return s
	}
	if canonical, ok := e.lex.ResolveSurname(textnorm.Fold(s)); ok {
		return canonical
	}
	return s
}

func same(a, b string) bool {
	return textnorm.Fold(a) == textnorm.Fold(b)
}

func blank(s string) bool {
	return textnorm.CleanSpaces(s) == ""
}
