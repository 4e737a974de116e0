// Package pipeline runs the name-cleaning stages over a dataset table:
// normalize (clean, classify, split), promote, infer and audit.
//
// Every stage computes one result per row with a pure function, possibly on
// several workers, and then writes the results back in row order.
package pipeline

import (
	"sync"

	"github.com/adriandez/de-zamacona-data/internal/classify"
	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/dataset"
	"github.com/adriandez/de-zamacona-data/internal/inference"
	"github.com/adriandez/de-zamacona-data/internal/lexicon"
	"github.com/adriandez/de-zamacona-data/internal/names"
	"github.com/adriandez/de-zamacona-data/internal/normalize"
	"github.com/adriandez/de-zamacona-data/internal/surnames"
)

// Engines bundles the stateless engines built from one Lexicon.
type Engines struct {
	Lexicon    *lexicon.Lexicon
	Normalizer *normalize.Normalizer
	Splitter   *names.Splitter
	Classifier *classify.Classifier
	Promoter   *classify.Promoter
	Resolver   *surnames.Resolver
	Inference  *inference.Engine
}

// NewEngines builds every engine over lex.
func NewEngines(lex *lexicon.Lexicon) *Engines {
	return &Engines{
		Lexicon:    lex,
		Normalizer: normalize.New(lex),
		Splitter:   names.New(lex),
		Classifier: classify.New(lex),
		Promoter:   classify.NewPromoter(lex),
		Resolver:   surnames.NewResolver(lex),
		Inference:  inference.New(lex),
	}
}

// Options control how a stage runs.
type Options struct {
	// Concurrency is the number of workers; values below 1 mean one.
	Concurrency int
	// OnRecord, when set, is called once per processed row. It may be
	// called from several goroutines at once.
	OnRecord func()
}

// forEach calls fn for every index in [0, n) on up to opts.Concurrency
// workers and returns when all calls are done.
func forEach(n int, opts Options, fn func(i int)) {
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fn(i)
			if opts.OnRecord != nil {
				opts.OnRecord()
			}
		}(i)
	}

	wg.Wait()
}

// presentRoles returns the name roles that have a raw or work column.
func presentRoles(t *dataset.Table) []string {
	var roles []string
	for _, role := range constants.Roles {
		if t.Has(role) || t.Has(role+constants.SuffixWork) {
			roles = append(roles, role)
		}
	}
	return roles
}

// currentStatus reads the status of a row, falling back to its flags.
func currentStatus(row dataset.Row) classify.Status {
	if s, ok := classify.ParseStatus(row.Get(constants.ColStatus)); ok {
		return s
	}
	switch {
	case row.Get(constants.ColBlacklistFlag) == "1":
		return classify.Status{Tier: classify.TierReject}
	case row.Get(constants.ColReviewFlag) == "1":
		return classify.Status{Tier: classify.TierReview}
	case row.Get(constants.ColBlacklistFlag) == "0" && row.Get(constants.ColReviewFlag) == "0":
		return classify.Status{Tier: classify.TierAccept}
	default:
		return classify.Status{Tier: classify.TierReview}
	}
}

// splitRoles writes the given/surname columns of every role from its work column.
func splitRoles(row dataset.Row, roles []string, sp *names.Splitter) {
	for _, role := range roles {
		s := sp.Split(row.Field(role))
		row[dataset.Column(role, constants.SuffixGiven)] = s.Given
		row[dataset.Column(role, constants.SuffixSurname1)] = s.Surname1
		row[dataset.Column(role, constants.SuffixSurname2)] = s.Surname2
	}
}
