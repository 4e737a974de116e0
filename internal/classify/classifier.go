// Package classify assigns confidence tiers to records from the lexical
// signals in their name fields, and promotes records whose full name carries
// the target surname.
package classify

import (
	"regexp"

	"github.com/adriandez/de-zamacona-data/internal/lexicon"
	"github.com/adriandez/de-zamacona-data/internal/textnorm"
)

// Reason codes, in precedence order. Pattern reasons are "regex:<name>".
const (
	ReasonToken     = "token"
	ReasonRegexMisc = "regex:misc"
	ReasonPhrase    = "phrase"
)

var tokenSplitRe = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Result is the classification of one record.
type Result struct {
	Tier   Tier
	Reason string
	// BlacklistFlag is 1 for rejected records.
	BlacklistFlag int
	// ReviewFlag is 1 for records that need review.
	ReviewFlag int
}

// Classifier derives a tier from normalized name fields.
type Classifier struct {
	lex *lexicon.Lexicon
}

// New creates a Classifier over lex.
func New(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

type signals struct {
	token     bool
	prefix    string
	nearMiss  string
	anyRegex  bool
	phrase    bool
	hasTarget bool
}

// Classify looks at every field of a record together.
func (c *Classifier) Classify(fields []string) Result {
	var sig signals
	for _, f := range fields {
		c.scan(textnorm.Fold(f), &sig)
	}

	var reason string
	switch {
	case sig.token:
		reason = ReasonToken
	case sig.prefix != "":
		reason = "regex:" + sig.prefix
	case sig.nearMiss != "":
		reason = "regex:" + sig.nearMiss
	case sig.anyRegex:
		reason = ReasonRegexMisc
	case sig.phrase:
		reason = ReasonPhrase
	}

	critical := sig.token || sig.prefix != "" || sig.nearMiss != "" || sig.phrase
	res := Result{Reason: reason}
	switch {
	case critical || (sig.anyRegex && !sig.hasTarget):
		res.Tier = TierReject
		res.BlacklistFlag = 1
	case !sig.hasTarget:
		res.Tier = TierReview
		res.ReviewFlag = 1
	default:
		res.Tier = TierAccept
	}
	return res
}

func (c *Classifier) scan(text string, sig *signals) {
	if text == "" {
		return
	}
	target := c.lex.TargetKey()
	for _, tok := range tokenSplitRe.Split(text, -1) {
		if tok == "" {
			continue
		}
		if c.lex.Blacklist.Tokens.Has(tok) {
			sig.token = true
		}
		if tok == target {
			sig.hasTarget = true
		}
	}

	for _, p := range c.lex.Blacklist.Patterns {
		if !p.Match(text) {
			continue
		}
		sig.anyRegex = true
		switch p.Kind {
		case lexicon.KindPrefixFamily:
			if sig.prefix == "" {
				sig.prefix = p.Name
			}
		case lexicon.KindNearTarget:
			if sig.nearMiss == "" {
				sig.nearMiss = p.Name
			}
		}
	}

	cleaned := textnorm.CleanSpaces(text)
	for _, phrase := range c.lex.Blacklist.Phrases {
		if textnorm.ContainsWord(cleaned, phrase) {
			sig.phrase = true
			break
		}
	}
}
