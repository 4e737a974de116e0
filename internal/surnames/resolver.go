// Package surnames checks observed surname tokens against the synonym table
// and the canonical whitelist.
package surnames

import (
	"regexp"
	"strings"

	"github.com/adriandez/de-zamacona-data/internal/lexicon"
	"github.com/adriandez/de-zamacona-data/internal/textnorm"
)

// Class is the verdict for one surname token.
type Class string

const (
	ClassOK     Class = "OK"
	ClassNear   Class = "NEAR"
	ClassReject Class = "REJECT"
)

// Resolution reasons.
const (
	ReasonSynonym   = "synonym"
	ReasonWhitelist = "whitelist"
	ReasonNear      = "near"
	ReasonNoMatch   = "no_match"
)

func (c Class) rank() int {
	switch c {
	case ClassOK:
		return 0
	case ClassNear:
		return 1
	default:
		return 2
	}
}

// Classification is the resolution of one distinct surname token.
type Classification struct {
	Variant   string
	Count     int
	Class     Class
	Canonical string
	// Distance is the edit distance to Canonical, or to the closest whitelist
	// entry for rejected tokens. It is only meaningful when HasDistance is set.
	Distance    int
	HasDistance bool
	Reason      string
	// LooksLikeGiven is informational and never changes Class.
	LooksLikeGiven bool
}

var tokenJunkRe = regexp.MustCompile(`[^\w\s\-']`)

// NormalizeToken strips accents and stray symbols from a surname cell part.
// Case is preserved.
func NormalizeToken(s string) string {
	s = textnorm.RemoveDiacritics(strings.TrimSpace(s))
	s = tokenJunkRe.ReplaceAllString(s, " ")
	return textnorm.CleanSpaces(s)
}

// Resolver classifies surname tokens. It is safe for concurrent use.
type Resolver struct {
	lex *lexicon.Lexicon
}

// NewResolver creates a Resolver over lex.
func NewResolver(lex *lexicon.Lexicon) *Resolver {
	return &Resolver{lex: lex}
}

// Resolve classifies token, observed count times.
//
// Synonym keys and whitelist entries are OK. Otherwise the closest whitelist
// entry decides: within the near threshold the token is NEAR, beyond it
// REJECT. Ties go to the entry listed first.
func (r *Resolver) Resolve(token string, count int) Classification {
	key := textnorm.Fold(NormalizeToken(token))
	c := Classification{
		Variant:        token,
		Count:          count,
		LooksLikeGiven: r.lex.ResolverGivenNames.Has(key),
	}

	if canonical, ok := r.lex.CanonicalSurname(key); ok {
		c.Class, c.Canonical, c.Reason = ClassOK, canonical, ReasonSynonym
		c.HasDistance = true
		return c
	}
	if orig, ok := r.lex.Whitelist.Original(key); ok {
		c.Class, c.Canonical, c.Reason = ClassOK, orig, ReasonWhitelist
		c.HasDistance = true
		return c
	}

	best := -1
	var bestEntry lexicon.WhitelistEntry
	for _, e := range r.lex.Whitelist.Entries() {
		d := textnorm.EditDistance(key, e.Key)
		if best < 0 || d < best {
			best, bestEntry = d, e
		}
	}

	if best >= 0 && best <= r.lex.NearThreshold {
		c.Class, c.Canonical, c.Reason = ClassNear, bestEntry.Original, ReasonNear
		c.Distance, c.HasDistance = best, true
		return c
	}

	c.Class, c.Reason = ClassReject, ReasonNoMatch
	if best >= 0 {
		c.Distance, c.HasDistance = best, true
	}
	return c
}
