// Package normalize cleans free-text person names: accents, punctuation,
// abbreviations, archaic given-name spellings and surname variants of the
// target surname.
package normalize

import (
	"regexp"
	"strings"

	"github.com/adriandez/de-zamacona-data/internal/lexicon"
	"github.com/adriandez/de-zamacona-data/internal/textnorm"
)

// maxPasses bounds the fixed-point loop in Normalize.
const maxPasses = 4

var punctuationRe = regexp.MustCompile(`[.?,]+|[-–—]+`)

// Normalizer applies a Lexicon to name strings. It is safe for concurrent use.
type Normalizer struct {
	lex       *lexicon.Lexicon
	target    string
	targetKey string
}

// New creates a Normalizer over lex.
func New(lex *lexicon.Lexicon) *Normalizer {
	return &Normalizer{
		lex:       lex,
		target:    lex.TargetSurname,
		targetKey: lex.TargetKey(),
	}
}

// Normalize returns the cleaned form of one name. Empty input yields "".
//
// The cleaning pass is repeated until its output is stable, so
// Normalize(Normalize(s)) == Normalize(s).
func (n *Normalizer) Normalize(raw string) string {
	out := n.pass(raw)
	for i := 1; i < maxPasses; i++ {
		next := n.pass(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

// NormalizeCell normalizes every ';' variant of a cell and joins the
// non-empty results with "; ".
func (n *Normalizer) NormalizeCell(cell string) string {
	var parts []string
	for _, v := range textnorm.Variants(cell) {
		if s := n.Normalize(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; ")
}

func (n *Normalizer) pass(raw string) string {
	s := textnorm.RemoveDiacritics(raw)
	for _, sub := range n.lex.Substitutions {
		s = sub.Pattern.ReplaceAllString(s, sub.Replacement)
	}
	s = punctuationRe.ReplaceAllString(s, " ")
	s = textnorm.CleanSpaces(s)
	if s == "" {
		return ""
	}

	var tokens []string
	for _, tok := range strings.Fields(s) {
		key := textnorm.Fold(tok)
		if n.lex.FunctionWords.Has(key) || n.lex.Titles.Has(key) {
			continue
		}
		if given, ok := n.lex.GivenNames[key]; ok {
			tok = given
		}
		tokens = append(tokens, tok)
	}
	tokens = dedupeConsecutive(tokens)

	for i, tok := range tokens {
		tokens[i] = n.surname(tok)
	}
	return strings.Join(dedupeConsecutive(tokens), " ")
}

// surname maps one token through synonym, OCR variant and fuzzy match, in
// that order. Blacklisted and protected tokens are never coerced.
func (n *Normalizer) surname(tok string) string {
	key := textnorm.Fold(tok)
	if canonical, ok := n.lex.ResolveSurname(key); ok {
		return canonical
	}
	if key == n.targetKey || n.lex.OCRVariants.Has(key) {
		return n.target
	}
	if n.lex.Blacklist.Tokens.Has(key) || n.lex.ProtectedNear.Has(key) {
		return tok
	}
	if textnorm.EditDistance(key, n.targetKey) <= n.lex.NearThreshold {
		return n.target
	}
	return tok
}

func dedupeConsecutive(tokens []string) []string {
	out := tokens[:0:0]
	for _, tok := range tokens {
		if len(out) > 0 && textnorm.Fold(out[len(out)-1]) == textnorm.Fold(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
