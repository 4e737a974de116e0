// Package names splits a normalized full name into a given name and up to two
// surnames.
//
// The split is an ordered list of named rules; the first rule that matches
// produces the result. Before the rules run, known compound given names at
// the start of the name are merged into a single token.
package names

import (
	"slices"
	"strings"

	"github.com/adriandez/de-zamacona-data/internal/lexicon"
	"github.com/adriandez/de-zamacona-data/internal/textnorm"
)

// Rule names reported by SplitWithRule.
const (
	RuleEmpty         = "empty"
	RuleSingleToken   = "single_token"
	RuleTwoTokens     = "two_tokens"
	RuleTrailingGiven = "trailing_given"
	RuleSurnameScan   = "surname_scan"
)

// Split is the given name and surnames of one person.
type Split struct {
	Given    string
	Surname1 string
	Surname2 string
}

// tokens is the merged token list of one name with its folded keys.
type tokens struct {
	words []string
	keys  []string
}

func newTokens(words []string) tokens {
	keys := make([]string, len(words))
	for i, w := range words {
		keys[i] = textnorm.Fold(w)
	}
	return tokens{words: words, keys: keys}
}

func (t tokens) len() int { return len(t.words) }

func (t tokens) slice(from, to int) tokens {
	return tokens{words: t.words[from:to], keys: t.keys[from:to]}
}

type rule struct {
	name  string
	apply func(sp *Splitter, t tokens) (Split, bool)
}

var rules = []rule{
	{RuleEmpty, (*Splitter).empty},
	{RuleSingleToken, (*Splitter).singleToken},
	{RuleTwoTokens, (*Splitter).twoTokens},
	{RuleTrailingGiven, (*Splitter).trailingGiven},
	{RuleSurnameScan, (*Splitter).surnameScan},
}

// Splitter splits names using a Lexicon. It is safe for concurrent use.
type Splitter struct {
	lex *lexicon.Lexicon
}

// New creates a Splitter over lex.
func New(lex *lexicon.Lexicon) *Splitter {
	return &Splitter{lex: lex}
}

// Split splits the first ';' variant of name.
func (sp *Splitter) Split(name string) Split {
	s, _ := sp.SplitWithRule(name)
	return s
}

// SplitWithRule splits the first ';' variant of name and reports which rule
// produced the result.
func (sp *Splitter) SplitWithRule(name string) (Split, string) {
	t := sp.merge(strings.Fields(textnorm.FirstVariant(name)))
	for _, r := range rules {
		if s, ok := r.apply(sp, t); ok {
			return s, r.name
		}
	}
	// surname_scan matches every input the earlier rules leave.
	return Split{}, RuleEmpty
}

// merge fixes "<masculine name> Antonia" and joins a leading compound given
// name into one token.
func (sp *Splitter) merge(words []string) tokens {
	t := newTokens(words)
	if t.len() >= 2 && t.keys[1] == "antonia" && sp.lex.MasculineFirst.Has(t.keys[0]) {
		words = slices.Clone(words)
		words[1] = "Antonio"
		t = newTokens(words)
	}

	for _, compound := range sp.lex.CompoundGiven {
		n := len(compound)
		if t.len() < n || !slices.Equal(t.keys[:n], compound) {
			continue
		}
		merged := textnorm.TitleCase(strings.Join(t.words[:n], " "))
		rest := t.words[n:]
		if n >= 3 && len(rest) == 1 && sp.lex.IsGivenLike(textnorm.Fold(rest[0])) {
			merged += " " + textnorm.TitleCase(rest[0])
			rest = nil
		}
		return newTokens(append([]string{merged}, rest...))
	}
	return t
}

func (sp *Splitter) empty(t tokens) (Split, bool) {
	return Split{}, t.len() == 0
}

func (sp *Splitter) singleToken(t tokens) (Split, bool) {
	if t.len() != 1 {
		return Split{}, false
	}
	if t.keys[0] == sp.lex.TargetKey() {
		return Split{Surname1: sp.lex.TargetSurname}, true
	}
	return Split{Given: textnorm.TitleCase(t.words[0])}, true
}

func (sp *Splitter) twoTokens(t tokens) (Split, bool) {
	if t.len() != 2 {
		return Split{}, false
	}
	if sp.lex.IsGivenLike(t.keys[1]) || sp.lex.GivenOnlyPairs.Has(t.keys[0]+" "+t.keys[1]) {
		return Split{Given: titleJoin(t.words)}, true
	}
	return Split{
		Given:    textnorm.TitleCase(t.words[0]),
		Surname1: sp.canonical(t, 1),
	}, true
}

// trailingGiven handles three tokens whose last one is a given name: the
// remaining pair is either two given names or a given name and a surname.
func (sp *Splitter) trailingGiven(t tokens) (Split, bool) {
	if t.len() != 3 || !sp.lex.IsGivenLike(t.keys[2]) {
		return Split{}, false
	}
	last := textnorm.TitleCase(t.words[2])
	if sp.lex.IsGivenLike(t.keys[1]) {
		return Split{Given: titleJoin(t.words)}, true
	}
	return Split{
		Given:    textnorm.TitleCase(t.words[0]) + " " + last,
		Surname1: sp.canonical(t, 1),
	}, true
}

// surnameScan looks for two surname-like tokens from the end. With fewer
// than two, or with nothing before the first of them, the last two tokens are
// taken as surnames. Tokens that are not picked as surnames stay in the given
// name in their original order.
func (sp *Splitter) surnameScan(t tokens) (Split, bool) {
	if t.len() < 3 {
		return Split{}, false
	}

	tail := ""
	if sp.lex.IsGivenLike(t.keys[t.len()-1]) {
		tail = textnorm.TitleCase(t.words[t.len()-1])
		t = t.slice(0, t.len()-1)
	}

	var found []int
	for i := t.len() - 1; i >= 0 && len(found) < 2; i-- {
		if sp.lex.IsSurnameLike(t.keys[i]) {
			found = append(found, i)
		}
	}

	if len(found) == 2 {
		later, earlier := found[0], found[1]
		if earlier > 0 {
			given := slices.Clone(t.words[:earlier])
			for i := earlier + 1; i < t.len(); i++ {
				if i != later {
					given = append(given, t.words[i])
				}
			}
			return Split{
				Given:    joinGiven(titleJoin(given), tail),
				Surname1: sp.canonical(t, earlier),
				Surname2: sp.canonical(t, later),
			}, true
		}
	}

	n := t.len()
	return Split{
		Given:    joinGiven(titleJoin(t.words[:n-2]), tail),
		Surname1: sp.canonical(t, n-2),
		Surname2: sp.canonical(t, n-1),
	}, true
}

func (sp *Splitter) canonical(t tokens, i int) string {
	if c, ok := sp.lex.ResolveSurname(t.keys[i]); ok {
		return c
	}
	return textnorm.TitleCase(t.words[i])
}

func titleJoin(words []string) string {
	return textnorm.TitleCase(strings.Join(words, " "))
}

func joinGiven(core, tail string) string {
	return strings.TrimSpace(core + " " + tail)
}
