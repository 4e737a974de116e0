// Package lexicon holds the lexical resources of the name-cleaning engine:
// given-name variants, surname synonyms, the canonical surname whitelist,
// blacklists and the hand-curated given-name dictionaries.
//
// A Lexicon is built once (Default, then the With* extenders) and shared by
// every stage. It must not be modified after construction; the With* methods
// return copies.
package lexicon

import (
	_ "embed"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/textnorm"
)

//go:embed default.yaml
var defaultYAML []byte

// Set is a set of folded tokens.
type Set map[string]struct{}

// NewSet folds every value into a new Set.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		if k := textnorm.Fold(v); k != "" {
			s[k] = struct{}{}
		}
	}
	return s
}

// Has reports whether the folded key is in the set.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Substitution is a regex phrase rewrite applied before tokenization.
type Substitution struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// PatternKind groups blacklist regexes by how the classifier weighs them.
type PatternKind string

const (
	// KindPrefixFamily marks a corrupted surname family matched by prefix.
	KindPrefixFamily PatternKind = "prefix_family"
	// KindNearTarget marks shapes that start like the target surname but are not it.
	KindNearTarget PatternKind = "near_target"
	// KindGeneric marks the remaining literal bad forms.
	KindGeneric PatternKind = "generic"
)

// Pattern is a named blacklist regex. Matches equal to an Except entry are ignored.
type Pattern struct {
	Name   string
	Kind   PatternKind
	Regexp *regexp.Regexp
	Except Set
}

// Match reports whether text (folded) holds a match that is not excepted.
func (p Pattern) Match(text string) bool {
	for _, m := range p.Regexp.FindAllString(text, -1) {
		if !p.Except.Has(m) {
			return true
		}
	}
	return false
}

// Blacklist collects the signals that mark a record as unreliable.
type Blacklist struct {
	Tokens   Set
	Phrases  []string
	Patterns []Pattern
}

// Lexicon is the immutable set of lexical tables used by every stage.
type Lexicon struct {
	// TargetSurname is the literal the pipeline identifies (e.g. "Zamacona").
	TargetSurname string
	// NearThreshold is the maximum edit distance for fuzzy matches.
	NearThreshold int

	FunctionWords Set
	Titles        Set
	Substitutions []Substitution

	// GivenNames maps folded archaic or misspelt given names to their modern form.
	GivenNames map[string]string
	// SurnameSynonyms maps folded surname variants to their canonical form.
	SurnameSynonyms map[string]string
	// OCRVariants are folded readings coerced to TargetSurname.
	OCRVariants Set
	// ProtectedNear are near-target surnames that must never be coerced.
	ProtectedNear Set

	GivenCommon     Set
	SecondGivenLike Set
	// GivenOnlyPairs holds two-token given names keyed as "first second".
	GivenOnlyPairs Set
	MasculineFirst Set
	// CompoundGiven holds folded compound given names, longest first.
	CompoundGiven [][]string

	Blacklist Blacklist
	Whitelist *Whitelist

	ResolverGivenNames Set
	PromotionBlacklist Set
	StrongSynonyms     Set
}

type patternDoc struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`
	Regex  string   `yaml:"regex"`
	Except []string `yaml:"except"`
}

type substitutionDoc struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

type document struct {
	TargetSurname   string            `yaml:"target_surname"`
	NearThreshold   int               `yaml:"near_threshold"`
	FunctionWords   []string          `yaml:"function_words"`
	Titles          []string          `yaml:"titles"`
	Substitutions   []substitutionDoc `yaml:"substitutions"`
	GivenNames      map[string]string `yaml:"given_names"`
	OCRVariants     []string          `yaml:"ocr_variants"`
	ProtectedNear   []string          `yaml:"protected_near"`
	SurnameSynonyms map[string]string `yaml:"surname_synonyms"`
	GivenCommon     []string          `yaml:"given_common"`
	SecondGivenLike []string          `yaml:"second_given_like"`
	GivenOnlyPairs  [][]string        `yaml:"given_only_pairs"`
	MasculineFirst  []string          `yaml:"masculine_first"`
	CompoundGiven   [][]string        `yaml:"compound_given"`
	Blacklist       struct {
		Tokens   []string     `yaml:"tokens"`
		Phrases  []string     `yaml:"phrases"`
		Patterns []patternDoc `yaml:"patterns"`
	} `yaml:"blacklist"`
	Whitelist          []string `yaml:"whitelist"`
	PromotionBlacklist []string `yaml:"promotion_blacklist"`
	StrongSynonyms     []string `yaml:"strong_synonyms"`
	ResolverGivenNames []string `yaml:"resolver_given_names"`
}

// Default builds the Lexicon shipped with the binary.
func Default() (*Lexicon, error) {
	return Parse(defaultYAML)
}

// Parse builds a Lexicon from a YAML document shaped like default.yaml.
func Parse(data []byte) (*Lexicon, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	return build(doc)
}

func build(doc document) (*Lexicon, error) {
	lex := &Lexicon{
		TargetSurname:      strings.TrimSpace(doc.TargetSurname),
		NearThreshold:      doc.NearThreshold,
		FunctionWords:      NewSet(doc.FunctionWords...),
		Titles:             NewSet(doc.Titles...),
		GivenNames:         foldMap(doc.GivenNames),
		SurnameSynonyms:    foldMap(doc.SurnameSynonyms),
		OCRVariants:        NewSet(doc.OCRVariants...),
		ProtectedNear:      NewSet(doc.ProtectedNear...),
		GivenCommon:        NewSet(doc.GivenCommon...),
		SecondGivenLike:    NewSet(doc.SecondGivenLike...),
		GivenOnlyPairs:     make(Set),
		MasculineFirst:     NewSet(doc.MasculineFirst...),
		Whitelist:          NewWhitelist(doc.Whitelist),
		ResolverGivenNames: NewSet(doc.ResolverGivenNames...),
		PromotionBlacklist: NewSet(doc.PromotionBlacklist...),
		StrongSynonyms:     NewSet(doc.StrongSynonyms...),
	}
	if lex.NearThreshold <= 0 {
		lex.NearThreshold = constants.DefaultNearThreshold
	}

	for _, sub := range doc.Substitutions {
		re, err := regexp.Compile(sub.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid substitution %q: %w", sub.Pattern, err)
		}
		lex.Substitutions = append(lex.Substitutions, Substitution{Pattern: re, Replacement: sub.Replacement})
	}

	for _, pair := range doc.GivenOnlyPairs {
		if len(pair) == 2 {
			lex.GivenOnlyPairs[textnorm.Fold(pair[0])+" "+textnorm.Fold(pair[1])] = struct{}{}
		}
	}

	for _, name := range doc.CompoundGiven {
		if len(name) < 2 {
			continue
		}
		folded := make([]string, len(name))
		for i, tok := range name {
			folded[i] = textnorm.Fold(tok)
		}
		lex.CompoundGiven = append(lex.CompoundGiven, folded)
	}
	slices.SortStableFunc(lex.CompoundGiven, func(a, b []string) int { return len(b) - len(a) })

	lex.Blacklist = Blacklist{
		Tokens: NewSet(doc.Blacklist.Tokens...),
	}
	for _, phrase := range doc.Blacklist.Phrases {
		if p := textnorm.CleanSpaces(textnorm.Fold(phrase)); p != "" {
			lex.Blacklist.Phrases = append(lex.Blacklist.Phrases, p)
		}
	}
	for _, p := range doc.Blacklist.Patterns {
		re, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, fmt.Errorf("invalid blacklist pattern %q: %w", p.Name, err)
		}
		kind := PatternKind(p.Kind)
		if kind == "" {
			kind = KindGeneric
		}
		name := p.Name
		if name == "" {
			name = p.Regex
		}
		lex.Blacklist.Patterns = append(lex.Blacklist.Patterns, Pattern{
			Name:   name,
			Kind:   kind,
			Regexp: re,
			Except: NewSet(p.Except...),
		})
	}

	return lex, nil
}

func foldMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if key := textnorm.Fold(k); key != "" {
			out[key] = strings.TrimSpace(v)
		}
	}
	return out
}

// TargetKey is the folded target surname.
func (l *Lexicon) TargetKey() string {
	return textnorm.Fold(l.TargetSurname)
}

// IsGivenLike reports whether a folded token reads as a given name in surname position.
func (l *Lexicon) IsGivenLike(key string) bool {
	return l.SecondGivenLike.Has(key) || l.GivenCommon.Has(key)
}

// IsSurnameLike reports whether a folded token is lexically recognized as a
// surname: the target itself, a synonym key or a whitelist entry.
func (l *Lexicon) IsSurnameLike(key string) bool {
	if key == "" {
		return false
	}
	if key == l.TargetKey() {
		return true
	}
	if _, ok := l.SurnameSynonyms[key]; ok {
		return true
	}
	return l.Whitelist.Contains(key)
}

// CanonicalSurname maps a folded synonym key to its canonical form.
func (l *Lexicon) CanonicalSurname(key string) (string, bool) {
	c, ok := l.SurnameSynonyms[key]
	return c, ok
}

// ResolveSurname follows synonym chains (A->B, B->C) from a folded key to the
// last canonical form. Cycles stop at the first repeated key.
func (l *Lexicon) ResolveSurname(key string) (string, bool) {
	canonical, ok := l.SurnameSynonyms[key]
	if !ok {
		return "", false
	}
	seen := map[string]struct{}{key: {}}
	for {
		next := textnorm.Fold(canonical)
		if _, loop := seen[next]; loop {
			return canonical, true
		}
		c, ok := l.SurnameSynonyms[next]
		if !ok {
			return canonical, true
		}
		seen[next] = struct{}{}
		canonical = c
	}
}

func (l *Lexicon) clone() *Lexicon {
	c := *l
	return &c
}

// WithWhitelist returns a copy whose whitelist is the given one, or the
// default one extended by it when extend is true.
func (l *Lexicon) WithWhitelist(w *Whitelist, extend bool) *Lexicon {
	c := l.clone()
	if extend {
		c.Whitelist = l.Whitelist.Merge(w)
	} else {
		c.Whitelist = w
	}
	return c
}

// WithSynonyms returns a copy with extra synonyms layered over the current
// ones. Entries in syn win over existing keys; strong variants are added to
// StrongSynonyms.
func (l *Lexicon) WithSynonyms(syn *Synonyms) *Lexicon {
	c := l.clone()
	c.SurnameSynonyms = maps.Clone(l.SurnameSynonyms)
	maps.Copy(c.SurnameSynonyms, syn.Canonical)
	c.StrongSynonyms = maps.Clone(l.StrongSynonyms)
	maps.Copy(c.StrongSynonyms, syn.Strong)
	return c
}

// WithPromotionBlacklist returns a copy whose promotion blacklist also holds extra.
func (l *Lexicon) WithPromotionBlacklist(extra Set) *Lexicon {
	c := l.clone()
	c.PromotionBlacklist = maps.Clone(l.PromotionBlacklist)
	maps.Copy(c.PromotionBlacklist, extra)
	return c
}
