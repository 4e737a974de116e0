// Package textnorm holds the string primitives shared by every name-cleaning
// stage: diacritic folding, whitespace cleanup, edit distance and
// title-casing. Nothing here knows about lexical tables.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// RemoveDiacritics removes diacritical marks from a string (e.g., "Ordeñana" -> "Ordenana").
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// Fold returns the comparison key of a token: trimmed, lower case, no diacritics.
func Fold(s string) string {
	return strings.ToLower(RemoveDiacritics(strings.TrimSpace(s)))
}

// CleanSpaces turns underscores into spaces and collapses runs of whitespace.
func CleanSpaces(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// EditDistance is the case-insensitive Levenshtein distance between a and b.
func EditDistance(a, b string) int {
	return levenshtein.ComputeDistance(strings.ToLower(a), strings.ToLower(b))
}

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
func TitleCase(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	// A Caser keeps state, so one is built per call.
	return cases.Title(language.Und).String(s)
}

// Variants splits a multi-valued name cell on ';' and drops empty entries.
func Variants(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// FirstVariant returns the first ';'-separated value of a cell, trimmed.
// Only this variant is ever split into given name and surnames.
func FirstVariant(cell string) string {
	first, _, _ := strings.Cut(cell, ";")
	return strings.TrimSpace(first)
}

// ContainsWord reports whether the folded word appears as a whole
// space-delimited word in the folded text.
func ContainsWord(text, word string) bool {
	if text == "" || word == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+word+" ")
}

var nonLetterRe = regexp.MustCompile(`[^a-z\s]`)

// LettersOnly folds s and replaces anything that is not an ASCII letter with a
// space, producing the form used for whole-word searches over full names.
func LettersOnly(s string) string {
	s = nonLetterRe.ReplaceAllString(Fold(s), " ")
	return CleanSpaces(s)
}
