package classify

import (
	"testing"

	"github.com/adriandez/de-zamacona-data/internal/lexicon"
)

func defaultLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.Default()
	if err != nil {
		t.Fatalf("lexicon.Default() error: %v", err)
	}
	return lex
}

func TestClassify(t *testing.T) {
	c := New(defaultLexicon(t))

	tests := []struct {
		name   string
		fields []string
		tier   Tier
		reason string
	}{
		{"blacklisted near match", []string{"Juan Zamacola"}, TierReject, ReasonToken},
		{"target surname", []string{"Francisco Zamacona"}, TierAccept, ""},
		{"prefix family", []string{"Pedro Camarena"}, TierReject, "regex:cama*"},
		{"near target with target present", []string{"Pedro Zamarripa Zamacona"}, TierReject, "regex:zam*!=zamacona"},
		{"generic pattern without target", []string{"Pedro Zacarias"}, TierReject, ReasonRegexMisc},
		{"generic pattern with target", []string{"Pedro Zacarias Zamacona"}, TierAccept, ReasonRegexMisc},
		{"phrase", []string{"Domingo Gar Zamacona"}, TierReject, ReasonPhrase},
		{"no target", []string{"Pedro Ibirro"}, TierReview, ""},
		{"target in another field", []string{"Pedro Ibirro", "", "Juan Zamacona"}, TierAccept, ""},
		{"token wins over patterns", []string{"Juan Zamalloa"}, TierReject, ReasonToken},
		{"prefix wins over near target", []string{"Camarena Zamarripa"}, TierReject, "regex:cama*"},
		{"accents folded", []string{"Juan Zamácona"}, TierAccept, ""},
		{"hyphenated target", []string{"Juan Ibirro-Zamacona"}, TierAccept, ""},
		{"no fields", nil, TierReview, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.fields)
			if got.Tier != tt.tier {
				t.Errorf("Classify(%q) tier = %s, want %s", tt.fields, got.Tier, tt.tier)
			}
			if got.Reason != tt.reason {
				t.Errorf("Classify(%q) reason = %q, want %q", tt.fields, got.Reason, tt.reason)
			}
		})
	}
}

func TestClassify_Flags(t *testing.T) {
	c := New(defaultLexicon(t))

	tests := []struct {
		fields    []string
		blacklist int
		review    int
	}{
		{[]string{"Juan Zamacola"}, 1, 0},
		{[]string{"Pedro Ibirro"}, 0, 1},
		{[]string{"Juan Zamacona"}, 0, 0},
	}

	for _, tt := range tests {
		got := c.Classify(tt.fields)
		if got.BlacklistFlag != tt.blacklist || got.ReviewFlag != tt.review {
			t.Errorf("Classify(%q) flags = (%d, %d), want (%d, %d)",
				tt.fields, got.BlacklistFlag, got.ReviewFlag, tt.blacklist, tt.review)
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
		ok       bool
	}{
		{"accept", Status{Tier: TierAccept}, true},
		{"green", Status{Tier: TierAccept}, true},
		{" Yellow ", Status{Tier: TierReview}, true},
		{"gray", Status{Tier: TierReject}, true},
		{"review:ambiguous", Status{Tier: TierReview, Tag: TagAmbiguous}, true},
		{"yellow:ambiguous", Status{Tier: TierReview, Tag: TagAmbiguous}, true},
		{"", Status{}, false},
		{"purple", Status{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseStatus(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParseStatus(%q) = (%+v, %v), want (%+v, %v)", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestStatus_String(t *testing.T) {
	if got := (Status{Tier: TierReview, Tag: TagAmbiguous}).String(); got != "review:ambiguous" {
		t.Errorf("String() = %q, want %q", got, "review:ambiguous")
	}
	if got := (Status{Tier: TierAccept}).String(); got != "accept" {
		t.Errorf("String() = %q, want %q", got, "accept")
	}
	if got := TierReject.Color(); got != "gray" {
		t.Errorf("Color() = %q, want %q", got, "gray")
	}
}

func TestMergePrior(t *testing.T) {
	accept := Status{Tier: TierAccept}
	review := Status{Tier: TierReview}
	reject := Status{Tier: TierReject}

	tests := []struct {
		name     string
		current  Status
		prior    Status
		hasPrior bool
		expected Status
	}{
		{"no prior", reject, accept, false, reject},
		{"prior higher", reject, accept, true, accept},
		{"prior lower", accept, reject, true, accept},
		{"equal keeps current", review, Status{Tier: TierReview, Tag: TagAmbiguous}, true, review},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergePrior(tt.current, tt.prior, tt.hasPrior); got != tt.expected {
				t.Errorf("MergePrior() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func newTestPromoter(t *testing.T) *Promoter {
	t.Helper()
	lex := defaultLexicon(t).WithSynonyms(&lexicon.Synonyms{
		Canonical: map[string]string{"zamakona": "Zamacona"},
		Strong:    lexicon.NewSet("zamakona"),
		Weak:      lexicon.NewSet(),
	})
	return NewPromoter(lex)
}

func TestPromote(t *testing.T) {
	p := newTestPromoter(t)

	tests := []struct {
		name     string
		current  Status
		fullName string
		expected Status
		action   PromotionAction
		reason   string
	}{
		{"accept preserved", Status{Tier: TierAccept}, "Juan Zamacola",
			Status{Tier: TierAccept}, ActionPreserve, ReasonPreserved},
		{"exact target", Status{Tier: TierReview}, "Juan Zamacona",
			Status{Tier: TierAccept}, ActionPromote, ReasonForcedExact},
		{"strong synonym", Status{Tier: TierReject}, "Juan Zamakona",
			Status{Tier: TierAccept}, ActionPromote, ReasonForcedStrongSynonym},
		{"blacklist and target", Status{Tier: TierReject}, "Juan Zamacona-Zamacola",
			Status{Tier: TierReview, Tag: TagAmbiguous}, ActionAmbiguous, ReasonAmbiguousExact},
		{"blacklist and strong synonym", Status{Tier: TierReview}, "Juan Zamakona Zamora",
			Status{Tier: TierReview, Tag: TagAmbiguous}, ActionAmbiguous, ReasonAmbiguousSynonym},
		{"blacklist alone", Status{Tier: TierReject}, "Juan Zamora",
			Status{Tier: TierReject}, ActionExcluded, ReasonBlacklisted},
		{"nothing", Status{Tier: TierReview}, "Juan Ibirro",
			Status{Tier: TierReview}, ActionNone, ReasonNoMatch},
		{"target inside a longer word", Status{Tier: TierReview}, "Juan Zamaconas",
			Status{Tier: TierReview}, ActionNone, ReasonNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Promote(tt.current, tt.fullName)
			if got.Status != tt.expected {
				t.Errorf("Promote(%v, %q) status = %v, want %v", tt.current, tt.fullName, got.Status, tt.expected)
			}
			if got.Action != tt.action {
				t.Errorf("Promote(%v, %q) action = %q, want %q", tt.current, tt.fullName, got.Action, tt.action)
			}
			if got.Reason != tt.reason {
				t.Errorf("Promote(%v, %q) reason = %q, want %q", tt.current, tt.fullName, got.Reason, tt.reason)
			}
		})
	}
}

func TestPromote_IdempotentAndMonotonic(t *testing.T) {
	p := newTestPromoter(t)

	names := []string{
		"Juan Zamacona",
		"Juan Zamakona",
		"Juan Zamacona Zamacola",
		"Juan Zamakona Samacona",
		"Juan Zamora",
		"Juan Ibirro",
		"",
	}
	starts := []Status{
		{Tier: TierReject},
		{Tier: TierReview},
		{Tier: TierReview, Tag: TagAmbiguous},
		{Tier: TierAccept},
	}

	for _, name := range names {
		for _, start := range starts {
			first := p.Promote(start, name).Status
			second := p.Promote(first, name).Status
			if first != second {
				t.Errorf("Promote not idempotent for (%v, %q): %v -> %v", start, name, first, second)
			}
			if first.Tier < start.Tier {
				t.Errorf("Promote lowered (%v, %q) to %v", start, name, first)
			}
		}
	}
}
