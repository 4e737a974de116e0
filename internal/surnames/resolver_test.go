package surnames

import (
	"testing"

	"github.com/adriandez/de-zamacona-data/internal/lexicon"
)

func defaultResolver(t *testing.T) *Resolver {
	t.Helper()
	lex, err := lexicon.Default()
	if err != nil {
		t.Fatalf("lexicon.Default() error: %v", err)
	}
	return NewResolver(lex)
}

func parseResolver(t *testing.T, doc string) *Resolver {
	t.Helper()
	lex, err := lexicon.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("lexicon.Parse() error: %v", err)
	}
	return NewResolver(lex)
}

func TestResolve(t *testing.T) {
	r := defaultResolver(t)

	tests := []struct {
		name      string
		token     string
		class     Class
		canonical string
		distance  int
		reason    string
	}{
		{"synonym", "Heyzaga", ClassOK, "Eizaga", 0, ReasonSynonym},
		{"synonym with accents", "Hordeñana", ClassOK, "Ordeñana", 0, ReasonSynonym},
		{"whitelist", "ugalde", ClassOK, "Ugalde", 0, ReasonWhitelist},
		{"whitelist original form", "IBIRRO", ClassOK, "Ibirro", 0, ReasonWhitelist},
		{"near by one", "Ugalda", ClassNear, "Ugalde", 1, ReasonNear},
		{"near target", "Zamacone", ClassNear, "Zamacona", 1, ReasonNear},
		{"near by two", "Zamaconnaa", ClassNear, "Zamacona", 2, ReasonNear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.token, 1)
			if got.Class != tt.class || got.Canonical != tt.canonical || got.Reason != tt.reason {
				t.Errorf("Resolve(%q) = (%s, %q, %q), want (%s, %q, %q)",
					tt.token, got.Class, got.Canonical, got.Reason, tt.class, tt.canonical, tt.reason)
			}
			if !got.HasDistance || got.Distance != tt.distance {
				t.Errorf("Resolve(%q) distance = (%d, %v), want %d", tt.token, got.Distance, got.HasDistance, tt.distance)
			}
		})
	}
}

func TestResolve_SynonymsAreNotFuzzy(t *testing.T) {
	r := parseResolver(t, "target_surname: Zamacona\nwhitelist: [Etxebarria]\n")

	got := r.Resolve("Echevarria", 4)
	if got.Class != ClassReject {
		t.Errorf("Resolve(Echevarria) class = %s, want %s", got.Class, ClassReject)
	}
	if got.Canonical != "" {
		t.Errorf("Resolve(Echevarria) canonical = %q, want empty", got.Canonical)
	}
	if !got.HasDistance || got.Distance != 3 {
		t.Errorf("Resolve(Echevarria) distance = (%d, %v), want 3", got.Distance, got.HasDistance)
	}
	if got.Count != 4 {
		t.Errorf("Resolve(Echevarria) count = %d, want 4", got.Count)
	}
}

func TestResolve_EmptyWhitelist(t *testing.T) {
	r := parseResolver(t, "target_surname: Zamacona\n")

	got := r.Resolve("Garcia", 1)
	if got.Class != ClassReject || got.Reason != ReasonNoMatch {
		t.Errorf("Resolve(Garcia) = (%s, %q), want (%s, %q)", got.Class, got.Reason, ClassReject, ReasonNoMatch)
	}
	if got.HasDistance {
		t.Errorf("Resolve(Garcia) distance should be unset, got %d", got.Distance)
	}
}

func TestResolve_TieKeepsWhitelistOrder(t *testing.T) {
	tests := []struct {
		whitelist string
		expected  string
	}{
		{"[Sarria, Barria]", "Sarria"},
		{"[Barria, Sarria]", "Barria"},
	}

	for _, tt := range tests {
		r := parseResolver(t, "target_surname: Zamacona\nwhitelist: "+tt.whitelist+"\n")
		got := r.Resolve("Parria", 1)
		if got.Class != ClassNear || got.Canonical != tt.expected {
			t.Errorf("whitelist %s: Resolve(Parria) = (%s, %q), want (%s, %q)",
				tt.whitelist, got.Class, got.Canonical, ClassNear, tt.expected)
		}
	}
}

func TestResolve_Threshold(t *testing.T) {
	r := defaultResolver(t)

	tokens := []string{"Zamacona", "Zamacone", "Zamaconnaa", "Zamaconnnaaa", "Quintanilla", "Ugald", "Ugaldeta", "Pedro"}
	for _, tok := range tokens {
		got := r.Resolve(tok, 1)
		switch got.Class {
		case ClassNear:
			if got.Distance < 1 || got.Distance > 2 {
				t.Errorf("Resolve(%q) is NEAR at distance %d", tok, got.Distance)
			}
		case ClassReject:
			if got.Distance <= 2 {
				t.Errorf("Resolve(%q) is REJECT at distance %d", tok, got.Distance)
			}
		}
	}
}

func TestResolve_LooksLikeGiven(t *testing.T) {
	r := defaultResolver(t)

	if got := r.Resolve("Pedro", 1); !got.LooksLikeGiven {
		t.Error("expected Pedro to look like a given name")
	}
	if got := r.Resolve("Ugalde", 1); got.LooksLikeGiven {
		t.Error("did not expect Ugalde to look like a given name")
	}
}

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{" Ordeñana ", "Ordenana"},
		{"D'Arcy", "D'Arcy"},
		{"Ruiz-Gomez", "Ruiz-Gomez"},
		{"Zamacona (?)", "Zamacona"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeToken(tt.input); got != tt.expected {
			t.Errorf("NormalizeToken(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestAudit(t *testing.T) {
	r := defaultResolver(t)

	cells := []string{
		"Zamacona",
		"Zamacona; Ugalda",
		"Quintanilla",
		"",
		"Heyzaga;Zamacona",
		"Pedro",
	}

	results := r.Audit(cells)
	if len(results) != 5 {
		t.Fatalf("expected 5 distinct tokens, got %d: %+v", len(results), results)
	}

	if results[0].Variant != "Zamacona" || results[0].Count != 3 {
		t.Errorf("expected Zamacona x3 first, got %s x%d", results[0].Variant, results[0].Count)
	}
	if results[1].Variant != "Heyzaga" {
		t.Errorf("expected Heyzaga second, got %s", results[1].Variant)
	}
	if results[2].Variant != "Ugalda" || results[2].Class != ClassNear {
		t.Errorf("expected Ugalda NEAR third, got %s %s", results[2].Variant, results[2].Class)
	}

	rep := NewReport(results)
	if len(rep.OK) != 2 {
		t.Errorf("expected 2 OK, got %d", len(rep.OK))
	}
	if len(rep.Near)+len(rep.Reject) != 3 {
		t.Errorf("expected 3 non-OK, got %d", len(rep.Near)+len(rep.Reject))
	}
	if len(rep.GivenLike) != 1 || rep.GivenLike[0].Variant != "Pedro" {
		t.Errorf("expected Pedro as the only given-like token, got %+v", rep.GivenLike)
	}
	if len(rep.All) != len(results) {
		t.Errorf("expected All to hold every result")
	}
}
