package textnorm

import "testing"

func TestRemoveDiacritics(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Zamacona", "Zamacona"},
		{"Ordeñana", "Ordenana"},
		{"çamacona", "camacona"},
		{"Bartolomé", "Bartolome"},
		{"Asunción", "Asuncion"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := RemoveDiacritics(tt.input)
			if result != tt.expected {
				t.Errorf("RemoveDiacritics(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Ordeñana ", "ordenana"},
		{"ZAMACONA", "zamacona"},
		{"José", "jose"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := Fold(tt.input); result != tt.expected {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCleanSpaces(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Juan   de\tZamacona ", "Juan de Zamacona"},
		{"Juan_Zamacona", "Juan Zamacona"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if result := CleanSpaces(tt.input); result != tt.expected {
			t.Errorf("CleanSpaces(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"zamacona", "Zamacona", 0},
		{"samacona", "zamacona", 1},
		{"zamacola", "zamacona", 1},
		{"zamagona", "zamacona", 1},
		{"echevarria", "etxebarria", 3},
		{"", "abc", 3},
	}

	for _, tt := range tests {
		if result := EditDistance(tt.a, tt.b); result != tt.expected {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"juan", "Juan"},
		{"MARIA ANTONIA", "Maria Antonia"},
		{"ordeñana", "Ordeñana"},
		{"  ", ""},
	}

	for _, tt := range tests {
		if result := TitleCase(tt.input); result != tt.expected {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestFirstVariant(t *testing.T) {
	if got := FirstVariant(" Juan Zamacona ; Joan Samacona"); got != "Juan Zamacona" {
		t.Errorf("FirstVariant = %q, want %q", got, "Juan Zamacona")
	}
	if got := FirstVariant(""); got != "" {
		t.Errorf("FirstVariant of empty = %q, want empty", got)
	}
}

func TestVariants(t *testing.T) {
	got := Variants("Juan; ; Pedro ;")
	if len(got) != 2 || got[0] != "Juan" || got[1] != "Pedro" {
		t.Errorf("Variants = %v, want [Juan Pedro]", got)
	}
}

func TestContainsWord(t *testing.T) {
	if !ContainsWord("juan zamacona ibirro", "zamacona") {
		t.Error("expected whole word match")
	}
	if ContainsWord("juan zamaconas", "zamacona") {
		t.Error("did not expect partial word match")
	}
	if ContainsWord("", "zamacona") {
		t.Error("did not expect match on empty text")
	}
}

func TestLettersOnly(t *testing.T) {
	if got := LettersOnly("Juan-José  Zamácona, 1788"); got != "juan jose zamacona" {
		t.Errorf("LettersOnly = %q", got)
	}
}
