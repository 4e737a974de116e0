package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "\xEF\xBB\xBFarkId, full  Name ,status\nark:/1,Juan Zamacona,accept\nark:/2,Pedro\n"

	table, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV error: %v", err)
	}

	expected := []string{"arkId", "full Name", "status"}
	if strings.Join(table.Headers, "|") != strings.Join(expected, "|") {
		t.Errorf("headers = %v, want %v", table.Headers, expected)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if got := table.Rows[0].Get("full Name"); got != "Juan Zamacona" {
		t.Errorf("row 0 name = %q", got)
	}
	if got, ok := table.Rows[1]["status"]; !ok || got != "" {
		t.Errorf("expected padded empty status, got %q (present=%v)", got, ok)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadCSV error: %v", err)
	}
	if len(table.Headers) != 0 || len(table.Rows) != 0 {
		t.Errorf("expected empty table, got %+v", table)
	}
}

func TestRow_Field(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected string
	}{
		{"work preferred", Row{"fullName": "Joan Zamacona", "fullName__work": "Juan Zamacona"}, "Juan Zamacona"},
		{"empty work falls back", Row{"fullName": "Joan Zamacona", "fullName__work": "  "}, "Joan Zamacona"},
		{"missing work falls back", Row{"fullName": "Joan Zamacona"}, "Joan Zamacona"},
		{"missing role", Row{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.Field("fullName"); got != tt.expected {
				t.Errorf("Field(fullName) = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTable_EnsureColumnAfter(t *testing.T) {
	table := &Table{Headers: []string{"arkId", "fullName__work", "status"}}

	table.EnsureColumnAfter("fullName__given", "fullName__work")
	table.EnsureColumnAfter("fullName__surn1", "fullName__given")
	table.EnsureColumnAfter("fullName__given", "status")
	table.EnsureColumnAfter("extra", "missing")

	expected := "arkId|fullName__work|fullName__given|fullName__surn1|status|extra"
	if got := strings.Join(table.Headers, "|"); got != expected {
		t.Errorf("headers = %s, want %s", got, expected)
	}
}

func TestTable_WriteCSVRoundTrip(t *testing.T) {
	table := &Table{
		Headers: []string{"arkId", "fullName", "status"},
		Rows: []Row{
			{"arkId": "ark:/1", "fullName": "Zamacona, Juan", "status": "accept"},
			{"arkId": "ark:/2", "fullName": "Pedro \"Perico\" Ibirro"},
		},
	}

	path := filepath.Join(t.TempDir(), "out", "table.csv")
	if err := table.WriteFile(path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got.Rows))
	}
	if got.Rows[0]["fullName"] != "Zamacona, Juan" {
		t.Errorf("row 0 fullName = %q", got.Rows[0]["fullName"])
	}
	if got.Rows[1]["fullName"] != "Pedro \"Perico\" Ibirro" {
		t.Errorf("row 1 fullName = %q", got.Rows[1]["fullName"])
	}
	if got.Rows[1]["status"] != "" {
		t.Errorf("row 1 status = %q, want empty", got.Rows[1]["status"])
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTSV(&buf, []string{"variant", "count"}, [][]string{
		{"Zamacona", "3"},
		{"Ugal\tda", "1"},
	})
	if err != nil {
		t.Fatalf("WriteTSV error: %v", err)
	}

	expected := "variant\tcount\nZamacona\t3\nUgal da\t1\n"
	if buf.String() != expected {
		t.Errorf("WriteTSV output = %q, want %q", buf.String(), expected)
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, []string{"Juan Zamacona", "", "  ", "Pedro Ibirro "}); err != nil {
		t.Fatalf("WriteLines error: %v", err)
	}
	if buf.String() != "Juan Zamacona\nPedro Ibirro\n" {
		t.Errorf("WriteLines output = %q", buf.String())
	}
}
