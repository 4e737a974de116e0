package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// WriteTSV writes a tab-separated log with a header row. Tabs and newlines
// inside values are replaced by spaces so every record stays on one line.
func WriteTSV(w io.Writer, header []string, rows [][]string) error {
	tw := csv.NewWriter(w)
	tw.Comma = '\t'
	if err := tw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		clean := make([]string, len(row))
		for i, v := range row {
			clean[i] = tsvReplacer.Replace(v)
		}
		if err := tw.Write(clean); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	tw.Flush()
	return tw.Error()
}

var tsvReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// WriteTSVFile writes a tab-separated log to path.
func WriteTSVFile(path string, header []string, rows [][]string) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteTSV(w, header, rows)
	})
}

// WriteLines writes one value per line, skipping empty ones.
func WriteLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if l = strings.TrimSpace(l); l == "" {
			continue
		}
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteLinesFile writes one value per line to path.
func WriteLinesFile(path string, lines []string) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteLines(w, lines)
	})
}
