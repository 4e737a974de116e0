package lexicon

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/textnorm"
)

// Synonyms is a parsed surname synonym file.
type Synonyms struct {
	// Canonical maps folded variants to canonical surnames.
	Canonical map[string]string
	// Strong holds folded variants marked "strong" (trusted for promotion).
	Strong Set
	// Weak holds folded variants marked "weak".
	Weak Set
}

// LoadWhitelist reads one canonical surname per line. Blank lines and lines
// starting with '#' are skipped.
func LoadWhitelist(r io.Reader) (*Whitelist, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read whitelist: %w", err)
	}
	return NewWhitelist(lines), nil
}

// LoadList reads a plain token list (one per line) into a folded Set.
func LoadList(r io.Reader) (Set, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read list: %w", err)
	}
	return NewSet(lines...), nil
}

// LoadSynonyms reads "variant,canonical[,strength]" lines.
//
// Rows are CSV records, so a quoted cell may contain a comma. A header row
// starting with "variant" is skipped, '#' starts a comment anywhere on a line,
// and chained rows "A,B,C" produce A->B and B->C. A last cell equal to
// "strong" or "weak" is the strength of every variant on the row.
func LoadSynonyms(r io.Reader) (*Synonyms, error) {
	syn := &Synonyms{
		Canonical: make(map[string]string),
		Strong:    make(Set),
		Weak:      make(Set),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if before, _, found := strings.Cut(line, "#"); found {
			line = before
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cr := csv.NewReader(strings.NewReader(line))
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		cells, err := cr.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to parse synonyms at line %d: %w", lineNo, err)
		}

		var parts []string
		for _, p := range cells {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 && strings.EqualFold(parts[0], "variant") {
			continue
		}

		strength := ""
		if n := len(parts); n > 0 {
			if last := strings.ToLower(parts[n-1]); last == "strong" || last == "weak" {
				strength = last
				parts = parts[:n-1]
			}
		}
		if len(parts) < 2 {
			skipped++
			continue
		}

		for i := 0; i+1 < len(parts); i++ {
			variant := textnorm.Fold(parts[i])
			if variant == "" {
				continue
			}
			syn.Canonical[variant] = parts[i+1]
			switch strength {
			case "strong":
				syn.Strong[variant] = struct{}{}
			case "weak":
				syn.Weak[variant] = struct{}{}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read synonyms at line %d: %w", lineNo, err)
	}
	if skipped > 0 {
		log.Printf("WARNING: synonyms: skipped %d lines without a variant,canonical pair", skipped)
	}
	return syn, nil
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, scanner.Err()
}

// LoadDir layers the deployment files found in dir over base:
// whitelist_surnames.txt extends the whitelist, surname_synonyms.csv adds
// synonyms (and strong variants), reject_surnames.txt extends the promotion
// blacklist. Missing files are skipped.
func LoadDir(base *Lexicon, dir string) (*Lexicon, error) {
	lex := base
	if dir == "" {
		return lex, nil
	}

	if f, err := openOptional(filepath.Join(dir, constants.WhitelistFile)); err != nil {
		return nil, err
	} else if f != nil {
		w, err := LoadWhitelist(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		lex = lex.WithWhitelist(w, true)
	}

	if f, err := openOptional(filepath.Join(dir, constants.SynonymsFile)); err != nil {
		return nil, err
	} else if f != nil {
		syn, err := LoadSynonyms(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		lex = lex.WithSynonyms(syn)
	}

	if f, err := openOptional(filepath.Join(dir, constants.RejectSurnamesFile)); err != nil {
		return nil, err
	} else if f != nil {
		set, err := LoadList(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		lex = lex.WithPromotionBlacklist(set)
	}

	return lex, nil
}

func openOptional(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}
