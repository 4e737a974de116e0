package lexicon

import (
	"github.com/adriandez/de-zamacona-data/internal/textnorm"
)

// WhitelistEntry is one canonical surname: its folded key and the form to report.
type WhitelistEntry struct {
	Key      string
	Original string
}

// Whitelist is the ordered set of canonical surnames. Iteration order is the
// insertion order, which makes nearest-match tie-breaking reproducible.
type Whitelist struct {
	entries []WhitelistEntry
	index   map[string]int
}

// NewWhitelist builds a whitelist keeping the first original form per folded key.
func NewWhitelist(names []string) *Whitelist {
	w := &Whitelist{index: make(map[string]int, len(names))}
	for _, name := range names {
		w.add(name)
	}
	return w
}

func (w *Whitelist) add(name string) {
	orig := textnorm.CleanSpaces(name)
	key := textnorm.Fold(orig)
	if key == "" {
		return
	}
	if _, ok := w.index[key]; ok {
		return
	}
	w.index[key] = len(w.entries)
	w.entries = append(w.entries, WhitelistEntry{Key: key, Original: orig})
}

// Len returns the number of canonical surnames.
func (w *Whitelist) Len() int {
	if w == nil {
		return 0
	}
	return len(w.entries)
}

// Contains reports whether the folded key is a canonical surname.
func (w *Whitelist) Contains(key string) bool {
	if w == nil {
		return false
	}
	_, ok := w.index[key]
	return ok
}

// Original returns the stored original-case form for a folded key.
func (w *Whitelist) Original(key string) (string, bool) {
	if w == nil {
		return "", false
	}
	i, ok := w.index[key]
	if !ok {
		return "", false
	}
	return w.entries[i].Original, true
}

// Entries returns the entries in whitelist order. The slice must not be modified.
func (w *Whitelist) Entries() []WhitelistEntry {
	if w == nil {
		return nil
	}
	return w.entries
}

// Merge returns a new whitelist with w's entries followed by other's new ones.
func (w *Whitelist) Merge(other *Whitelist) *Whitelist {
	out := NewWhitelist(nil)
	for _, e := range w.Entries() {
		out.add(e.Original)
	}
	for _, e := range other.Entries() {
		out.add(e.Original)
	}
	return out
}
