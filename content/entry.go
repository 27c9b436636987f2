package content

import (
	"fmt"
	"slices"
)

type (
	// Entry is one directory discovered under a library root.
	Entry struct {
		Name    string // final path segment
		Path    string // location of the directory
		related []int  // indices into the owning Library
	}

	// Library owns every Entry of one run. Relations between entries are
	// stored as indices into entries.
	Library struct {
		Root    string
		entries []Entry
	}
)

// HasLibrarySuffix reports whether the entry's raw name carries the marker.
func (e Entry) HasLibrarySuffix() bool {
	return HasLibrarySuffix(e.Name)
}

// Key returns the canonical key of the entry.
func (e Entry) Key() string {
	return Normalize(e.Name)
}

// NewLibrary returns an empty library rooted at root.
func NewLibrary(root string) *Library {
	return &Library{Root: root}
}

// Add appends an entry and returns its index.
func (l *Library) Add(name, path string) int {
	l.entries = append(l.entries, Entry{Name: name, Path: path})
	return len(l.entries) - 1
}

func (l *Library) Len() int {
	return len(l.entries)
}

// Entry returns a copy of the entry at index i. Out-of-range indices yield
// the zero Entry.
func (l *Library) Entry(i int) Entry {
	if i < 0 || i >= len(l.entries) {
		return Entry{}
	}
	e := l.entries[i]
	e.related = slices.Clone(e.related)
	return e
}

// All yields every entry with its index in listing order.
func (l *Library) All(yield func(int, Entry) bool) {
	for i := range l.entries {
		if !yield(i, l.Entry(i)) {
			return
		}
	}
}

// Related returns the indices linked to entry i, in link order.
func (l *Library) Related(i int) []int {
	if i < 0 || i >= len(l.entries) {
		return nil
	}
	return slices.Clone(l.entries[i].related)
}

// RelatedNames returns the names of the entries linked to entry i.
func (l *Library) RelatedNames(i int) []string {
	related := l.Related(i)
	names := make([]string, 0, len(related))
	for _, j := range related {
		names = append(names, l.entries[j].Name)
	}
	return names
}

// IsLinked reports whether i and j are related.
func (l *Library) IsLinked(i, j int) bool {
	if i < 0 || i >= len(l.entries) {
		return false
	}
	return slices.Contains(l.entries[i].related, j)
}

// Link relates entries i and j in both directions. Linking an entry to
// itself or linking an already linked pair is a no-op.
func (l *Library) Link(i, j int) error {
	if i < 0 || i >= len(l.entries) || j < 0 || j >= len(l.entries) {
		return fmt.Errorf("link %d-%d: %w", i, j, ErrIndexOutOfRange)
	}
	if i == j {
		return nil
	}
	if !slices.Contains(l.entries[i].related, j) {
		l.entries[i].related = append(l.entries[i].related, j)
	}
	if !slices.Contains(l.entries[j].related, i) {
		l.entries[j].related = append(l.entries[j].related, i)
	}
	return nil
}

// WithLibrarySuffix returns the indices of entries whose raw name ends with
// LibrarySuffix, in listing order.
func (l *Library) WithLibrarySuffix() []int {
	var out []int
	for i, e := range l.entries {
		if e.HasLibrarySuffix() {
			out = append(out, i)
		}
	}
	return out
}
