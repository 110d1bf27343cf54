package entries

import "strings"

// List is the ordered, mutable wheel entry list. Duplicates are permitted;
// identity is positional, so two equal strings occupy two distinct segments.
//
// Thread-Safety: none. The list lives on the main loop goroutine; the spin
// machine takes its own snapshot at trigger time, so mid-spin edits never
// reach an active session.
type List struct {
	items []string
}

// NewList builds a list from the given items, trimming whitespace and
// dropping blanks
func NewList(items []string) *List {
	l := &List{}
	l.Replace(items)
	return l
}

// Len returns the number of entries
func (l *List) Len() int {
	return len(l.items)
}

// At returns the entry at index i; empty string when out of range
func (l *List) At(i int) string {
	if i < 0 || i >= len(l.items) {
		return ""
	}
	return l.items[i]
}

// Entries exposes the backing slice for segment mapping and rendering.
// Callers must not mutate the returned slice.
func (l *List) Entries() []string {
	return l.items
}

// Items returns an independent copy for editing surfaces
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Add appends a trimmed entry; blank input is ignored
func (l *List) Add(item string) {
	item = strings.TrimSpace(item)
	if item == "" {
		return
	}
	l.items = append(l.items, item)
}

// Set replaces the entry at index i; blank input and bad indices are ignored
func (l *List) Set(i int, item string) {
	item = strings.TrimSpace(item)
	if item == "" || i < 0 || i >= len(l.items) {
		return
	}
	l.items[i] = item
}

// Remove deletes the entry at index i; bad indices are ignored
func (l *List) Remove(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// Replace swaps the whole list for the given items, trimming whitespace and
// dropping blanks
func (l *List) Replace(items []string) {
	l.items = l.items[:0]
	for _, item := range items {
		l.Add(item)
	}
}
