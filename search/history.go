package search

import "github.com/fwojciec/optsearch"

// Compile-time interface verification.
var _ optsearch.HistoryService = (*History)(nil)

// History is an in-memory optsearch.HistoryService with browser history
// semantics: a current position in an entry list, Replace overwriting in
// place, and Push discarding forward entries. Entries live only for the
// session.
type History struct {
	entries []optsearch.Entry
	pos     int
}

// NewHistory creates a History holding a single zero entry, matching a
// freshly loaded page.
func NewHistory() *History {
	return &History{entries: []optsearch.Entry{{}}}
}

// Replace overwrites the current entry in place. Forward entries survive,
// as they do under the browser's replaceState.
func (h *History) Replace(e optsearch.Entry) {
	h.entries[h.pos] = e
}

// Push appends a new entry after the current one, discarding any forward
// entries.
func (h *History) Push(e optsearch.Entry) {
	h.entries = append(h.entries[:h.pos+1], e)
	h.pos++
}

// Back moves to and returns the previous entry.
func (h *History) Back() (optsearch.Entry, bool) {
	if h.pos == 0 {
		return optsearch.Entry{}, false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Forward moves to and returns the next entry.
func (h *History) Forward() (optsearch.Entry, bool) {
	if h.pos == len(h.entries)-1 {
		return optsearch.Entry{}, false
	}
	h.pos++
	return h.entries[h.pos], true
}

// Current returns the active entry.
func (h *History) Current() optsearch.Entry {
	return h.entries[h.pos]
}
