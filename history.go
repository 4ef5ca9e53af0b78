package optsearch

// Entry is one history state: the exact query restored by back/forward
// navigation without re-deriving anything from the URL. The JSON shape
// matches the browser history state object of the original page.
type Entry struct {
	Term   string `json:"value"`
	Offset int    `json:"searchOffset"`
}

// HistoryService mirrors the browser history contract the search page
// relies on: every search replaces the current entry, and pop events
// restore a prior entry without pushing a new one.
type HistoryService interface {
	// Replace overwrites the current entry in place.
	Replace(e Entry)

	// Push appends a new entry after the current one, discarding any
	// forward entries.
	Push(e Entry)

	// Back moves to and returns the previous entry.
	// Returns false at the start of history.
	Back() (Entry, bool)

	// Forward moves to and returns the next entry.
	// Returns false at the end of history.
	Forward() (Entry, bool)

	// Current returns the active entry.
	Current() Entry
}
