package search

import (
	"context"

	"github.com/fwojciec/optsearch"
)

// Config assembles a Controller. Searcher is required; everything else has
// a sensible zero value. PageSize <= 0 disables pagination, which is how
// the board catalog runs.
type Config struct {
	Searcher      optsearch.Searcher
	Renderer      optsearch.Renderer
	History       optsearch.HistoryService
	PageSize      int
	Unconstrained optsearch.Unconstrained
}

// Controller owns the mutable state of one search page: the current term,
// the filter state and the pagination offset. Every action mutates that
// state, re-evaluates the query from scratch and returns a fresh View, so
// the display can never drift from the state that produced it.
type Controller struct {
	searcher      optsearch.Searcher
	renderer      optsearch.Renderer
	history       optsearch.HistoryService
	filters       *optsearch.FilterState
	pager         *optsearch.Pager
	unconstrained optsearch.Unconstrained
	term          string
}

// NewController validates cfg and returns a Controller at its initial
// state: empty term, no filters, first page.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Searcher == nil {
		return nil, optsearch.Errorf(optsearch.EINVALID, "searcher required")
	}
	c := &Controller{
		searcher:      cfg.Searcher,
		renderer:      cfg.Renderer,
		history:       cfg.History,
		filters:       optsearch.NewFilterState(),
		unconstrained: cfg.Unconstrained,
	}
	if cfg.PageSize > 0 {
		c.pager = &optsearch.Pager{PageSize: cfg.PageSize}
	}
	if c.history == nil {
		c.history = NewHistory()
	}
	return c, nil
}

// View is the complete render input for one evaluation. Fragments is only
// populated when the Controller has a Renderer.
type View struct {
	Term      string
	Records   []optsearch.Record
	Fragments []string
	Total     int
	Page      int
	Pages     int
	CanPrev   bool
	CanNext   bool
}

// Term returns the current search term.
func (c *Controller) Term() string {
	return c.term
}

// Filters returns a snapshot of the current filter state.
func (c *Controller) Filters() *optsearch.FilterState {
	return c.filters.Clone()
}

// SetTerm installs a new search term and returns to the first page.
func (c *Controller) SetTerm(ctx context.Context, term string) (*View, error) {
	c.term = term
	if c.pager != nil {
		c.pager.Reset()
	}
	return c.refresh(ctx, true)
}

// HashChange handles a deep-link fragment: the fragment is sanitized into
// an anchored exact-match term and the view returns to the first page.
func (c *Controller) HashChange(ctx context.Context, fragment string) (*View, error) {
	return c.SetTerm(ctx, optsearch.SanitizeFragment(fragment))
}

// ApplyFilter replaces the accepted value set for one filter key. The
// pagination offset is left where it is, matching the original page, so a
// filter change that shrinks the result set can leave the view past the
// last page until the user navigates back.
func (c *Controller) ApplyFilter(ctx context.Context, key string, values []string) (*View, error) {
	c.filters.Apply(key, values)
	return c.refresh(ctx, true)
}

// NextPage advances one page. Whether the affordance should have been
// enabled is the previous View's CanNext; the controller itself does not
// second-guess it.
func (c *Controller) NextPage(ctx context.Context) (*View, error) {
	if c.pager != nil {
		c.pager.Next()
	}
	return c.refresh(ctx, true)
}

// PrevPage moves back one page, never below the first.
func (c *Controller) PrevPage(ctx context.Context) (*View, error) {
	if c.pager != nil {
		c.pager.Prev()
	}
	return c.refresh(ctx, true)
}

// Back restores the previous history entry and re-runs the query without
// recording a new entry. At the start of history it re-renders the current
// state unchanged.
func (c *Controller) Back(ctx context.Context) (*View, error) {
	if e, ok := c.history.Back(); ok {
		return c.Restore(ctx, e)
	}
	return c.refresh(ctx, false)
}

// Forward is the counterpart of Back.
func (c *Controller) Forward(ctx context.Context) (*View, error) {
	if e, ok := c.history.Forward(); ok {
		return c.Restore(ctx, e)
	}
	return c.refresh(ctx, false)
}

// Restore installs a history entry's exact term and offset and re-runs the
// query without recording a new entry.
func (c *Controller) Restore(ctx context.Context, e optsearch.Entry) (*View, error) {
	c.term = e.Term
	if c.pager != nil {
		c.pager.Offset = e.Offset
	}
	return c.refresh(ctx, false)
}

// Refresh re-evaluates the current state without changing it, for the
// initial render.
func (c *Controller) Refresh(ctx context.Context) (*View, error) {
	return c.refresh(ctx, true)
}

func (c *Controller) refresh(ctx context.Context, record bool) (*View, error) {
	q := optsearch.Query{
		Term:          c.term,
		Filters:       c.filters,
		Unconstrained: c.unconstrained,
	}
	if c.pager != nil {
		q.Offset = c.pager.Offset
		q.PageSize = c.pager.PageSize
	}

	res, err := c.searcher.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	if record {
		c.history.Replace(optsearch.Entry{Term: c.term, Offset: q.Offset})
	}

	view := &View{
		Term:    c.term,
		Records: res.Records,
		Total:   res.Total,
		Page:    1,
		Pages:   1,
	}
	if c.pager != nil {
		view.Page = c.pager.Page()
		view.Pages = c.pager.Pages(res.Total)
		view.CanPrev = c.pager.CanPrev()
		view.CanNext = c.pager.CanNext(res.Total)
	}
	if c.renderer != nil {
		view.Fragments = make([]string, 0, len(res.Records))
		for _, r := range res.Records {
			fragment, err := c.renderer.Render(r)
			if err != nil {
				return nil, err
			}
			view.Fragments = append(view.Fragments, fragment)
		}
	}
	return view, nil
}
