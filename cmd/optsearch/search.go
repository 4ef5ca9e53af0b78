package main

import (
	"fmt"

	"github.com/fwojciec/optsearch"
	"github.com/fwojciec/optsearch/html"
	"github.com/fwojciec/optsearch/search"
	optslog "github.com/fwojciec/optsearch/slog"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	dataset, err := resolveSource(deps, c.Source).Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optsearch.ErrorMessage(err))
		return err
	}

	var searcher optsearch.Searcher = search.NewEngine(dataset)
	if deps.Logger != nil {
		searcher = optslog.NewLoggingSearcher(searcher, deps.Logger)
	}

	filters, err := parseFilters(c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optsearch.ErrorMessage(err))
		return err
	}

	term := c.Term
	if c.Hash {
		term = optsearch.SanitizeFragment(term)
	}

	unconstrained := optsearch.MatchNone
	if c.All {
		unconstrained = optsearch.MatchAll
	}

	res, err := searcher.Search(deps.Ctx, optsearch.Query{
		Term:          term,
		Filters:       filters,
		Offset:        c.Offset,
		PageSize:      c.PageSize,
		Unconstrained: unconstrained,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optsearch.ErrorMessage(err))
		return err
	}

	if res.Total == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}

	if c.HTML {
		renderer := html.NewRenderer()
		for _, r := range res.Records {
			fragment, err := renderer.Render(r)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", optsearch.ErrorMessage(err))
				return err
			}
			fmt.Fprintln(deps.Stdout, fragment)
		}
	} else {
		fmt.Fprintln(deps.Stdout, optsearch.FormatRecords(res.Records))
	}

	fmt.Fprintf(deps.Stdout, "%d of %d matches\n", len(res.Records), res.Total)
	return nil
}
