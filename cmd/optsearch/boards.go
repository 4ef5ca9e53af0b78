package main

import (
	"fmt"

	"github.com/fwojciec/optsearch"
	"github.com/fwojciec/optsearch/search"
)

// Run executes the boards command.
func (c *BoardsCmd) Run(deps *Dependencies) error {
	dataset, err := resolveSource(deps, c.Source).Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optsearch.ErrorMessage(err))
		return err
	}

	if c.Values != "" {
		options := search.ChipOptions(dataset, c.Values)
		if len(options) == 0 {
			fmt.Fprintf(deps.Stdout, "No values for field %q.\n", c.Values)
			return nil
		}
		for _, opt := range options {
			fmt.Fprintln(deps.Stdout, opt.Value)
		}
		return nil
	}

	filters, err := parseFilters(c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optsearch.ErrorMessage(err))
		return err
	}

	res, err := optsearch.Evaluate(dataset, optsearch.Query{
		Filters:       filters,
		Unconstrained: optsearch.MatchAll,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optsearch.ErrorMessage(err))
		return err
	}

	if res.Total == 0 {
		fmt.Fprintln(deps.Stdout, "No matching boards.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, optsearch.FormatRecords(res.Records))
	fmt.Fprintf(deps.Stdout, "%d boards\n", res.Total)
	return nil
}
