package main

import (
	"fmt"

	"github.com/fwojciec/optsearch"
	"github.com/fwojciec/optsearch/bubbletea"
	"github.com/fwojciec/optsearch/search"
	optslog "github.com/fwojciec/optsearch/slog"
)

// Run executes the tui command.
func (c *TuiCmd) Run(deps *Dependencies) error {
	dataset, err := resolveSource(deps, c.Source).Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optsearch.ErrorMessage(err))
		return err
	}

	var searcher optsearch.Searcher = search.NewEngine(dataset)
	if deps.Logger != nil {
		searcher = optslog.NewLoggingSearcher(searcher, deps.Logger)
	}

	unconstrained := optsearch.MatchNone
	pageSize := optsearch.DefaultPageSize
	if c.Catalog {
		unconstrained = optsearch.MatchAll
		pageSize = 0
	}

	controller, err := search.NewController(search.Config{
		Searcher:      searcher,
		PageSize:      pageSize,
		Unconstrained: unconstrained,
	})
	if err != nil {
		return err
	}

	var configs []optsearch.ChipConfig
	for _, key := range c.Chip {
		options := search.ChipOptions(dataset, key)
		if len(options) == 0 {
			fmt.Fprintf(deps.Stderr, "warning: no values for field %q, chip skipped\n", key)
			continue
		}
		configs = append(configs, optsearch.ChipConfig{Key: key, Options: options})
	}

	return bubbletea.Run(controller, configs)
}
