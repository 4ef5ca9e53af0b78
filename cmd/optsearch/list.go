package main

import (
	"fmt"

	"github.com/fwojciec/optsearch"
	"github.com/fwojciec/optsearch/sqlite"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	names, err := sqlite.NewDatasetService(deps.DB, "").Names(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optsearch.ErrorMessage(err))
		return err
	}

	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No databases imported. Use 'optsearch import' to add one.")
		return nil
	}

	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}

	return nil
}
