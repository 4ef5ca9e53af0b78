package main

import (
	"fmt"

	"github.com/fwojciec/optsearch"
	"github.com/fwojciec/optsearch/sqlite"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	dataset, err := resolveSource(deps, c.Source).Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optsearch.ErrorMessage(err))
		return err
	}

	service := sqlite.NewDatasetService(deps.DB, c.Name)
	if err := service.Import(deps.Ctx, dataset); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optsearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %q: %d records (fingerprint %s)\n",
		c.Name, len(dataset.Records), dataset.Fingerprint)
	return nil
}
