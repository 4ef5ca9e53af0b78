package main

import (
	"strings"

	"github.com/fwojciec/optsearch"
	"github.com/fwojciec/optsearch/fs"
	opthttp "github.com/fwojciec/optsearch/http"
	"github.com/fwojciec/optsearch/sqlite"
)

// resolveSource maps a source argument to a dataset service: URLs load over
// HTTP, paths that look like files load from disk, and anything else is
// treated as the name of an imported database in the local cache.
func resolveSource(deps *Dependencies, source string) optsearch.DatasetService {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return opthttp.NewLoader(source)
	}
	if strings.ContainsAny(source, "/\\") || strings.HasSuffix(source, ".json") {
		return fs.NewLoader(source)
	}
	return sqlite.NewDatasetService(deps.DB, source)
}

// parseFilters converts repeated key=v1,v2 flags into a filter state.
func parseFilters(flags []string) (*optsearch.FilterState, error) {
	filters := optsearch.NewFilterState()
	for _, flag := range flags {
		key, raw, ok := strings.Cut(flag, "=")
		if !ok || key == "" {
			return nil, optsearch.Errorf(optsearch.EINVALID, "malformed filter %q, expected key=value[,value]", flag)
		}
		var values []string
		for _, v := range strings.Split(raw, ",") {
			if v != "" {
				values = append(values, v)
			}
		}
		filters.Apply(key, values)
	}
	return filters, nil
}
