package search

import (
	"sort"
	"strconv"

	"github.com/fwojciec/optsearch"
)

// ChipOptions derives the option list for a filter chip from the dataset:
// the distinct values of key across all records, array-valued fields
// flattened, in sorted order. Numeric values sort numerically so that core
// counts read 1, 2, 10 rather than 1, 10, 2.
func ChipOptions(dataset *optsearch.Dataset, key string) []optsearch.Option {
	seen := make(map[string]struct{})
	for _, r := range dataset.Records {
		v, ok := r.Field(key)
		if !ok {
			continue
		}
		elems, ok := v.([]any)
		if !ok {
			elems = []any{v}
		}
		for _, e := range elems {
			if s := optsearch.CanonicalValue(e); s != "" {
				seen[s] = struct{}{}
			}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		a, aerr := strconv.Atoi(values[i])
		b, berr := strconv.Atoi(values[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		return values[i] < values[j]
	})

	options := make([]optsearch.Option, 0, len(values))
	for _, v := range values {
		options = append(options, optsearch.Option{Value: v, Label: v})
	}
	return options
}
