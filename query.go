package optsearch

import (
	"context"
	"regexp"
)

// Unconstrained selects what a query with no term and no active filters
// matches. The symbol search page matches nothing, to avoid dumping the
// entire database unprompted; the board catalog shows the full unfiltered
// set by default.
type Unconstrained int

const (
	MatchNone Unconstrained = iota
	MatchAll
)

// Query is one evaluation request: an optional case-insensitive regex term
// over record names, a filter state snapshot, and a pagination window.
// Queries are ephemeral; they are recomputed per invocation, never stored.
type Query struct {
	// Term is a regular expression tested against record names,
	// case-insensitively. Empty means no text constraint.
	Term string

	// Filters constrains records by field membership. Nil means no
	// constraint.
	Filters *FilterState

	// Offset and PageSize bound the returned window. PageSize <= 0
	// disables pagination and returns all matches.
	Offset   int
	PageSize int

	// Unconstrained decides the empty-query case.
	Unconstrained Unconstrained
}

// Result is the ordered subsequence of the dataset satisfying a query.
// Total counts all matches before pagination.
type Result struct {
	Records []Record
	Total   int
}

// Searcher evaluates queries against a loaded dataset.
type Searcher interface {
	Search(ctx context.Context, q Query) (*Result, error)
}

// Evaluate runs q against the dataset in a single linear scan: every match
// is counted, and only matches whose zero-based rank falls inside
// [Offset, Offset+PageSize) are collected.
//
// An invalid regular expression term returns EINVALID; it never panics and
// never silently matches everything.
func Evaluate(dataset *Dataset, q Query) (*Result, error) {
	if dataset == nil {
		return nil, Errorf(EINVALID, "dataset required")
	}
	if q.Offset < 0 {
		return nil, Errorf(EINVALID, "negative pagination offset %d", q.Offset)
	}

	if q.Term == "" && !q.Filters.Active() && q.Unconstrained == MatchNone {
		return &Result{}, nil
	}

	var re *regexp.Regexp
	if q.Term != "" {
		var err error
		re, err = regexp.Compile("(?i)" + q.Term)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid search pattern %q: %v", q.Term, err)
		}
	}

	res := &Result{}
	for _, r := range dataset.Records {
		if re != nil && !re.MatchString(r.Name()) {
			continue
		}
		if !q.Filters.Match(r) {
			continue
		}
		rank := res.Total
		res.Total++
		if q.PageSize <= 0 || (rank >= q.Offset && rank < q.Offset+q.PageSize) {
			res.Records = append(res.Records, r)
		}
	}
	return res, nil
}
