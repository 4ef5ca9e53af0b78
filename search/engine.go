// Package search orchestrates query evaluation for one loaded record
// database: it owns the engine, the page-level state (term, filters,
// pagination, history), and the unidirectional update-then-render cycle.
package search

import (
	"context"
	"regexp"

	"github.com/fwojciec/optsearch"
	"github.com/fwojciec/optsearch/bloom"
)

// Compile-time interface verification.
var _ optsearch.Searcher = (*Engine)(nil)

// exactTermRe recognizes the anchored exact-match terms produced by
// optsearch.SanitizeFragment.
var exactTermRe = regexp.MustCompile(`^\^(\w+)\$$`)

// Engine is the in-memory Searcher over one loaded dataset. Exact-match
// deep-link terms are prescreened through a Bloom index over record names,
// so a stale link to a removed symbol skips the scan entirely.
type Engine struct {
	dataset *optsearch.Dataset
	names   *bloom.Index
}

// NewEngine creates an Engine for the dataset.
func NewEngine(dataset *optsearch.Dataset) *Engine {
	return &Engine{
		dataset: dataset,
		names:   bloom.NewIndex(dataset.Names()),
	}
}

// Search evaluates q against the engine's dataset.
func (e *Engine) Search(ctx context.Context, q optsearch.Query) (*optsearch.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if m := exactTermRe.FindStringSubmatch(q.Term); m != nil && !e.names.MayContain(m[1]) {
		return &optsearch.Result{}, nil
	}

	return optsearch.Evaluate(e.dataset, q)
}
