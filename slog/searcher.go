package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/optsearch"
)

// Ensure LoggingSearcher implements optsearch.Searcher.
var _ optsearch.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with per-query logging.
type LoggingSearcher struct {
	next   optsearch.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next optsearch.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome.
func (s *LoggingSearcher) Search(ctx context.Context, q optsearch.Query) (*optsearch.Result, error) {
	begin := time.Now()
	res, err := s.next.Search(ctx, q)
	if err != nil {
		s.logger.Error("search failed",
			"term", q.Term,
			"code", optsearch.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("search",
		"term", q.Term,
		"filtered", q.Filters.Active(),
		"offset", q.Offset,
		"total", res.Total,
		"duration", time.Since(begin),
	)
	return res, nil
}
