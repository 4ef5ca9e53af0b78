// Package http provides an HTTP-based implementation of
// optsearch.DatasetService for record databases published alongside the
// documentation site.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/optsearch"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Loader implements optsearch.DatasetService at compile time.
var _ optsearch.DatasetService = (*Loader)(nil)

// Loader fetches a pre-built record database over HTTP. The fetch happens
// once per session; there are no retries, and failures surface as coded
// errors whose messages feed the inline error panel.
type Loader struct {
	client  *http.Client
	url     string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Loader.
type Option func(*Loader)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithRateLimit throttles requests to the database host to rps requests
// per second with no bursting. Useful when several databases are loaded
// from the same documentation host.
func WithRateLimit(rps float64) Option {
	return func(l *Loader) {
		l.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewLoader creates a Loader for the given database URL.
func NewLoader(url string, opts ...Option) *Loader {
	l := &Loader{
		url:     url,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.client = &http.Client{
		Timeout: l.timeout,
	}

	return l
}

// Load fetches and parses the database. Network failures return EINTERNAL;
// malformed content returns EINVALID.
func (l *Loader) Load(ctx context.Context) (*optsearch.Dataset, error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, optsearch.Errorf(optsearch.EINVALID, "invalid database URL %q: %v", l.url, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, optsearch.Errorf(optsearch.EINTERNAL, "fetching record database: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, optsearch.Errorf(optsearch.EINTERNAL, "HTTP %d for %s", resp.StatusCode, l.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, optsearch.Errorf(optsearch.EINTERNAL, "reading record database: %v", err)
	}

	ds, err := optsearch.DecodeDataset(body)
	if err != nil {
		return nil, err
	}
	ds.Fingerprint = fmt.Sprintf("%016x", xxhash.Sum64(body))
	return ds, nil
}
