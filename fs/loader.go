// Package fs provides a filesystem-based implementation of
// optsearch.DatasetService for record databases stored as local JSON files.
package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/optsearch"
)

// Ensure Loader implements optsearch.DatasetService at compile time.
var _ optsearch.DatasetService = (*Loader)(nil)

// Loader reads a pre-built record database from a local file.
type Loader struct {
	path string
}

// NewLoader creates a Loader for the given file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and parses the database file. A missing file returns
// ENOTFOUND; malformed content returns EINVALID.
func (l *Loader) Load(ctx context.Context) (*optsearch.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, optsearch.Errorf(optsearch.ENOTFOUND, "database file %q not found", l.path)
	}
	if err != nil {
		return nil, optsearch.Errorf(optsearch.EINTERNAL, "reading database file %q: %v", l.path, err)
	}

	ds, err := optsearch.DecodeDataset(data)
	if err != nil {
		return nil, err
	}
	ds.Fingerprint = fmt.Sprintf("%016x", xxhash.Sum64(data))
	return ds, nil
}
