package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/fwojciec/optsearch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ optsearch.DatasetService = (*DatasetService)(nil)

// DatasetService implements optsearch.DatasetService backed by the local
// cache. Each imported database is stored under a caller-chosen name.
// Record names are not unique, so rows are keyed by generated UUIDs and the
// original dataset order is preserved via an explicit position column.
type DatasetService struct {
	db   *DB
	name string
}

// NewDatasetService creates a DatasetService for the named database.
func NewDatasetService(db *DB, name string) *DatasetService {
	return &DatasetService{db: db, name: name}
}

// Load reads the named database from the cache.
// Returns ENOTFOUND if it has not been imported.
func (s *DatasetService) Load(ctx context.Context) (*optsearch.Dataset, error) {
	var fingerprint string
	err := s.db.QueryRowContext(ctx, `
		SELECT fingerprint FROM databases WHERE name = ?
	`, s.name).Scan(&fingerprint)

	if err == sql.ErrNoRows {
		return nil, optsearch.Errorf(optsearch.ENOTFOUND, "database %q not imported", s.name)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT fields FROM records WHERE database_name = ? ORDER BY position ASC
	`, s.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ds := &optsearch.Dataset{Fingerprint: fingerprint}
	for rows.Next() {
		var fields string
		if err := rows.Scan(&fields); err != nil {
			return nil, err
		}

		var r optsearch.Record
		if err := json.Unmarshal([]byte(fields), &r); err != nil {
			return nil, optsearch.Errorf(optsearch.EINTERNAL, "corrupt cached record: %v", err)
		}
		ds.Records = append(ds.Records, r)
	}

	return ds, rows.Err()
}

// Import stores the dataset under the service's name, replacing any
// previous import of the same name.
func (s *DatasetService) Import(ctx context.Context, ds *optsearch.Dataset) error {
	for _, r := range ds.Records {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM databases WHERE name = ?", s.name); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO databases (name, fingerprint, imported_at) VALUES (?, ?, ?)
	`, s.name, ds.Fingerprint, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, r := range ds.Records {
		fields, err := json.Marshal(r)
		if err != nil {
			return err
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO records (id, database_name, name, position, fields)
			VALUES (?, ?, ?, ?, ?)
		`, uuid.New().String(), s.name, r.Name(), i, string(fields))
		if err != nil {
			return err
		}
	}

	return nil
}

// Names returns the names of all imported databases.
func (s *DatasetService) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM databases ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
