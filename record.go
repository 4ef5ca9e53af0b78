package optsearch

import (
	"context"
	"encoding/json"
)

// Record is one row of a pre-built documentation database: a configuration
// symbol or a hardware board. The field set is schema-flexible and varies by
// database variant, so records are kept as decoded JSON objects rather than
// fixed structs. Records are immutable once loaded.
//
// Identity is the "name" field. Names are not guaranteed to be globally
// unique but are treated as the matching key.
type Record map[string]any

// Name returns the record's name field, or "" if absent.
func (r Record) Name() string {
	name, _ := r["name"].(string)
	return name
}

// Field returns the record's value for key. An object value holding a
// "count" member resolves to that count, matching how board peripherals are
// encoded in the database ({"i2c": {"count": 2}}).
func (r Record) Field(key string) (any, bool) {
	v, ok := r[key]
	if !ok {
		return nil, false
	}
	if obj, ok := v.(map[string]any); ok {
		if count, ok := obj["count"]; ok {
			return count, true
		}
	}
	return v, true
}

// Validate returns an error if the record contains invalid fields.
func (r Record) Validate() error {
	if r.Name() == "" {
		return Errorf(EINVALID, "record name required")
	}
	return nil
}

// Dataset is the ordered, immutable record collection for one database.
// It is loaded once per session and shared read-only by all queries.
type Dataset struct {
	Records []Record

	// Fingerprint is a content hash of the source document, in hex.
	// Used for change detection and logging; empty if the source did not
	// compute one.
	Fingerprint string
}

// Names returns the record names in dataset order.
func (d *Dataset) Names() []string {
	names := make([]string, 0, len(d.Records))
	for _, r := range d.Records {
		names = append(names, r.Name())
	}
	return names
}

// DecodeDataset parses a JSON record database. A document that is not a
// JSON array of objects returns EINVALID; the error message is suitable for
// the inline error panel.
func DecodeDataset(data []byte) (*Dataset, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, Errorf(EINVALID, "malformed record database: %v", err)
	}
	return &Dataset{Records: records}, nil
}

// DatasetService loads a pre-built record database.
type DatasetService interface {
	// Load fetches and parses the database. Load is called once per
	// session; callers hold on to the result rather than re-loading.
	Load(ctx context.Context) (*Dataset, error)
}

// Renderer produces a self-contained display fragment for one record.
// Implementations must be pure with respect to the record argument.
type Renderer interface {
	Render(r Record) (string, error)
}
