package store

import (
	"context"
	"fmt"
	"time"
)

// TimeLayout is the wire format for timestamps at the storage boundary.
// Documents carry their timestamp as an ISO-8601 string with UTC offset; this
// is a serialization contract, stored data must stay parseable by any
// reimplementation of this service.
const TimeLayout = time.RFC3339Nano

// Connection is the narrow surface this service needs from the document
// store: upsert a flat document by id, and scan a whole collection. The store
// imposes no order on ScanAll results.
type Connection interface {
	Put(ctx context.Context, collection string, id string, doc map[string]interface{}) error
	ScanAll(ctx context.Context, collection string) ([]map[string]interface{}, error)
	Check(ctx context.Context) error
	Close() error
}

// EncodeTime serializes a timestamp for storage.
func EncodeTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime reads a stored timestamp back into a typed instant. Accepts both
// the "Z" and "+00:00" offset spellings.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// StringField extracts a string-typed field from a stored document.
func StringField(doc map[string]interface{}, key string) (string, error) {
	v, ok := doc[key]
	if !ok {
		return "", fmt.Errorf("document has no %q field", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("document field %q is not a string", key)
	}
	return s, nil
}
