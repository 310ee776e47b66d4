// Package content holds the bundled snapshot of the external content
// API. The snapshot mirrors the API's shape and serves as the safety
// net when the live service is unreachable or returns nothing usable.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed snapshot.json
var rawSnapshot []byte

// Snapshot is the parsed bundled content, keyed by collection name.
type Snapshot struct {
	collections map[string][]json.RawMessage
}

// LoadSnapshot parses the embedded snapshot once at startup.
func LoadSnapshot() (*Snapshot, error) {
	collections := map[string][]json.RawMessage{}
	if err := json.Unmarshal(rawSnapshot, &collections); err != nil {
		return nil, fmt.Errorf("parse bundled snapshot: %w", err)
	}
	return &Snapshot{collections: collections}, nil
}

// Collection returns the snapshot records for a collection name.
// Unknown names yield an empty slice, never nil, so callers always
// serialize a JSON array.
func (s *Snapshot) Collection(name string) []json.RawMessage {
	records := s.collections[name]
	if records == nil {
		return []json.RawMessage{}
	}
	return records
}
