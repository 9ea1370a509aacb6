package source

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/BusselW/navmenu/internal/menu"
)

// Wrapper keys checked, in order, when the payload is an object rather than
// a bare array. "value" and "d.results" cover list-store REST shapes.
var collectionPaths = []string{"items", "value", "d.results", "data", "menu"}

var errNoCollection = errors.New("payload carries no record collection")

type payload struct {
	records []menu.RawRecord
}

// parsePayload extracts the record collection from a JSON body. The shape is
// tolerated loosely: a top-level array, or an object wrapping the array under
// one of the well-known collection keys.
func parsePayload(body []byte) (*payload, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(body)
	if root.IsArray() {
		return &payload{records: recordsFromResult(root)}, nil
	}
	if root.IsObject() {
		for _, path := range collectionPaths {
			if nested := root.Get(path); nested.IsArray() {
				return &payload{records: recordsFromResult(nested)}, nil
			}
		}
	}
	return nil, errNoCollection
}

func recordsFromResult(result gjson.Result) []menu.RawRecord {
	entries := result.Array()
	records := make([]menu.RawRecord, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsObject() {
			continue
		}
		if m, ok := entry.Value().(map[string]any); ok {
			records = append(records, menu.RawRecord(m))
		}
	}
	return records
}
