package menu

import (
	"math"
	"strconv"
	"strings"
)

// RawRecord is one untyped menu record as delivered by a data source.
// Field names vary across sources, so access goes through the alias-aware
// helpers below rather than direct key lookups.
type RawRecord map[string]any

// Alias groups for the canonical node fields. Lookup is case-insensitive,
// first match wins.
var (
	titleAliases  = []string{"title", "label", "name"}
	targetAliases = []string{"url", "href", "link"}
	styleAliases  = []string{"className", "cssClass"}
	iconAliases   = []string{"icon"}
	idAliases     = []string{"id"}
	parentAliases = []string{"parentId", "parent"}
	newTabAliases = []string{"openInNewTab", "newTab"}
	orderAliases  = []string{"order"}
)

func (r RawRecord) lookup(aliases []string) (any, bool) {
	for _, alias := range aliases {
		if v, ok := r[alias]; ok {
			return v, true
		}
	}
	for key, v := range r {
		for _, alias := range aliases {
			if strings.EqualFold(key, alias) {
				return v, true
			}
		}
	}
	return nil, false
}

func (r RawRecord) stringField(aliases []string) string {
	v, ok := r.lookup(aliases)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == math.Trunc(s) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// ID returns the record identifier, empty when the source supplied none.
func (r RawRecord) ID() string {
	return r.stringField(idAliases)
}

// ParentID returns the parent reference used by hierarchical-list sources.
func (r RawRecord) ParentID() string {
	return r.stringField(parentAliases)
}

// Title resolves the display text across the title/label/name aliases.
func (r RawRecord) Title() string {
	return r.stringField(titleAliases)
}

// Target resolves the navigation target across the url/href/link aliases.
func (r RawRecord) Target() string {
	return r.stringField(targetAliases)
}

// Style resolves the optional style tag across the className/cssClass aliases.
func (r RawRecord) Style() string {
	return r.stringField(styleAliases)
}

// Icon returns the optional icon reference.
func (r RawRecord) Icon() string {
	return r.stringField(iconAliases)
}

// OpenInNewTab reports whether activation should open a fresh tab.
func (r RawRecord) OpenInNewTab() bool {
	v, ok := r.lookup(newTabAliases)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return err == nil && parsed
	default:
		return false
	}
}

// Order returns the sibling sort key. Records without one sort as zero and
// keep their original relative order under the stable sibling sort.
func (r RawRecord) Order() int {
	v, ok := r.lookup(orderAliases)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// Children returns nested child records, if the source supplied the
// hierarchy inline.
func (r RawRecord) Children() []RawRecord {
	v, ok := r.lookup([]string{"children", "items"})
	if !ok {
		return nil
	}
	return CoerceRecords(v)
}

// SetChildren attaches reconstructed children to a record copy. The receiver
// is not mutated.
func (r RawRecord) SetChildren(children []RawRecord) RawRecord {
	dup := make(RawRecord, len(r)+1)
	for k, v := range r {
		dup[k] = v
	}
	dup["children"] = children
	return dup
}

// CoerceRecords converts a decoded JSON value into a record slice. Values
// that are not object collections yield nil.
func CoerceRecords(v any) []RawRecord {
	switch typed := v.(type) {
	case []RawRecord:
		return typed
	case []any:
		records := make([]RawRecord, 0, len(typed))
		for _, entry := range typed {
			if m, ok := entry.(map[string]any); ok {
				records = append(records, RawRecord(m))
			}
		}
		return records
	case []map[string]any:
		records := make([]RawRecord, 0, len(typed))
		for _, entry := range typed {
			records = append(records, RawRecord(entry))
		}
		return records
	default:
		return nil
	}
}
