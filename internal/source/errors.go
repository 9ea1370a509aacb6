package source

import (
	"fmt"
	"strings"
)

// FailKind classifies a fetch failure.
type FailKind int

const (
	// FailNetwork covers transport-level failures.
	FailNetwork FailKind = iota
	// FailHTTPStatus covers non-2xx responses.
	FailHTTPStatus
	// FailParse covers unparseable payloads.
	FailParse
)

func (k FailKind) String() string {
	switch k {
	case FailNetwork:
		return "network"
	case FailHTTPStatus:
		return "http-status"
	case FailParse:
		return "parse"
	default:
		return "unknown"
	}
}

// FetchError reports a failed data acquisition.
type FetchError struct {
	Kind   FailKind
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FailHTTPStatus:
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	case FailParse:
		return fmt.Sprintf("fetch %s: parse payload: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ReconstructionError reports one record excluded during flat-to-tree
// reconstruction. The remaining tree is still produced.
type ReconstructionError struct {
	RecordID string
	// Chain holds the parent-reference path that looped back onto the record.
	Chain []string
}

func (e *ReconstructionError) Error() string {
	if len(e.Chain) > 0 {
		return fmt.Sprintf("record %s dropped: parent chain cycles through %s", e.RecordID, strings.Join(e.Chain, " -> "))
	}
	return fmt.Sprintf("record %s dropped during tree reconstruction", e.RecordID)
}
