// Package source fetches raw menu records from one of several
// interchangeable data-source kinds and, for flat hierarchical-list
// sources, reconstructs the parent/child hierarchy.
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/BusselW/navmenu/internal/menu"
)

// Kind identifies a data-source variant.
type Kind string

const (
	// KindStatic serves an embedded record collection.
	KindStatic Kind = "static"
	// KindDocument fetches a JSON document from a URL.
	KindDocument Kind = "document"
	// KindRemoteAPI performs a configurable HTTP call.
	KindRemoteAPI Kind = "remoteApi"
	// KindHierarchicalList fetches flat records carrying parent references,
	// as produced by list stores, and rebuilds the tree from them.
	KindHierarchicalList Kind = "hierarchicalList"
)

// ParseKind resolves a configured source-type string.
func ParseKind(value string) (Kind, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "static":
		return KindStatic, nil
	case "document":
		return KindDocument, nil
	case "remoteapi", "remote-api", "api":
		return KindRemoteAPI, nil
	case "hierarchicallist", "hierarchical-list", "list":
		return KindHierarchicalList, nil
	default:
		return "", fmt.Errorf("unrecognized source type %q", value)
	}
}

// Config describes a data source. Which fields matter depends on Kind.
type Config struct {
	Kind    Kind
	URL     string
	Method  string
	Headers map[string]string
	Body    string
	// Items backs the static kind, and the hierarchical kind when no URL is
	// configured (embedded flat lists).
	Items []menu.RawRecord
	// SortDescending flips the sibling order sort for hierarchical lists.
	SortDescending bool
}

// Locator returns the cache-identity string for the source.
func (c Config) Locator() string {
	if c.URL != "" {
		return c.URL
	}
	return string(c.Kind)
}

// Result is one adapter fetch outcome. Dropped carries per-record
// reconstruction failures that excluded a record without aborting the tree.
type Result struct {
	Records []menu.RawRecord
	Dropped []*ReconstructionError
}

// Adapter fetches raw menu records for a single configured source.
// The variant is selected once, at construction; Fetch never re-dispatches
// on the source kind.
type Adapter interface {
	Fetch(ctx context.Context) (*Result, error)
	Config() Config
}

// New selects the adapter implementation for the configured kind.
func New(cfg Config, fetch Fetcher) (Adapter, error) {
	switch cfg.Kind {
	case KindStatic:
		return &staticAdapter{cfg: cfg}, nil
	case KindDocument:
		if fetch == nil {
			fetch = HTTPFetcher(nil)
		}
		return &documentAdapter{cfg: cfg, fetch: fetch}, nil
	case KindRemoteAPI:
		if fetch == nil {
			fetch = HTTPFetcher(nil)
		}
		return &remoteAdapter{cfg: cfg, fetch: fetch}, nil
	case KindHierarchicalList:
		if fetch == nil {
			fetch = HTTPFetcher(nil)
		}
		return &hierarchicalAdapter{cfg: cfg, fetch: fetch}, nil
	default:
		return nil, fmt.Errorf("unrecognized source kind %q", cfg.Kind)
	}
}
