package source

import (
	"context"
	"testing"

	"github.com/BusselW/navmenu/internal/menu"
)

func recordIDs(records []menu.RawRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID())
	}
	return ids
}

func TestReconstructOrdersSiblingsAndAttachesChildren(t *testing.T) {
	flat := []menu.RawRecord{
		{"id": "1", "title": "One", "order": 2},
		{"id": "2", "title": "Two", "order": 1},
		{"id": "3", "title": "Three", "parentId": "1"},
	}

	roots, dropped := Reconstruct(flat, false)
	if len(dropped) != 0 {
		t.Fatalf("expected no drops, got %v", dropped)
	}
	got := recordIDs(roots)
	if len(got) != 2 || got[0] != "2" || got[1] != "1" {
		t.Fatalf("expected roots [2 1], got %v", got)
	}
	children := roots[1].Children()
	if len(children) != 1 || children[0].ID() != "3" {
		t.Fatalf("expected record 3 under record 1, got %v", recordIDs(children))
	}
}

func TestReconstructDescendingOrder(t *testing.T) {
	flat := []menu.RawRecord{
		{"id": "a", "order": 1},
		{"id": "b", "order": 3},
		{"id": "c", "order": 2},
	}
	roots, _ := Reconstruct(flat, true)
	got := recordIDs(roots)
	if got[0] != "b" || got[1] != "c" || got[2] != "a" {
		t.Fatalf("expected roots [b c a], got %v", got)
	}
}

func TestReconstructTiesKeepInputOrder(t *testing.T) {
	flat := []menu.RawRecord{
		{"id": "x"},
		{"id": "y"},
		{"id": "z", "order": -1},
	}
	roots, _ := Reconstruct(flat, false)
	got := recordIDs(roots)
	if got[0] != "z" || got[1] != "x" || got[2] != "y" {
		t.Fatalf("expected stable roots [z x y], got %v", got)
	}
}

func TestReconstructPromotesUnresolvedParents(t *testing.T) {
	flat := []menu.RawRecord{
		{"id": "child", "parentId": "ghost"},
		{"id": "root"},
	}
	roots, dropped := Reconstruct(flat, false)
	if len(dropped) != 0 {
		t.Fatalf("expected no drops for unresolved parent, got %v", dropped)
	}
	got := recordIDs(roots)
	if len(got) != 2 || got[0] != "child" || got[1] != "root" {
		t.Fatalf("expected both promoted to root, got %v", got)
	}
}

func TestReconstructDropsCycleMembers(t *testing.T) {
	flat := []menu.RawRecord{
		{"id": "a", "parentId": "b"},
		{"id": "b", "parentId": "a"},
		{"id": "ok"},
	}
	roots, dropped := Reconstruct(flat, false)
	if len(dropped) != 2 {
		t.Fatalf("expected both cycle members dropped, got %d", len(dropped))
	}
	for _, d := range dropped {
		if len(d.Chain) == 0 {
			t.Fatalf("expected a reported parent chain for %s", d.RecordID)
		}
	}
	got := recordIDs(roots)
	if len(got) != 1 || got[0] != "ok" {
		t.Fatalf("expected only the non-cyclic record to survive, got %v", got)
	}
}

func TestReconstructSelfParentDropped(t *testing.T) {
	flat := []menu.RawRecord{
		{"id": "loop", "parentId": "loop"},
	}
	roots, dropped := Reconstruct(flat, false)
	if len(roots) != 0 {
		t.Fatalf("expected no roots, got %v", recordIDs(roots))
	}
	if len(dropped) != 1 || dropped[0].RecordID != "loop" {
		t.Fatalf("expected loop dropped, got %v", dropped)
	}
}

func TestReconstructPromotesOrphanedDescendants(t *testing.T) {
	// The cycle removes a and b; c referenced b and must surface at root.
	flat := []menu.RawRecord{
		{"id": "a", "parentId": "b"},
		{"id": "b", "parentId": "a"},
		{"id": "c", "parentId": "b"},
	}
	roots, dropped := Reconstruct(flat, false)
	if len(dropped) != 2 {
		t.Fatalf("expected 2 drops, got %d", len(dropped))
	}
	got := recordIDs(roots)
	if len(got) != 1 || got[0] != "c" {
		t.Fatalf("expected orphan c promoted to root, got %v", got)
	}
}

func TestHierarchicalAdapterEmbeddedItems(t *testing.T) {
	adapter, err := New(Config{
		Kind: KindHierarchicalList,
		Items: []menu.RawRecord{
			{"id": "p", "title": "Parent"},
			{"id": "c", "title": "Child", "parentId": "p"},
		},
	}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := adapter.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(result.Records) != 1 || result.Records[0].ID() != "p" {
		t.Fatalf("expected single root p, got %v", recordIDs(result.Records))
	}
	if kids := result.Records[0].Children(); len(kids) != 1 || kids[0].ID() != "c" {
		t.Fatalf("expected child c, got %v", recordIDs(kids))
	}
}
