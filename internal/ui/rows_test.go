package ui

import (
	"testing"

	"github.com/BusselW/navmenu/internal/controller"
	"github.com/BusselW/navmenu/internal/menu"
)

func rowTree() []*menu.Node {
	return []*menu.Node{
		{ID: "products", Title: "Products", Level: 1, Children: []*menu.Node{
			{ID: "p1", Title: "Widgets", Level: 2},
			{ID: "p2", Title: "Gadgets", Level: 2, Children: []*menu.Node{
				{ID: "p2a", Title: "Gizmos", Level: 3},
			}},
		}},
		{ID: "blog", Title: "Blog", Level: 1},
	}
}

func phaseMap(phases map[string]controller.Phase) func(string) controller.Phase {
	return func(id string) controller.Phase {
		return phases[id]
	}
}

func TestBuildRowsCollapsedShowsRootsOnly(t *testing.T) {
	rows := buildRows(rowTree(), phaseMap(nil), false)
	if len(rows) != 2 || rows[0].ID != "products" || rows[1].ID != "blog" {
		t.Fatalf("unexpected rows %v", rows)
	}
	for _, row := range rows {
		if row.Indent != 0 {
			t.Fatalf("root rows must not be indented, got %v", row)
		}
	}
}

func TestBuildRowsOpenSubmenuShowsChildren(t *testing.T) {
	rows := buildRows(rowTree(), phaseMap(map[string]controller.Phase{
		"products": controller.PhaseOpen,
	}), false)

	want := []string{"products", "p1", "p2", "blog"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d (%v)", len(rows), len(want), rows)
	}
	for i, id := range want {
		if rows[i].ID != id {
			t.Fatalf("row %d = %q, want %q", i, rows[i].ID, id)
		}
	}
	if rows[1].Indent != 1 || rows[2].Indent != 1 {
		t.Fatalf("children must be indented, got %v", rows)
	}
}

func TestBuildRowsOpeningCountsAsVisible(t *testing.T) {
	rows := buildRows(rowTree(), phaseMap(map[string]controller.Phase{
		"products": controller.PhaseOpening,
	}), false)
	if len(rows) != 4 {
		t.Fatalf("opening submenu must show children, got %v", rows)
	}
}

func TestBuildRowsClosingKeepsChildrenVisible(t *testing.T) {
	rows := buildRows(rowTree(), phaseMap(map[string]controller.Phase{
		"products": controller.PhaseClosing,
	}), false)
	if len(rows) != 4 {
		t.Fatalf("children must stay visible through the close grace period, got %v", rows)
	}

	rows = buildRows(rowTree(), phaseMap(map[string]controller.Phase{
		"products": controller.PhaseClosed,
	}), false)
	if len(rows) != 2 {
		t.Fatalf("closed submenu must hide children, got %v", rows)
	}
}

func TestBuildRowsNestedVisibility(t *testing.T) {
	rows := buildRows(rowTree(), phaseMap(map[string]controller.Phase{
		"products": controller.PhaseOpen,
		"p2":       controller.PhaseOpen,
	}), false)

	want := []string{"products", "p1", "p2", "p2a", "blog"}
	if len(rows) != len(want) {
		t.Fatalf("got %v, want ids %v", rows, want)
	}
	if rows[3].Indent != 2 {
		t.Fatalf("third-level row must have indent 2, got %d", rows[3].Indent)
	}
}

func TestBuildRowsExpandAllIgnoresPhases(t *testing.T) {
	rows := buildRows(rowTree(), phaseMap(nil), true)
	if len(rows) != 5 {
		t.Fatalf("expandAll must flatten everything, got %v", rows)
	}
}
