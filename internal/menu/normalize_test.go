package menu

import "testing"

func TestNormalizeMapsFieldAliases(t *testing.T) {
	records := []RawRecord{
		{"id": "a", "label": "Alpha", "href": "/alpha", "cssClass": "primary"},
		{"id": "b", "name": "Beta", "link": "/beta", "className": "secondary"},
		{"id": "c", "title": "Gamma", "url": "/gamma", "newTab": true},
	}

	nodes := Normalize(records, 3)
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if nodes[0].Title != "Alpha" || nodes[0].Target != "/alpha" || nodes[0].Style != "primary" {
		t.Fatalf("alias mapping failed for first node: %#v", nodes[0])
	}
	if nodes[1].Title != "Beta" || nodes[1].Target != "/beta" || nodes[1].Style != "secondary" {
		t.Fatalf("alias mapping failed for second node: %#v", nodes[1])
	}
	if nodes[2].Title != "Gamma" || !nodes[2].OpenInNewTab {
		t.Fatalf("alias mapping failed for third node: %#v", nodes[2])
	}
}

func TestNormalizeLookupIsCaseInsensitive(t *testing.T) {
	nodes := Normalize([]RawRecord{{"ID": "x", "Title": "Upper", "URL": "/upper"}}, 1)
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if nodes[0].ID != "x" || nodes[0].Title != "Upper" || nodes[0].Target != "/upper" {
		t.Fatalf("case-insensitive lookup failed: %#v", nodes[0])
	}
}

func TestNormalizeGeneratesMissingIDs(t *testing.T) {
	nodes := Normalize([]RawRecord{
		{"title": "First"},
		{"title": "Second"},
	}, 1)
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0].ID == "" || nodes[1].ID == "" {
		t.Fatal("expected generated ids on both nodes")
	}
	if nodes[0].ID == nodes[1].ID {
		t.Fatalf("expected distinct generated ids, both %q", nodes[0].ID)
	}
}

func TestNormalizeTruncatesBeyondMaxDepth(t *testing.T) {
	records := []RawRecord{
		{
			"id": "top", "title": "Top",
			"children": []any{
				map[string]any{
					"id": "mid", "title": "Mid",
					"children": []any{
						map[string]any{
							"id": "leaf", "title": "Leaf",
							"children": []any{
								map[string]any{"id": "deep", "title": "Too Deep"},
							},
						},
					},
				},
			},
		},
	}

	nodes := Normalize(records, 2)
	top := nodes[0]
	if len(top.Children) != 1 {
		t.Fatalf("expected one child at depth 2, got %d", len(top.Children))
	}
	mid := top.Children[0]
	if len(mid.Children) != 0 {
		t.Fatalf("expected depth-3 children dropped silently, got %d", len(mid.Children))
	}

	nodes = Normalize(records, 3)
	leaf := nodes[0].Children[0].Children[0]
	if leaf.ID != "leaf" {
		t.Fatalf("expected leaf at depth 3, got %q", leaf.ID)
	}
	if len(leaf.Children) != 0 {
		t.Fatalf("expected depth-4 children dropped at the cap, got %d", len(leaf.Children))
	}
}

func TestNormalizeClampsDepthArgument(t *testing.T) {
	records := []RawRecord{
		{"id": "a", "title": "A", "children": []any{map[string]any{"id": "b", "title": "B"}}},
	}
	nodes := Normalize(records, 0)
	if len(nodes[0].Children) != 0 {
		t.Fatal("expected depth 0 clamped to a single layer")
	}
	nodes = Normalize(records, 99)
	if len(nodes[0].Children) != 1 {
		t.Fatal("expected oversized depth clamped but children kept")
	}
}

func TestNormalizeAssignsLevels(t *testing.T) {
	records := []RawRecord{
		{
			"id": "a", "title": "A",
			"children": []any{
				map[string]any{
					"id": "b", "title": "B",
					"children": []any{map[string]any{"id": "c", "title": "C"}},
				},
			},
		},
	}
	nodes := Normalize(records, 3)
	if nodes[0].Level != 1 {
		t.Fatalf("expected root level 1, got %d", nodes[0].Level)
	}
	if nodes[0].Children[0].Level != 2 {
		t.Fatalf("expected child level 2, got %d", nodes[0].Children[0].Level)
	}
	if nodes[0].Children[0].Children[0].Level != 3 {
		t.Fatalf("expected grandchild level 3, got %d", nodes[0].Children[0].Children[0].Level)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	record := RawRecord{"id": "a", "title": "A"}
	Normalize([]RawRecord{record}, 3)
	if _, ok := record["children"]; ok {
		t.Fatal("expected input record untouched")
	}
}
