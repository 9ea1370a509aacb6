package menu

import (
	"github.com/google/uuid"
)

// MaxLayers is the deepest nesting the menu supports.
const MaxLayers = 3

// Normalize converts raw source records into a validated node forest.
// Field aliases are mapped onto canonical fields, missing ids are generated
// (best-effort uniqueness, no collision check), and children nested deeper
// than maxDepth are dropped without an error: truncation is policy here, not
// a validation failure. The input records are never mutated.
func Normalize(records []RawRecord, maxDepth int) []*Node {
	if maxDepth < 1 {
		maxDepth = 1
	} else if maxDepth > MaxLayers {
		maxDepth = MaxLayers
	}
	return normalizeLevel(records, 1, maxDepth)
}

func normalizeLevel(records []RawRecord, depth, maxDepth int) []*Node {
	if len(records) == 0 {
		return nil
	}
	nodes := make([]*Node, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		node := &Node{
			ID:           record.ID(),
			Title:        record.Title(),
			Target:       record.Target(),
			OpenInNewTab: record.OpenInNewTab(),
			Icon:         record.Icon(),
			Style:        record.Style(),
			Order:        record.Order(),
			Level:        depth,
			Children:     []*Node{},
		}
		if node.ID == "" {
			node.ID = uuid.NewString()
		}
		if depth < maxDepth {
			if children := record.Children(); len(children) > 0 {
				node.Children = normalizeLevel(children, depth+1, maxDepth)
			}
		}
		nodes = append(nodes, node)
	}
	return nodes
}
