package ui

import (
	"github.com/BusselW/navmenu/internal/controller"
	"github.com/BusselW/navmenu/internal/menu"
	uistate "github.com/BusselW/navmenu/internal/ui/state"
)

// buildRows flattens the tree into the rows currently on screen. Children
// stay visible until their submenu actually reaches Closed, so a rebuild
// during the close grace period does not collapse them early; expandAll
// overrides phases so a filter can match nested items.
func buildRows(tree []*menu.Node, phase func(string) controller.Phase, expandAll bool) []uistate.Entry {
	rows := make([]uistate.Entry, 0, len(tree)*2)
	var walk func(level []*menu.Node, indent int)
	walk = func(level []*menu.Node, indent int) {
		for _, node := range level {
			rows = append(rows, uistate.Entry{ID: node.ID, Label: node.Title, Indent: indent})
			if !node.HasChildren() {
				continue
			}
			if expandAll || isVisible(phase(node.ID)) {
				walk(node.Children, indent+1)
			}
		}
	}
	walk(tree, 0)
	return rows
}

func isVisible(phase controller.Phase) bool {
	return phase != controller.PhaseClosed
}
