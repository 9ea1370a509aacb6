package controller

import "github.com/BusselW/navmenu/internal/menu"

// OpenEvent identifies the submenu a transition applied to and what
// triggered it ("hover", "activate", "escape", "outside-click", "api").
type OpenEvent struct {
	Trigger string
	Submenu string
}

// ItemEvent reports an activated menu item. Submenu is empty for leaves.
type ItemEvent struct {
	Trigger string
	Submenu string
	Item    *menu.Node
}

// Callbacks are the host lifecycle hooks, invoked synchronously at the
// transition they describe. Nil slots are skipped.
type Callbacks struct {
	OnMenuInit  func(*Controller)
	OnMenuOpen  func(OpenEvent)
	OnMenuClose func(OpenEvent)
	OnItemClick func(ItemEvent)
	OnDataLoad  func(tree []*menu.Node)
	OnError     func(error)
}
