// Package router translates pointer, keyboard, and viewport events into
// controller transitions. Keyboard traversal follows a roving-tabindex
// discipline: one focused trigger at a time, every other item reachable
// only through the router's explicit key handling.
package router

import (
	"github.com/BusselW/navmenu/internal/controller"
	"github.com/BusselW/navmenu/internal/logging/events"
	"github.com/BusselW/navmenu/internal/menu"
)

// Key is one of the navigation keys the router handles.
type Key int

const (
	KeyRight Key = iota
	KeyLeft
	KeyDown
	KeyUp
	KeyEnter
	KeySpace
	KeyHome
	KeyEnd
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Router owns the focus position over the controller's tree.
type Router struct {
	ctrl *controller.Controller

	roots    []string
	parents  map[string]string
	siblings map[string][]string
	children map[string][]string
	focused  string
}

// New builds a router over the controller's current tree. Call Reindex after
// every re-render so focus traversal matches what is on screen.
func New(ctrl *controller.Controller) *Router {
	r := &Router{ctrl: ctrl}
	r.Reindex()
	return r
}

// Reindex rebuilds the sibling/parent lookup tables from the controller
// tree and resets focus to the first top-level item when the previously
// focused item disappeared.
func (r *Router) Reindex() {
	tree := r.ctrl.Tree()
	r.roots = r.roots[:0]
	r.parents = map[string]string{}
	r.siblings = map[string][]string{}
	r.children = map[string][]string{}

	var index func(parentID string, level []*menu.Node)
	index = func(parentID string, level []*menu.Node) {
		ids := make([]string, 0, len(level))
		for _, node := range level {
			ids = append(ids, node.ID)
		}
		for _, node := range level {
			r.parents[node.ID] = parentID
			r.siblings[node.ID] = ids
			if node.HasChildren() {
				childIDs := make([]string, 0, len(node.Children))
				for _, child := range node.Children {
					childIDs = append(childIDs, child.ID)
				}
				r.children[node.ID] = childIDs
			}
			index(node.ID, node.Children)
		}
		if parentID == "" {
			r.roots = ids
		}
	}
	index("", tree)

	if _, ok := r.parents[r.focused]; !ok {
		r.focused = ""
	}
	if r.focused == "" && len(r.roots) > 0 {
		r.focused = r.roots[0]
	}
}

// Focused returns the id of the trigger currently holding the roving focus.
func (r *Router) Focused() string {
	return r.focused
}

// SetFocus moves focus to a known item; unknown ids are ignored.
func (r *Router) SetFocus(id string) {
	if _, ok := r.parents[id]; ok {
		r.setFocus(id)
	}
}

func (r *Router) setFocus(id string) {
	if id == "" || id == r.focused {
		return
	}
	r.focused = id
	events.Router.Focus(id)
}

// PointerEnter forwards a hover-enter on the item owning submenuID.
func (r *Router) PointerEnter(submenuID string) {
	r.ctrl.HoverEnter(submenuID)
}

// PointerLeave forwards a hover-leave.
func (r *Router) PointerLeave(submenuID string) {
	r.ctrl.HoverLeave(submenuID)
}

// Click forwards an activation on the item.
func (r *Router) Click(itemID string) {
	r.setFocus(itemID)
	r.ctrl.Activate(itemID)
}

// OutsideClick forwards a click outside the menu container.
func (r *Router) OutsideClick() {
	r.ctrl.OutsideClick()
}

// Resize forwards a viewport width change.
func (r *Router) Resize(width int) {
	r.ctrl.Resize(width)
}

// HandleKey runs the keyboard contract on the focused trigger and reports
// whether the key was consumed; consumed keys must have their default action
// suppressed by the host. With keyboard navigation disabled only Escape is
// still honored.
func (r *Router) HandleKey(key Key) bool {
	consumed := r.handleKey(key)
	events.Router.Key(key.String(), consumed)
	return consumed
}

func (r *Router) handleKey(key Key) bool {
	if key == KeyEscape {
		if !r.ctrl.Options().CloseOnEscape {
			return false
		}
		r.ctrl.Escape()
		return true
	}
	if !r.ctrl.Options().EnableKeyboardNavigation {
		return false
	}
	if r.focused == "" {
		if len(r.roots) == 0 {
			return false
		}
		r.setFocus(r.roots[0])
	}

	switch key {
	case KeyRight:
		r.moveSibling(1)
	case KeyLeft:
		r.moveSibling(-1)
	case KeyDown:
		if children, ok := r.children[r.focused]; ok && len(children) > 0 {
			r.setFocus(children[0])
		}
	case KeyUp:
		if parent := r.parents[r.focused]; parent != "" {
			r.setFocus(parent)
		}
	case KeyEnter, KeySpace:
		r.ctrl.Activate(r.focused)
	case KeyHome:
		if len(r.roots) > 0 {
			r.setFocus(r.roots[0])
		}
	case KeyEnd:
		if len(r.roots) > 0 {
			r.setFocus(r.roots[len(r.roots)-1])
		}
	default:
		return false
	}
	return true
}

// moveSibling shifts focus among same-level siblings, wrapping at the ends.
func (r *Router) moveSibling(delta int) {
	siblings := r.siblings[r.focused]
	if len(siblings) == 0 {
		return
	}
	idx := -1
	for i, id := range siblings {
		if id == r.focused {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.setFocus(siblings[0])
		return
	}
	next := (idx + delta + len(siblings)) % len(siblings)
	r.setFocus(siblings[next])
}
