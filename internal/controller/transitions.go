package controller

import (
	"github.com/BusselW/navmenu/internal/config"
	"github.com/BusselW/navmenu/internal/logging/events"
)

// HoverEnter reacts to the pointer entering an item that owns a submenu.
// Any pending close on the submenu or its ancestors is canceled (re-entry by
// a descendant keeps the chain open), then the open timer is armed. At or
// below the mobile breakpoint hover never opens anything: click semantics
// apply there regardless of the configured trigger.
func (c *Controller) HoverEnter(submenuID string) {
	c.mu.Lock()
	defer c.flushLocked()
	if !c.hoverActiveLocked() {
		return
	}
	st, ok := c.states[submenuID]
	if !ok {
		return
	}
	c.cancelCloseChainLocked(submenuID)
	if st.phase == PhaseOpen || st.phase == PhaseOpening {
		return
	}
	st.cancelTimer()
	st.phase = PhaseOpening
	events.Menu.Phase(submenuID, PhaseClosed.String(), PhaseOpening.String())
	seq := st.seq
	st.timer = c.sched.AfterFunc(c.opts.HoverDelay, func() {
		c.openTimerFired(submenuID, seq)
	})
}

// HoverLeave arms the close timer. A leave before the open timer expires
// cancels the open outright: the submenu never reaches Open.
func (c *Controller) HoverLeave(submenuID string) {
	c.mu.Lock()
	defer c.flushLocked()
	if !c.hoverActiveLocked() {
		return
	}
	st, ok := c.states[submenuID]
	if !ok {
		return
	}
	switch st.phase {
	case PhaseOpening:
		st.cancelTimer()
		st.phase = PhaseClosed
		events.Menu.Phase(submenuID, PhaseOpening.String(), PhaseClosed.String())
	case PhaseOpen:
		st.cancelTimer()
		st.phase = PhaseClosing
		events.Menu.Phase(submenuID, PhaseOpen.String(), PhaseClosing.String())
		seq := st.seq
		st.timer = c.sched.AfterFunc(c.opts.CloseDelay, func() {
			c.closeTimerFired(submenuID, seq)
		})
	}
}

func (c *Controller) openTimerFired(submenuID string, seq uint64) {
	c.mu.Lock()
	defer c.flushLocked()
	st, ok := c.states[submenuID]
	if !ok || st.seq != seq || st.phase != PhaseOpening {
		return
	}
	st.timer = nil
	c.openLocked(submenuID, "hover")
}

func (c *Controller) closeTimerFired(submenuID string, seq uint64) {
	c.mu.Lock()
	defer c.flushLocked()
	st, ok := c.states[submenuID]
	if !ok || st.seq != seq || st.phase != PhaseClosing {
		return
	}
	st.timer = nil
	c.closeLocked(submenuID, "hover")
}

// Activate is a click on an item, and the path every trigger takes at or
// below the mobile breakpoint. An open target closes; anything else first
// forces every open submenu tree-wide to Closed, then opens the target:
// at most one open submenu path exists system-wide.
func (c *Controller) Activate(itemID string) {
	c.mu.Lock()
	defer c.flushLocked()
	if !c.initialized || c.destroyed {
		return
	}
	if _, ok := c.nodes[itemID]; !ok {
		return
	}
	events.Menu.Activate(itemID, c.mobileWidthLocked())
	c.invokeItemClickLocked(itemID)
	st, ok := c.states[itemID]
	if !ok {
		// Leaf item: nothing to toggle.
		return
	}
	if st.phase == PhaseOpen {
		c.closeLocked(itemID, "activate")
		return
	}
	c.closeAllLocked("activate")
	c.openLocked(itemID, "activate")
}

// OutsideClick closes everything when the host reports a click outside the
// menu container.
func (c *Controller) OutsideClick() {
	c.mu.Lock()
	defer c.flushLocked()
	if !c.opts.CloseOnOutsideClick {
		return
	}
	c.closeAllLocked("outside-click")
}

// Escape closes everything on the Escape key.
func (c *Controller) Escape() {
	c.mu.Lock()
	defer c.flushLocked()
	if !c.opts.CloseOnEscape {
		return
	}
	c.closeAllLocked("escape")
}

// Resize records the new viewport width. Crossing above the mobile
// breakpoint resets the mobile toggle affordance and collapses the
// top-level mobile list; submenu states are untouched.
func (c *Controller) Resize(width int) {
	c.mu.Lock()
	defer c.flushLocked()
	wasMobile := !c.viewportAboveBreakpointLocked()
	c.viewportWide = width
	above := c.viewportAboveBreakpointLocked()
	events.Menu.Resize(width, above)
	if wasMobile && above {
		c.mobileOpen = false
	}
}

// ToggleMobileMenu flips the collapsed top-level list under the breakpoint.
func (c *Controller) ToggleMobileMenu() {
	c.mu.Lock()
	defer c.flushLocked()
	if !c.mobileWidthLocked() {
		return
	}
	c.mobileOpen = !c.mobileOpen
}

// MobileOpen reports whether the collapsed mobile list is expanded.
func (c *Controller) MobileOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mobileOpen
}

func (c *Controller) hoverActiveLocked() bool {
	if !c.initialized || c.destroyed {
		return false
	}
	if c.opts.TriggerType != config.TriggerHover {
		return false
	}
	return !c.mobileWidthLocked()
}

func (c *Controller) mobileWidthLocked() bool {
	return c.viewportWide > 0 && c.viewportWide <= c.opts.MobileBreakpoint
}

func (c *Controller) viewportAboveBreakpointLocked() bool {
	return c.viewportWide > c.opts.MobileBreakpoint
}

// cancelCloseChainLocked walks from submenuID to the root, reverting any
// submenu caught mid-close back to Open.
func (c *Controller) cancelCloseChainLocked(submenuID string) {
	for id := submenuID; id != ""; id = c.parents[id] {
		st, ok := c.states[id]
		if !ok {
			continue
		}
		if st.phase == PhaseClosing {
			st.cancelTimer()
			st.phase = PhaseOpen
			events.Menu.Phase(id, PhaseClosing.String(), PhaseOpen.String())
		}
	}
}

func (c *Controller) openLocked(submenuID, trigger string) {
	st, ok := c.states[submenuID]
	if !ok || st.phase == PhaseOpen {
		return
	}
	from := st.phase
	st.cancelTimer()
	st.phase = PhaseOpen
	events.Menu.Phase(submenuID, from.String(), PhaseOpen.String())
	events.Menu.Open(submenuID, trigger)
	c.enqueue(func() { c.renderer.PhaseChanged(submenuID, PhaseOpen) })
	if cb := c.callbacks.OnMenuOpen; cb != nil {
		evt := OpenEvent{Trigger: trigger, Submenu: submenuID}
		c.enqueue(func() { cb(evt) })
	}
}

func (c *Controller) closeLocked(submenuID, trigger string) {
	st, ok := c.states[submenuID]
	if !ok || st.phase == PhaseClosed {
		return
	}
	from := st.phase
	st.cancelTimer()
	st.phase = PhaseClosed
	events.Menu.Phase(submenuID, from.String(), PhaseClosed.String())
	events.Menu.Close(submenuID, trigger)
	c.enqueue(func() { c.renderer.PhaseChanged(submenuID, PhaseClosed) })
	if from == PhaseOpen || from == PhaseClosing {
		if cb := c.callbacks.OnMenuClose; cb != nil {
			evt := OpenEvent{Trigger: trigger, Submenu: submenuID}
			c.enqueue(func() { cb(evt) })
		}
	}
}

// closeAllLocked forces every non-closed submenu to Closed, in tree order.
func (c *Controller) closeAllLocked(trigger string) {
	closed := 0
	for _, id := range c.order {
		st := c.states[id]
		if st.phase == PhaseClosed {
			continue
		}
		c.closeLocked(id, trigger)
		closed++
	}
	if closed > 0 {
		events.Menu.CloseAll(closed)
	}
}

func (c *Controller) invokeItemClickLocked(itemID string) {
	cb := c.callbacks.OnItemClick
	if cb == nil {
		return
	}
	node := c.nodes[itemID]
	submenu := ""
	if node.HasChildren() {
		submenu = itemID
	}
	evt := ItemEvent{Trigger: itemID, Submenu: submenu, Item: node.Clone()}
	c.enqueue(func() { cb(evt) })
}
