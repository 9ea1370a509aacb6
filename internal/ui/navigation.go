package ui

import (
	"fmt"

	"github.com/BusselW/navmenu/internal/menu"
	"github.com/BusselW/navmenu/internal/router"
	"github.com/BusselW/navmenu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up", "ctrl+p":
		m.moveCursor(-1)
		return nil
	case "down", "ctrl+n":
		m.moveCursor(1)
		return nil
	case "home":
		if m.list.MoveCursorHome() {
			m.afterCursorMove()
		}
		m.forwardKey(router.KeyHome)
		return nil
	case "end":
		if m.list.MoveCursorEnd() {
			m.afterCursorMove()
		}
		m.forwardKey(router.KeyEnd)
		return nil
	case "left":
		if m.list.Filter != "" {
			return m.moveFilterCursor(-1)
		}
		m.forwardKey(router.KeyLeft)
		m.followFocus()
		return nil
	case "right":
		if m.list.Filter != "" {
			return m.moveFilterCursor(1)
		}
		m.forwardKey(router.KeyRight)
		m.followFocus()
		return nil
	case "tab":
		return m.handleToggleKey()
	}
	if handled, cmd := m.handleTextInput(key); handled {
		return cmd
	}
	return nil
}

// handleEscapeKey clears an active filter first; with no filter it runs the
// close contract, and quits once there is nothing left to close.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.list.Filter != "" {
		before := m.list.FilterCursor
		m.list.ClearFilter()
		m.noteFilterCursorChange(before)
		m.rebuildRows()
		return nil
	}
	if m.rtr != nil && m.anyOpenSubmenu() {
		m.rtr.HandleKey(router.KeyEscape)
		m.rebuildRows()
		return nil
	}
	return tea.Quit
}

// handleEnterKey activates the row under the cursor. Submenu triggers
// toggle through the controller; leaf items run the navigate action on the
// command bus.
func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	id := m.list.CurrentID()
	if id == "" {
		return nil
	}
	if m.list.Filter != "" {
		before := m.list.FilterCursor
		m.list.ClearFilter()
		m.noteFilterCursorChange(before)
		m.rebuildRows()
		if idx := m.list.IndexOf(id); idx >= 0 {
			m.list.Cursor = idx
		}
	}
	node, ok := m.nodes[id]
	if !ok {
		return nil
	}
	if m.rtr != nil {
		m.rtr.Click(id)
	}
	m.rebuildRows()
	if node.HasChildren() {
		return nil
	}
	m.loading = true
	m.pendingID = id
	m.pendingLabel = node.Title
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Execute(command.Request{
		ID:    id,
		Label: node.Title,
		Run:   m.navigateAction(node),
	})
}

// handleToggleKey opens or closes the submenu under the cursor without
// navigating.
func (m *Model) handleToggleKey() tea.Cmd {
	id := m.list.CurrentID()
	node, ok := m.nodes[id]
	if !ok || !node.HasChildren() {
		return nil
	}
	if m.rtr != nil {
		m.rtr.Click(id)
	}
	m.rebuildRows()
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ActionResult)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		return nil
	}
	if node, ok := m.nodes[result.ID]; ok && node.Target != "" {
		m.setInfo(fmt.Sprintf("%s → %s", result.Label, node.Target))
	}
	return nil
}

// navigateAction resolves what activating a leaf item does. Items without a
// target are inert.
func (m *Model) navigateAction(node *menu.Node) func() error {
	if node.Target == "" {
		return nil
	}
	return func() error { return nil }
}

func (m *Model) moveCursor(delta int) {
	if m.list.MoveCursor(delta) {
		m.afterCursorMove()
	}
}

func (m *Model) afterCursorMove() {
	m.syncViewport()
	m.syncFocus()
}

// forwardKey runs the roving-focus contract for keys the list view does not
// own directly.
func (m *Model) forwardKey(key router.Key) {
	if m.rtr != nil {
		m.rtr.HandleKey(key)
	}
}

// followFocus moves the list cursor onto the row holding the roving focus.
func (m *Model) followFocus() {
	if m.rtr == nil {
		return
	}
	if idx := m.list.IndexOf(m.rtr.Focused()); idx >= 0 {
		m.list.Cursor = idx
		m.syncViewport()
	}
}

func (m *Model) anyOpenSubmenu() bool {
	for id, node := range m.nodes {
		if node.HasChildren() && isVisible(m.ctrl.Phase(id)) {
			return true
		}
	}
	return false
}
