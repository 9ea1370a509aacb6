package ui

import (
	"github.com/BusselW/navmenu/internal/controller"
	"github.com/BusselW/navmenu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

type renderEventKind int

const (
	renderMount renderEventKind = iota
	renderPhase
	renderError
	renderUnmount
)

type renderEvent struct {
	kind      renderEventKind
	tree      []*menu.Node
	submenuID string
	phase     controller.Phase
	err       error
}

// renderBridge adapts the controller's renderer notifications into Bubble
// Tea messages. The channel is buffered; when the UI loop falls behind,
// events are dropped rather than blocking a controller transition.
type renderBridge struct {
	events chan renderEvent
}

func newRenderBridge() *renderBridge {
	return &renderBridge{events: make(chan renderEvent, 32)}
}

func (b *renderBridge) push(evt renderEvent) {
	select {
	case b.events <- evt:
	default:
	}
}

func (b *renderBridge) MountTree(tree []*menu.Node) {
	b.push(renderEvent{kind: renderMount, tree: tree})
}

func (b *renderBridge) PhaseChanged(submenuID string, phase controller.Phase) {
	b.push(renderEvent{kind: renderPhase, submenuID: submenuID, phase: phase})
}

func (b *renderBridge) ShowError(err error) {
	b.push(renderEvent{kind: renderError, err: err})
}

func (b *renderBridge) Unmount() {
	b.push(renderEvent{kind: renderUnmount})
}

func waitForRenderEvent(b *renderBridge) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-b.events
		if !ok {
			return renderDoneMsg{}
		}
		return renderEventMsg{event: evt}
	}
}

type renderEventMsg struct {
	event renderEvent
}

type renderDoneMsg struct{}

func (m *Model) handleRenderEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(renderEventMsg)
	if !ok {
		return nil
	}
	m.applyRenderEvent(eventMsg.event)
	if m.bridge != nil {
		return waitForRenderEvent(m.bridge)
	}
	return nil
}

func (m *Model) handleRenderDoneMsg(msg tea.Msg) tea.Cmd {
	m.bridge = nil
	return nil
}

func (m *Model) applyRenderEvent(evt renderEvent) {
	switch evt.kind {
	case renderMount:
		m.loading = false
		m.errMsg = ""
		m.setTree(evt.tree)
	case renderPhase:
		m.rebuildRows()
	case renderError:
		m.loading = false
		if evt.err != nil {
			m.errMsg = evt.err.Error()
		}
	case renderUnmount:
		m.setTree(nil)
	}
}
