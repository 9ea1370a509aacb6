package ui

import (
	"github.com/BusselW/navmenu/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForWatcherEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return watcherDoneMsg{}
		}
		return watcherEventMsg{event: evt}
	}
}

type watcherEventMsg struct {
	event backend.Event
}

type watcherDoneMsg struct{}

func (m *Model) handleWatcherEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(watcherEventMsg)
	if !ok {
		return nil
	}
	m.applyWatcherEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForWatcherEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleWatcherDoneMsg(msg tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applyWatcherEvent folds a background poll into the controller. The remount
// flows back to the model through the render bridge, so no row rebuilding
// happens here.
func (m *Model) applyWatcherEvent(evt backend.Event) {
	if evt.Err != nil {
		m.errMsg = evt.Err.Error()
		return
	}
	if m.disp != nil {
		m.disp.Handle(evt)
	}
	if evt.Result == nil {
		return
	}
	if err := m.ctrl.ReplaceData(evt.Result); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}
