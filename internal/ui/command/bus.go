package command

import (
	"github.com/BusselW/navmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an item activation.
type Request struct {
	ID    string
	Label string
	Run   func() error
}

// ActionResult reports a completed activation back to the UI loop.
type ActionResult struct {
	ID    string
	Label string
	Err   error
}

// Bus coordinates the execution of item activations.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an activation into a Bubble Tea command while emitting trace
// logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.NoOp(req.ID, req.Label)
			return ActionResult{ID: req.ID, Label: req.Label}
		}
		err := req.Run()
		events.Command.Result(req.ID, req.Label, err)
		return ActionResult{ID: req.ID, Label: req.Label, Err: err}
	}
}
