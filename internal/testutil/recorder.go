package testutil

import (
	"fmt"
	"sync"

	"github.com/BusselW/navmenu/internal/controller"
	"github.com/BusselW/navmenu/internal/menu"
)

// RendererRecorder captures every renderer notification in order.
type RendererRecorder struct {
	mu     sync.Mutex
	events []string

	Trees  [][]*menu.Node
	Errors []error
}

func NewRendererRecorder() *RendererRecorder {
	return &RendererRecorder{}
}

func (r *RendererRecorder) MountTree(tree []*menu.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Trees = append(r.Trees, tree)
	r.events = append(r.events, fmt.Sprintf("mount(%d)", len(tree)))
}

func (r *RendererRecorder) PhaseChanged(submenuID string, phase controller.Phase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf("phase(%s,%s)", submenuID, phase))
}

func (r *RendererRecorder) ShowError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, err)
	r.events = append(r.events, "error")
}

func (r *RendererRecorder) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "unmount")
}

// Events returns the notification log so far.
func (r *RendererRecorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// CallbackRecorder collects lifecycle callback invocations.
type CallbackRecorder struct {
	mu sync.Mutex

	Inits  int
	Opens  []string
	Closes []string
	Clicks []string
	Loads  int
	Errors []error
}

func NewCallbackRecorder() *CallbackRecorder {
	return &CallbackRecorder{}
}

// Callbacks returns a callback set wired to the recorder.
func (r *CallbackRecorder) Callbacks() controller.Callbacks {
	return controller.Callbacks{
		OnMenuInit: func(*controller.Controller) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.Inits++
		},
		OnMenuOpen: func(evt controller.OpenEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.Opens = append(r.Opens, evt.Submenu)
		},
		OnMenuClose: func(evt controller.OpenEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.Closes = append(r.Closes, evt.Submenu)
		},
		OnItemClick: func(evt controller.ItemEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			if evt.Item != nil {
				r.Clicks = append(r.Clicks, evt.Item.ID)
			}
		},
		OnDataLoad: func([]*menu.Node) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.Loads++
		},
		OnError: func(err error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.Errors = append(r.Errors, err)
		},
	}
}

// Snapshot returns copies of the recorded slices for assertions.
func (r *CallbackRecorder) Snapshot() (opens, closes, clicks []string, errs []error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Opens...),
		append([]string(nil), r.Closes...),
		append([]string(nil), r.Clicks...),
		append([]error(nil), r.Errors...)
}
