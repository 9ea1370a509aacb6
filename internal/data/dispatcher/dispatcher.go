package dispatcher

import (
	"github.com/BusselW/navmenu/internal/backend"
	"github.com/BusselW/navmenu/internal/logging"
	"github.com/BusselW/navmenu/internal/menu"
	"github.com/BusselW/navmenu/internal/state"
)

// Result reports what a watcher event changed.
type Result struct {
	TreeUpdated bool
	Dropped     int
}

// Dispatcher folds watcher poll events into the shared tree store.
type Dispatcher struct {
	layers int
	store  state.TreeStore
}

func New(layers int, store state.TreeStore) *Dispatcher {
	return &Dispatcher{layers: layers, store: store}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		logging.Error(evt.Err)
		return res
	}
	if evt.Result == nil {
		return res
	}
	for _, dropped := range evt.Result.Dropped {
		logging.Error(dropped)
	}
	d.store.SetTree(menu.Normalize(evt.Result.Records, d.layers))
	res.TreeUpdated = true
	res.Dropped = len(evt.Result.Dropped)
	return res
}
