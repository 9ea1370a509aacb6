package events

import "github.com/BusselW/navmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]any) {
	logging.Trace("app.start", payload)
}

func (AppTracer) InitSkipped(reason string) {
	logging.Trace("app.init-skipped", map[string]any{"reason": reason})
}

func (AppTracer) Destroyed(timers, subscriptions int) {
	logging.Trace("app.destroy", map[string]any{
		"timers":        timers,
		"subscriptions": subscriptions,
	})
}
