package events

import "github.com/BusselW/navmenu/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]any{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]any{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]any{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
