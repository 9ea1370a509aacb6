package events

import "github.com/BusselW/navmenu/internal/logging"

type MenuTracer struct{}

type RouterTracer struct{}

var (
	Menu   = MenuTracer{}
	Router = RouterTracer{}
)

func (MenuTracer) Phase(submenuID, from, to string) {
	logging.Trace("menu.phase", map[string]any{
		"submenu": submenuID,
		"from":    from,
		"to":      to,
	})
}

func (MenuTracer) Open(submenuID, trigger string) {
	logging.Trace("menu.open", map[string]any{"submenu": submenuID, "trigger": trigger})
}

func (MenuTracer) Close(submenuID, trigger string) {
	logging.Trace("menu.close", map[string]any{"submenu": submenuID, "trigger": trigger})
}

func (MenuTracer) CloseAll(count int) {
	logging.Trace("menu.close-all", map[string]any{"closed": count})
}

func (MenuTracer) Activate(itemID string, mobile bool) {
	logging.Trace("menu.activate", map[string]any{"item": itemID, "mobile": mobile})
}

func (MenuTracer) Resize(width int, aboveBreakpoint bool) {
	logging.Trace("menu.resize", map[string]any{"width": width, "above": aboveBreakpoint})
}

func (RouterTracer) Key(key string, consumed bool) {
	logging.Trace("router.key", map[string]any{"key": key, "consumed": consumed})
}

func (RouterTracer) Focus(itemID string) {
	logging.Trace("router.focus", map[string]any{"item": itemID})
}
