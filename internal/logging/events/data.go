package events

import "github.com/BusselW/navmenu/internal/logging"

type FetchTracer struct{}

type CacheTracer struct{}

var (
	Fetch = FetchTracer{}
	Cache = CacheTracer{}
)

func (FetchTracer) Start(kind, locator string) {
	logging.Trace("fetch.start", map[string]any{"kind": kind, "locator": locator})
}

func (FetchTracer) Success(kind string, records, dropped int) {
	logging.Trace("fetch.success", map[string]any{
		"kind":    kind,
		"records": records,
		"dropped": dropped,
	})
}

func (FetchTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("fetch.error", map[string]any{"kind": kind, "error": err.Error()})
}

func (FetchTracer) RecordDropped(recordID string) {
	logging.Trace("fetch.record-dropped", map[string]any{"record": recordID})
}

func (CacheTracer) Hit(key string) {
	logging.Trace("cache.hit", map[string]any{"key": key})
}

func (CacheTracer) Miss(key string) {
	logging.Trace("cache.miss", map[string]any{"key": key})
}

func (CacheTracer) Invalidate(key string) {
	logging.Trace("cache.invalidate", map[string]any{"key": key})
}
