package backend

import (
	"context"
	"sync"
	"time"

	"github.com/BusselW/navmenu/internal/source"
)

// Event conveys a refreshed record set or an error from a source poll.
type Event struct {
	Result *source.Result
	Err    error
}

// Watcher re-fetches the data source at a fixed interval and publishes
// events, so long-lived menus can pick up upstream edits without a manual
// refresh.
type Watcher struct {
	adapter  source.Adapter
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls the adapter every interval.
func NewWatcher(adapter source.Adapter, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		adapter:  adapter,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	throttle := newThrottle(interval / 4)
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) (*source.Result, error) {
		throttle.wait()
		return w.adapter.Fetch(ctx)
	})

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of poll events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(fetch func(context.Context) (*source.Result, error)) {
	defer w.wg.Done()

	emit := func() bool {
		result, err := fetch(w.ctx)
		evt := Event{Result: result, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
