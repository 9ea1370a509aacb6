package backend

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BusselW/navmenu/internal/menu"
	"github.com/BusselW/navmenu/internal/source"
)

// fakeAdapter serves canned results and counts fetches.
type fakeAdapter struct {
	calls atomic.Int64
	err   error
}

func (a *fakeAdapter) Config() source.Config {
	return source.Config{Kind: source.KindStatic}
}

func (a *fakeAdapter) Fetch(ctx context.Context) (*source.Result, error) {
	a.calls.Add(1)
	if a.err != nil {
		return nil, a.err
	}
	return &source.Result{Records: []menu.RawRecord{{"id": "home", "title": "Home"}}}, nil
}

func TestWatcherEmitsOnInterval(t *testing.T) {
	adapter := &fakeAdapter{}
	w := NewWatcher(adapter, 5*time.Millisecond)
	defer w.Stop()

	for i := 0; i < 2; i++ {
		select {
		case evt := <-w.Events():
			if evt.Err != nil {
				t.Fatalf("event %d: unexpected error %v", i, evt.Err)
			}
			if len(evt.Result.Records) != 1 || evt.Result.Records[0].ID() != "home" {
				t.Fatalf("event %d: unexpected records %v", i, evt.Result.Records)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
	if adapter.calls.Load() < 2 {
		t.Fatalf("expected at least two fetches, got %d", adapter.calls.Load())
	}
}

func TestWatcherForwardsFetchErrors(t *testing.T) {
	adapter := &fakeAdapter{err: errors.New("upstream down")}
	w := NewWatcher(adapter, 5*time.Millisecond)
	defer w.Stop()

	select {
	case evt := <-w.Events():
		if evt.Err == nil {
			t.Fatal("expected error event")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error event")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	adapter := &fakeAdapter{}
	w := NewWatcher(adapter, 5*time.Millisecond)

	w.Stop()
	w.Wait()

	for range w.Events() {
		// drain anything buffered before the close
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	start := time.Now()
	th.wait()
	th.wait()
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("second call returned after %v, want at least the interval", elapsed)
	}
}

func TestThrottleZeroIntervalNeverBlocks(t *testing.T) {
	th := newThrottle(0)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			th.wait()
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("zero-interval throttle must not block")
	}
}
