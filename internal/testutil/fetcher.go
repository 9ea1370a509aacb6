// Package testutil provides deterministic fakes for exercising the data
// pipeline and the controller state machine without real HTTP or timers.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/BusselW/navmenu/internal/source"
)

// StaticFetcher returns a fetcher that serves the given payload for every
// request and counts how often it was called.
func StaticFetcher(payload any) (source.Fetcher, *atomic.Int64) {
	calls := &atomic.Int64{}
	body, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Sprintf("testutil: marshal payload: %v", err))
	}
	fetch := func(ctx context.Context, req source.Request) (source.Response, error) {
		calls.Add(1)
		return source.Response{Status: http.StatusOK, Body: body}, nil
	}
	return fetch, calls
}

// StatusFetcher returns a fetcher that always answers with the given HTTP
// status and body.
func StatusFetcher(status int, body string) source.Fetcher {
	return func(ctx context.Context, req source.Request) (source.Response, error) {
		return source.Response{Status: status, Body: []byte(body)}, nil
	}
}

// ErrorFetcher returns a fetcher that always fails with err.
func ErrorFetcher(err error) source.Fetcher {
	return func(ctx context.Context, req source.Request) (source.Response, error) {
		return source.Response{}, err
	}
}
