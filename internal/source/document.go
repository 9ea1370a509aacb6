package source

import (
	"context"
	"net/http"
)

// documentAdapter fetches a JSON document holding the nested menu tree.
type documentAdapter struct {
	cfg   Config
	fetch Fetcher
}

func (a *documentAdapter) Config() Config {
	return a.cfg
}

func (a *documentAdapter) Fetch(ctx context.Context) (*Result, error) {
	parsed, err := fetchJSON(ctx, a.fetch, Request{
		Method:  http.MethodGet,
		URL:     a.cfg.URL,
		Headers: a.cfg.Headers,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Records: parsed.records}, nil
}
