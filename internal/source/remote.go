package source

import "context"

// remoteAdapter performs a fully configurable HTTP call (method, headers,
// body) against an API endpoint that returns menu records.
type remoteAdapter struct {
	cfg   Config
	fetch Fetcher
}

func (a *remoteAdapter) Config() Config {
	return a.cfg
}

func (a *remoteAdapter) Fetch(ctx context.Context) (*Result, error) {
	parsed, err := fetchJSON(ctx, a.fetch, Request{
		Method:  a.cfg.Method,
		URL:     a.cfg.URL,
		Headers: a.cfg.Headers,
		Body:    a.cfg.Body,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Records: parsed.records}, nil
}
