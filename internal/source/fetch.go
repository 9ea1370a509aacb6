package source

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// Request describes one network call an adapter wants performed.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    string
}

// Response is the status/body pair the core consumes. Nothing more of the
// transport leaks into the adapters.
type Response struct {
	Status int
	Body   []byte
}

// Fetcher is the injected network-call capability. Implementations must
// honor ctx cancellation; the returned error covers transport failures only,
// non-2xx statuses come back in Response.
type Fetcher func(ctx context.Context, req Request) (Response, error)

const defaultFetchTimeout = 15 * time.Second

// HTTPFetcher adapts a net/http client to the Fetcher contract. A nil client
// gets a sane default timeout.
func HTTPFetcher(client *http.Client) Fetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return func(ctx context.Context, req Request) (Response, error) {
		method := req.Method
		if method == "" {
			method = http.MethodGet
		}
		var body io.Reader
		if req.Body != "" {
			body = strings.NewReader(req.Body)
		}
		httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
		if err != nil {
			return Response{}, err
		}
		for key, value := range req.Headers {
			httpReq.Header.Set(key, value)
		}
		if httpReq.Header.Get("Accept") == "" {
			httpReq.Header.Set("Accept", "application/json")
		}
		resp, err := client.Do(httpReq)
		if err != nil {
			return Response{}, err
		}
		defer resp.Body.Close()
		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return Response{}, err
		}
		return Response{Status: resp.StatusCode, Body: payload}, nil
	}
}

// fetchJSON runs the request and applies the shared error taxonomy: transport
// failures, non-2xx statuses, and unparseable payloads.
func fetchJSON(ctx context.Context, fetch Fetcher, req Request) (*payload, error) {
	resp, err := fetch(ctx, req)
	if err != nil {
		return nil, &FetchError{Kind: FailNetwork, URL: req.URL, Err: err}
	}
	if resp.Status < 200 || resp.Status > 299 {
		return nil, &FetchError{Kind: FailHTTPStatus, URL: req.URL, Status: resp.Status}
	}
	parsed, err := parsePayload(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: FailParse, URL: req.URL, Err: err}
	}
	return parsed, nil
}
