package ytscraper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the upstream scraping API.
	DefaultBaseURL = "https://youtube-scraper-api-v21.p.rapidapi.com"
	// APIHost is sent in the host-identifier header on every request.
	APIHost = "youtube-scraper-api-v21.p.rapidapi.com"
	// DefaultTimeout applies when Config.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	headerAPIKey = "x-rapidapi-key"
	headerHost   = "x-rapidapi-host"
)

// HTTPDoer is the HTTP collaborator a Transport sends requests through.
// *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Transport is bound to a base URL and fixed headers at construction and is
// shared read-only by all resource services. Safe for concurrent use.
type Transport struct {
	baseURL string
	headers http.Header
	timeout time.Duration
	doer    HTTPDoer
	retry   RetryConfig
	limiter *rate.Limiter // nil = unlimited
	metrics metrics
}

func newDefaultHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     60 * time.Second,
		},
	}
}

// Timeout returns the per-request timeout.
func (t *Transport) Timeout() time.Duration { return t.timeout }

// Get issues one GET against path with q and returns the body verbatim.
// Any failure is reported as *TransportError.
func (t *Transport) Get(ctx context.Context, path string, q Query) (json.RawMessage, error) {
	t.metrics.incrPath(path)

	attempts := 0
	body, err := retryDo(ctx, t.retry, func() (json.RawMessage, error) {
		attempts++
		if attempts > 1 {
			t.metrics.retries.Add(1)
		}
		return t.do(ctx, path, q)
	})
	if err != nil {
		t.metrics.errors.Add(1)
		var te *TransportError
		if !errors.As(err, &te) {
			// Caller context ended between attempts.
			err = &TransportError{Method: http.MethodGet, Path: path, Err: err}
		}
		return nil, err
	}
	return body, nil
}

func (t *Transport) do(ctx context.Context, path string, q Query) (json.RawMessage, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Method: http.MethodGet, Path: path, Err: fmt.Errorf("rate limit: %w", err)}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url(path, q), nil)
	if err != nil {
		return nil, &TransportError{Method: http.MethodGet, Path: path, Err: fmt.Errorf("build request: %w", err)}
	}
	for k, v := range t.headers {
		req.Header[k] = v
	}

	start := time.Now()
	resp, err := t.doer.Do(req)
	if err != nil {
		return nil, &TransportError{Method: http.MethodGet, Path: path, Err: err}
	}
	defer resp.Body.Close()

	slog.Debug("ytscraper: request",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &TransportError{
			Method:     http.MethodGet,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       snippet,
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: http.MethodGet, Path: path, Err: fmt.Errorf("read body: %w", err)}
	}
	return json.RawMessage(data), nil
}

func (t *Transport) url(path string, q Query) string {
	u := t.baseURL + path
	if q.Len() > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// get dispatches params on path. Every resource method goes through here.
func (t *Transport) get(ctx context.Context, path string, p interface{ Query() Query }) (json.RawMessage, error) {
	return t.Get(ctx, path, p.Query())
}

func fixedHeaders(apiKey string) http.Header {
	h := make(http.Header, 3)
	h.Set(headerAPIKey, apiKey)
	h.Set(headerHost, APIHost)
	h.Set("Content-Type", "application/json")
	return h
}

func trimBaseURL(s string) string {
	return strings.TrimRight(s, "/")
}
