package ytscraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorded is one request seen by the fake upstream.
type recorded struct {
	Path     string
	RawQuery string
	Header   http.Header
}

type fakeUpstream struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	body     string
	srv      *httptest.Server
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{status: http.StatusOK, body: `{"ok":true}`}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, recorded{Path: r.URL.Path, RawQuery: r.URL.RawQuery, Header: r.Header.Clone()})
		status, body := f.status, f.body
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeUpstream) last(t *testing.T) recorded {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request reached the fake upstream")
	return f.requests[len(f.requests)-1]
}

func (f *fakeUpstream) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestClient(t *testing.T, f *fakeUpstream, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithBaseURL(f.srv.URL)}, opts...)
	c, err := New(Config{APIKey: "test-key"}, opts...)
	require.NoError(t, err)
	return c
}

func TestNewRequiresAPIKey(t *testing.T) {
	c, err := New(Config{})
	require.Error(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{APIKey: "k", Timeout: -time.Second})
	assert.ErrorIs(t, err, ErrInvalidTimeout)

	_, err = New(Config{APIKey: "k"}, WithBaseURL("not a url"))
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewDefaults(t *testing.T) {
	c, err := New(Config{APIKey: "k"})
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, c.Timeout())
	assert.Equal(t, DefaultTimeout, c.Transport().Timeout())
	assert.Equal(t, DefaultBaseURL, c.transport.baseURL)
	assert.NotNil(t, c.Explore())
	assert.NotNil(t, c.Video())
	assert.NotNil(t, c.Channel())
	assert.NotNil(t, c.Trending())
	assert.Same(t, c.transport, c.Video().t)
	assert.Same(t, c.transport, c.Trending().t)
}

func TestNewCustomTimeout(t *testing.T) {
	c, err := New(Config{APIKey: "k", Timeout: 5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, c.Timeout())
}

func TestFixedHeaders(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f)

	_, err := c.Video().Detail(context.Background(), VideoDetailParams{VideoID: "abc"})
	require.NoError(t, err)

	h := f.last(t).Header
	assert.Equal(t, "test-key", h.Get("x-rapidapi-key"))
	assert.Equal(t, "youtube-scraper-api-v21.p.rapidapi.com", h.Get("x-rapidapi-host"))
	assert.Equal(t, "application/json", h.Get("Content-Type"))
}

func TestPayloadReturnedVerbatim(t *testing.T) {
	f := newFakeUpstream(t)
	f.body = `{"items": [ 1, 2 ],"continuation":"X=="}`
	c := newTestClient(t, f)

	got, err := c.Explore().Suggestions(context.Background(), SuggestionsParams{Keyword: "go"})
	require.NoError(t, err)
	assert.Equal(t, f.body, string(got))
}

func TestUpstreamErrorIsTransportError(t *testing.T) {
	f := newFakeUpstream(t)
	f.status = http.StatusInternalServerError
	f.body = `{"message":"boom"}`
	c := newTestClient(t, f)

	got, err := c.Explore().Search(context.Background(), SearchParams{Keyword: "lofi"})
	require.Error(t, err)
	assert.Nil(t, got)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
	assert.Equal(t, PathSearch, te.Path)
	assert.Equal(t, http.MethodGet, te.Method)
	assert.Contains(t, string(te.Body), "boom")
	assert.Equal(t, 1, f.count(), "no retry by default")
}

func TestNetworkFailureIsTransportError(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f)
	f.srv.Close()

	_, err := c.Trending().Video(context.Background(), TrendingVideoParams{})
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.StatusCode)
	assert.NotNil(t, te.Err)
}

func TestTimeoutIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "k", Timeout: 20 * time.Millisecond}, WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.Video().Detail(context.Background(), VideoDetailParams{VideoID: "v"})
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetryOptIn(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	rc := RetryConfig{MaxRetries: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
	c, err := New(Config{APIKey: "k"}, WithBaseURL(srv.URL), WithRetry(rc))
	require.NoError(t, err)

	got, err := c.Explore().Suggestions(context.Background(), SuggestionsParams{Keyword: "x"})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
	assert.Equal(t, 3, calls)
	assert.Equal(t, int64(2), c.Metrics()["retries"])
}

func TestRateLimitedClientStillDispatches(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f, WithRateLimit(1000, 2))

	for i := 0; i < 3; i++ {
		_, err := c.Trending().Song(context.Background(), SongParams{})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, f.count())
}

func TestRateLimitHonorsContext(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f, WithRateLimit(0.001, 1))

	_, err := c.Trending().Song(context.Background(), SongParams{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.Trending().Song(ctx, SongParams{})
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 1, f.count())
}

func TestIdenticalCallsRedispatch(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f)
	p := ChannelDetailParams{ChannelID: "UC1"}

	for i := 0; i < 2; i++ {
		_, err := c.Channel().Detail(context.Background(), p)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, f.count())
}

func TestConcurrentCalls(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Channel().Videos(context.Background(), ChannelPageParams{ChannelID: "UC1"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, f.count())
	assert.Equal(t, int64(20), c.Metrics()["requests "+PathChannelVideos])
}

func TestMetricsFormat(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f)

	_, _ = c.Explore().Search(context.Background(), SearchParams{Keyword: "a"})
	f.status = http.StatusBadGateway
	_, _ = c.Explore().Search(context.Background(), SearchParams{Keyword: "b"})

	m := c.Metrics()
	assert.Equal(t, int64(2), m["requests"])
	assert.Equal(t, int64(1), m["errors"])

	text := c.FormatMetrics()
	assert.Contains(t, text, "ytscraper_requests 2\n")
	assert.Contains(t, text, "ytscraper_errors 1\n")
	assert.Contains(t, text, `ytscraper_path_requests{path="/api/v1/search"} 2`)
}
