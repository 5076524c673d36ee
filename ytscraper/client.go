// Package ytscraper is a typed client for the YouTube scraper API on RapidAPI.
//
// Each resource service turns a parameter struct into one GET request and
// returns the response body untouched. Optional parameters are pointers;
// nil fields are left out of the query string entirely. Pagination is driven
// by the caller: copy the continuation token from one response into the
// Continuation field of the next call.
//
//	c, err := ytscraper.New(ytscraper.Config{APIKey: key})
//	page, err := c.Channel().Videos(ctx, ytscraper.ChannelPageParams{ChannelID: "UC..."})
package ytscraper

import (
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Config is the client configuration.
type Config struct {
	APIKey  string
	Timeout time.Duration // per request; 0 = DefaultTimeout
}

// Option customizes a Client beyond Config.
type Option func(*options)

type options struct {
	doer    HTTPDoer
	baseURL string
	retry   RetryConfig
	limit   rate.Limit
	burst   int
}

// WithHTTPClient sends requests through doer instead of the default pooled client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(o *options) { o.doer = doer }
}

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithRetry enables retries of transient failures (429, 5xx, network errors).
func WithRetry(rc RetryConfig) Option {
	return func(o *options) { o.retry = rc }
}

// WithRateLimit caps outbound requests at limit per second with the given burst.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(o *options) {
		o.limit = limit
		o.burst = burst
	}
}

// Client is the entry point. Its services share one Transport and are safe
// for concurrent use.
type Client struct {
	transport *Transport
	explore   *ExploreService
	video     *VideoService
	channel   *ChannelService
	trending  *TrendingService
}

// New validates cfg and builds a Client. Errors wrap ErrConfiguration.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Timeout < 0 {
		return nil, ErrInvalidTimeout
	}

	o := options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	u, err := url.Parse(o.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if o.doer == nil {
		o.doer = newDefaultHTTPClient()
	}

	t := &Transport{
		baseURL: trimBaseURL(o.baseURL),
		headers: fixedHeaders(cfg.APIKey),
		timeout: timeout,
		doer:    o.doer,
		retry:   o.retry,
	}
	if o.limit > 0 {
		burst := o.burst
		if burst < 1 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(o.limit, burst)
	}

	return &Client{
		transport: t,
		explore:   &ExploreService{t: t},
		video:     &VideoService{t: t},
		channel:   &ChannelService{t: t},
		trending:  &TrendingService{t: t},
	}, nil
}

func (c *Client) Explore() *ExploreService   { return c.explore }
func (c *Client) Video() *VideoService       { return c.video }
func (c *Client) Channel() *ChannelService   { return c.channel }
func (c *Client) Trending() *TrendingService { return c.trending }

// Transport returns the shared transport, for issuing raw requests.
func (c *Client) Transport() *Transport { return c.transport }

// Timeout returns the effective per-request timeout.
func (c *Client) Timeout() time.Duration { return c.transport.timeout }

// Metrics returns a snapshot of request counters.
func (c *Client) Metrics() map[string]int64 { return c.transport.metrics.snapshot() }

// FormatMetrics renders request counters as plain text.
func (c *Client) FormatMetrics() string { return c.transport.metrics.format() }
