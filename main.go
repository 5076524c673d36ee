// Command go_ytscraper is the YouTube scraper MCP server.
//
// Exposes every endpoint of the YouTube scraper API (RapidAPI) as an MCP tool:
// search, suggestions, video detail/comments/replies, channel detail/tabs/search
// and the trending charts. Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_ytscraper/internal/toolutil"
	"github.com/anatolykoptev/go_ytscraper/internal/ytserver"
	"github.com/anatolykoptev/go_ytscraper/ytscraper"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	client, err := newClient()
	if err != nil {
		slog.Error("client init failed", slog.Any("error", err))
		os.Exit(1)
	}

	cache := toolutil.NewCache(toolutil.CacheConfig{
		RedisURL:        env.Str("REDIS_URL", ""),
		TTL:             env.Duration("CACHE_TTL", 10*time.Minute),
		MaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	})
	defer cache.Close()

	slog.Info("starting go_ytscraper",
		slog.String("port", mcpPort),
		slog.Duration("timeout", client.Timeout()),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_ytscraper",
		Version: version,
	}, nil)

	n := ytserver.RegisterTools(server, client, cache)
	slog.Info("tools registered", slog.Int("count", n))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_ytscraper",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      metricsFunc(client, cache),
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func newClient() (*ytscraper.Client, error) {
	opts := []ytscraper.Option{}

	if retries := env.Int("YT_RETRY_MAX", 0); retries > 0 {
		rc := ytscraper.DefaultRetryConfig
		rc.MaxRetries = retries
		opts = append(opts, ytscraper.WithRetry(rc))
		slog.Info("retries enabled", slog.Int("max", retries))
	}

	if limit := env.Float("YT_RATE_LIMIT", 0); limit > 0 {
		opts = append(opts, ytscraper.WithRateLimit(rate.Limit(limit), env.Int("YT_RATE_BURST", 1)))
		slog.Info("rate limit enabled", slog.Float64("rps", limit))
	}

	return ytscraper.New(ytscraper.Config{
		APIKey:  env.Str("RAPIDAPI_KEY", ""),
		Timeout: env.Duration("YT_TIMEOUT", ytscraper.DefaultTimeout),
	}, opts...)
}
