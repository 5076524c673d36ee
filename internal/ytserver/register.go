// Package ytserver exposes every YouTube scraper operation as an MCP tool.
package ytserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go_ytscraper/internal/toolutil"
	"github.com/anatolykoptev/go_ytscraper/ytscraper"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Output is the structured result of every tool.
type Output struct {
	Endpoint string `json:"endpoint"`
	Query    string `json:"query,omitempty"`
	Data     any    `json:"data"`
}

// call is one prepared upstream request.
type call struct {
	path  string
	query ytscraper.Query
	fetch func(context.Context) (json.RawMessage, error)
}

// RegisterTools registers all tools on server. cache may be nil.
func RegisterTools(server *mcp.Server, client *ytscraper.Client, cache *toolutil.Cache) int {
	n := 0
	n += registerExploreTools(server, client, cache)
	n += registerVideoTools(server, client, cache)
	n += registerChannelTools(server, client, cache)
	n += registerTrendingTools(server, client, cache)
	return n
}

func addTool[In any](server *mcp.Server, cache *toolutil.Cache, name, description string, build func(In) (call, error)) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        name,
		Description: description,
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, Output, error) {
		c, err := build(input)
		if err != nil {
			return nil, Output{}, err
		}
		out, err := run(ctx, cache, name, c)
		if err != nil {
			return nil, Output{}, err
		}
		return nil, out, nil
	})
}

// run executes c, consulting the cache first.
func run(ctx context.Context, cache *toolutil.Cache, tool string, c call) (Output, error) {
	encoded := c.query.Encode()
	cacheKey := toolutil.CacheKey(c.path, encoded)
	if out, ok := toolutil.LoadJSON[Output](ctx, cache, cacheKey); ok {
		return out, nil
	}

	start := time.Now()
	payload, err := c.fetch(ctx)
	if err != nil {
		slog.Warn(tool+" error", slog.String("endpoint", c.path), slog.Any("error", err))
		return Output{}, fmt.Errorf("%s failed: %w", tool, err)
	}
	slog.Info(tool, slog.String("endpoint", c.path), slog.Int("bytes", len(payload)), slog.Duration("elapsed", time.Since(start)))

	out := Output{Endpoint: c.path, Query: encoded, Data: decodePayload(payload)}
	toolutil.StoreJSON(ctx, cache, cacheKey, out)
	return out, nil
}

// decodePayload turns the raw body into a JSON value; non-JSON bodies are
// passed through as a string.
func decodePayload(payload json.RawMessage) any {
	var v any
	if err := json.Unmarshal(payload, &v); err != nil {
		return string(payload)
	}
	return v
}

func required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func checkDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("20060102", value); err != nil {
		return fmt.Errorf("filter_by_date must be YYYYMMDD, got %q", value)
	}
	return nil
}

func locale(gl, hl string) ytscraper.Locale {
	return ytscraper.Locale{GL: toolutil.Opt(gl), HL: toolutil.Opt(hl)}
}
