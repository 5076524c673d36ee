package main

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_ytscraper/internal/toolutil"
	"github.com/anatolykoptev/go_ytscraper/ytscraper"
)

// metricsFunc renders client counters followed by cache stats.
func metricsFunc(client *ytscraper.Client, cache *toolutil.Cache) func() string {
	return func() string {
		var sb strings.Builder
		sb.WriteString(client.FormatMetrics())
		hits, misses := cache.Stats()
		fmt.Fprintf(&sb, "cache_hits %d\n", hits)
		fmt.Fprintf(&sb, "cache_misses %d\n", misses)
		return sb.String()
	}
}
