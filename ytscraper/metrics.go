package ytscraper

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// metrics tracks request counters for one Transport.
type metrics struct {
	requests atomic.Int64
	errors   atomic.Int64
	retries  atomic.Int64
	byPath   sync.Map // path → *atomic.Int64
}

func (m *metrics) incrPath(path string) {
	m.requests.Add(1)
	v, _ := m.byPath.LoadOrStore(path, new(atomic.Int64))
	v.(*atomic.Int64).Add(1)
}

// snapshot returns all counters. Per-path keys look like
// "requests /api/v1/search".
func (m *metrics) snapshot() map[string]int64 {
	out := map[string]int64{
		"requests": m.requests.Load(),
		"errors":   m.errors.Load(),
		"retries":  m.retries.Load(),
	}
	m.byPath.Range(func(k, v any) bool {
		out["requests "+k.(string)] = v.(*atomic.Int64).Load()
		return true
	})
	return out
}

// format renders counters as "name value" lines, totals first.
func (m *metrics) format() string {
	snap := m.snapshot()
	var sb strings.Builder
	for _, k := range []string{"requests", "errors", "retries"} {
		fmt.Fprintf(&sb, "ytscraper_%s %d\n", k, snap[k])
		delete(snap, k)
	}
	paths := make([]string, 0, len(snap))
	for k := range snap {
		paths = append(paths, k)
	}
	sort.Strings(paths)
	for _, k := range paths {
		fmt.Fprintf(&sb, "ytscraper_path_requests{path=%q} %d\n", strings.TrimPrefix(k, "requests "), snap[k])
	}
	return sb.String()
}
