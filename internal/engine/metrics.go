package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ChannelSearchRequests atomic.Int64
	PlaylistListRequests  atomic.Int64
	PlaylistPageRequests  atomic.Int64
	UpstreamErrors        atomic.Int64
	PageLimitHits         atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"channel_search_requests": metrics.ChannelSearchRequests.Load(),
		"playlist_list_requests":  metrics.PlaylistListRequests.Load(),
		"playlist_page_requests":  metrics.PlaylistPageRequests.Load(),
		"upstream_errors":         metrics.UpstreamErrors.Load(),
		"page_limit_hits":         metrics.PageLimitHits.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"channel_search_requests",
		"playlist_list_requests", "playlist_page_requests",
		"upstream_errors", "page_limit_hits",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sources/ sub-package.
func IncrChannelSearch() { metrics.ChannelSearchRequests.Add(1) }
func IncrPlaylistList() { metrics.PlaylistListRequests.Add(1) }
func IncrPlaylistPage() { metrics.PlaylistPageRequests.Add(1) }
func IncrUpstreamError() { metrics.UpstreamErrors.Add(1) }
func IncrPageLimitHit() { metrics.PageLimitHits.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
