package engine

import (
	"strings"
	"testing"
)

func TestInitDefaults(t *testing.T) {
	t.Cleanup(func() { Init(Config{}) })

	Init(Config{YouTubeAPIKey: "k"})
	if Cfg.YouTubeAPIKey != "k" {
		t.Errorf("YouTubeAPIKey = %q", Cfg.YouTubeAPIKey)
	}
	if Cfg.SearchMaxResults != DefaultSearchMaxResults {
		t.Errorf("SearchMaxResults = %d, want %d", Cfg.SearchMaxResults, DefaultSearchMaxResults)
	}
	if Cfg.PlaylistPageSize != DefaultPlaylistPageSize {
		t.Errorf("PlaylistPageSize = %d, want %d", Cfg.PlaylistPageSize, DefaultPlaylistPageSize)
	}
	if Cfg.MaxPlaylistPages != DefaultMaxPlaylistPages {
		t.Errorf("MaxPlaylistPages = %d, want %d", Cfg.MaxPlaylistPages, DefaultMaxPlaylistPages)
	}
}

func TestInitKeepsExplicitLimits(t *testing.T) {
	t.Cleanup(func() { Init(Config{}) })

	Init(Config{SearchMaxResults: 25, PlaylistPageSize: 10, MaxPlaylistPages: 3})
	if Cfg.SearchMaxResults != 25 || Cfg.PlaylistPageSize != 10 || Cfg.MaxPlaylistPages != 3 {
		t.Errorf("limits overwritten: %+v", *Cfg)
	}
}

func TestInitClampsPageSize(t *testing.T) {
	t.Cleanup(func() { Init(Config{}) })

	Init(Config{PlaylistPageSize: 500})
	if Cfg.PlaylistPageSize != DefaultPlaylistPageSize {
		t.Errorf("PlaylistPageSize = %d, want clamp to %d", Cfg.PlaylistPageSize, DefaultPlaylistPageSize)
	}
}

func TestFormatMetrics(t *testing.T) {
	before := GetMetrics()["page_limit_hits"]
	IncrPageLimitHit()
	if got := GetMetrics()["page_limit_hits"]; got != before+1 {
		t.Errorf("page_limit_hits = %d, want %d", got, before+1)
	}

	out := FormatMetrics()
	for _, k := range []string{"channel_search_requests", "playlist_page_requests", "upstream_errors", "page_limit_hits"} {
		if !strings.Contains(out, k+" ") {
			t.Errorf("FormatMetrics missing %q:\n%s", k, out)
		}
	}
}
