package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	YouTubeAPIKey      string
	YouTubeAPIEndpoint string // empty = library default (https://youtube.googleapis.com/)
	SearchMaxResults   int
	PlaylistPageSize   int
	MaxPlaylistPages   int // 0 = DefaultMaxPlaylistPages
	FetchTimeout       time.Duration
	HTTPClient         *http.Client
}

// Upstream defaults. PlaylistPageSize matches the largest page the Data API allows.
const (
	DefaultSearchMaxResults = 5
	DefaultPlaylistPageSize = 50
	DefaultMaxPlaylistPages = 50
)

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources, api).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
// Zero-valued limits are replaced with their defaults.
func Init(c Config) {
	if c.SearchMaxResults <= 0 {
		c.SearchMaxResults = DefaultSearchMaxResults
	}
	if c.PlaylistPageSize <= 0 || c.PlaylistPageSize > DefaultPlaylistPageSize {
		c.PlaylistPageSize = DefaultPlaylistPageSize
	}
	if c.MaxPlaylistPages <= 0 {
		c.MaxPlaylistPages = DefaultMaxPlaylistPages
	}
	cfg = c
	Cfg = &cfg
}
