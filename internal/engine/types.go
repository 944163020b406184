package engine

import "context"

// --- Core catalog types ---

// Channel is a YouTube channel as returned by a channel search.
type Channel struct {
	ChannelID string `json:"channelId"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

// Playlist is a playlist owned by a channel.
type Playlist struct {
	PlaylistID string `json:"playlistId"`
	Title      string `json:"title"`
}

// Catalog looks up channels and their playlists.
// Implemented by the YouTube Data API client (sources) and by the
// proxy HTTP client used by the explorer front-end.
type Catalog interface {
	SearchChannels(ctx context.Context, term string) ([]Channel, error)
	ListPlaylists(ctx context.Context, channelID string) ([]Playlist, error)
}

// --- MCP tool types ---

// ChannelSearchInput is the input for the channel_search tool.
type ChannelSearchInput struct {
	Query string `json:"query" jsonschema:"Channel name or keywords to search for (e.g. Acme, golang conference)"`
}

// ChannelSearchOutput is the structured output for channel_search.
type ChannelSearchOutput struct {
	Query    string    `json:"query"`
	Count    int       `json:"count"`
	Channels []Channel `json:"channels"`
}

// ChannelPlaylistsInput is the input for the channel_playlists tool.
type ChannelPlaylistsInput struct {
	ChannelID string `json:"channel_id" jsonschema:"YouTube channel ID (e.g. UC_x5XG1OV2P6uZZ5FSM9Ttw), as returned by channel_search"`
}

// ChannelPlaylistsOutput is the structured output for channel_playlists.
type ChannelPlaylistsOutput struct {
	ChannelID string     `json:"channel_id"`
	Count     int        `json:"count"`
	Playlists []Playlist `json:"playlists"`
	CopyAll   string     `json:"copy_all"` // "<title> - <url>" lines
}
