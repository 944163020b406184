package engine

import "errors"

var (
	// ErrMissingParam is returned when neither a search term nor a channel ID is given.
	ErrMissingParam = errors.New("missing search term or channel ID")

	// ErrUpstream wraps every failed call to the YouTube Data API.
	ErrUpstream = errors.New("upstream fetch failed")

	// ErrPageLimit is returned when playlist pagination exceeds Config.MaxPlaylistPages.
	ErrPageLimit = errors.New("playlist page limit exceeded")
)

// Fixed messages shown to end users; upstream detail is only logged.
const (
	MsgMissingParam       = "Missing search term or channel ID"
	MsgChannelsFailed     = "Failed to fetch channels"
	MsgPlaylistsFailed    = "Failed to fetch playlists"
	MsgClipboardFailed    = "Failed to copy to clipboard"
	MsgPlaylistCopied     = "Playlist link copied to clipboard!"
	MsgAllPlaylistsCopied = "All playlist names and links copied to clipboard!"
)
