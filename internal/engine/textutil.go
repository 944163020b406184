package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// PlaylistURLPrefix is the public watch URL for a playlist, minus its ID.
const PlaylistURLPrefix = "https://www.youtube.com/playlist?list="

// UserAgentBot identifies outbound calls made by this service.
const UserAgentBot = "GoPlaylists/1.0"

// PlaylistURL returns the public URL of a playlist.
func PlaylistURL(playlistID string) string {
	return PlaylistURLPrefix + playlistID
}

// FormatPlaylistLine renders a playlist as "<title> - <url>".
func FormatPlaylistLine(p Playlist) string {
	return p.Title + " - " + PlaylistURL(p.PlaylistID)
}

// FormatCopyAll joins FormatPlaylistLine for every playlist with "\n".
// Returns "" when there are no playlists.
func FormatCopyAll(playlists []Playlist) string {
	if len(playlists) == 0 {
		return ""
	}
	lines := make([]string, len(playlists))
	for i, p := range playlists {
		lines[i] = FormatPlaylistLine(p)
	}
	return strings.Join(lines, "\n")
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}
