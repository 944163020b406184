package engine

import "testing"

func TestPlaylistURL(t *testing.T) {
	if got := PlaylistURL("PL1"); got != "https://www.youtube.com/playlist?list=PL1" {
		t.Errorf("PlaylistURL = %q", got)
	}
}

func TestFormatPlaylistLine(t *testing.T) {
	got := FormatPlaylistLine(Playlist{PlaylistID: "PLx", Title: "Go Talks - 2024"})
	want := "Go Talks - 2024 - https://www.youtube.com/playlist?list=PLx"
	if got != want {
		t.Errorf("FormatPlaylistLine = %q, want %q", got, want)
	}
}

func TestFormatCopyAll(t *testing.T) {
	tests := []struct {
		name      string
		playlists []Playlist
		want      string
	}{
		{"nil", nil, ""},
		{"empty", []Playlist{}, ""},
		{"single", []Playlist{{PlaylistID: "PL1", Title: "A"}}, "A - https://www.youtube.com/playlist?list=PL1"},
		{
			"two in order",
			[]Playlist{{PlaylistID: "PL1", Title: "A"}, {PlaylistID: "PL2", Title: "B"}},
			"A - https://www.youtube.com/playlist?list=PL1\nB - https://www.youtube.com/playlist?list=PL2",
		},
		{"empty title", []Playlist{{PlaylistID: "PL9"}}, " - https://www.youtube.com/playlist?list=PL9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCopyAll(tt.playlists); got != tt.want {
				t.Errorf("FormatCopyAll() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 10, "..."); got != "short" {
		t.Errorf("TruncateRunes short = %q", got)
	}
	got := TruncateRunes("плейлист плейлист", 8, "")
	if []rune(got)[0] != 'п' || len([]rune(got)) > 8 {
		t.Errorf("TruncateRunes cyrillic = %q", got)
	}
}
