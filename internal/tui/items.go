package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/anatolykoptev/go_playlists/internal/engine"
)

type channelItem struct {
	channel engine.Channel
}

func (i channelItem) Title() string       { return i.channel.Title }
func (i channelItem) Description() string { return i.channel.ChannelID }
func (i channelItem) FilterValue() string { return i.channel.Title }

type playlistItem struct {
	playlist engine.Playlist
}

func (i playlistItem) Title() string       { return i.playlist.Title }
func (i playlistItem) Description() string { return engine.PlaylistURL(i.playlist.PlaylistID) }
func (i playlistItem) FilterValue() string { return i.playlist.Title }

func channelItems(channels []engine.Channel) []list.Item {
	items := make([]list.Item, len(channels))
	for i, c := range channels {
		items[i] = channelItem{channel: c}
	}
	return items
}

func playlistItems(playlists []engine.Playlist) []list.Item {
	items := make([]list.Item, len(playlists))
	for i, p := range playlists {
		items[i] = playlistItem{playlist: p}
	}
	return items
}

func newList(title string) list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	return l
}
