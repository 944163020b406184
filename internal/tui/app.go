// Package tui renders the playlist explorer in the terminal with Bubble Tea.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anatolykoptev/go_playlists/internal/engine"
	"github.com/anatolykoptev/go_playlists/internal/explorer"
)

// noticeTTL is how long a copy confirmation stays on screen.
const noticeTTL = 2 * time.Second

// Controller is the subset of explorer.Controller the App drives.
type Controller interface {
	SetSearchTerm(term string)
	SelectChannel(channelID string)
	ClearSelection()
	CopyOne(p engine.Playlist) error
	CopyAll() error
	DismissNotice()
}

// stateMsg carries a controller snapshot into the update loop.
type stateMsg explorer.State

type App struct {
	ctrl      Controller
	input     textinput.Model
	channels  list.Model
	playlists list.Model
	state     explorer.State
	width     int
	height    int
}

func NewApp(ctrl Controller) *App {
	ti := textinput.New()
	ti.Placeholder = "Search YouTube Channels"
	ti.Prompt = "› "
	ti.Focus()

	return &App{
		ctrl:      ctrl,
		input:     ti,
		channels:  newList("› channels"),
		playlists: newList("› playlists"),
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = max(msg.Width-8, 10)
		listHeight := max(msg.Height-8, 5)
		a.channels.SetSize(msg.Width, listHeight)
		a.playlists.SetSize(msg.Width, listHeight)
		return a, nil

	case stateMsg:
		return a, a.applyState(explorer.State(msg))

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.state.SelectedChannelID == "" {
			return a, a.updateSearch(msg)
		}
		return a, a.updatePlaylists(msg)
	}

	return a, nil
}

func (a *App) applyState(s explorer.State) tea.Cmd {
	prevNotice := a.state.Notice
	a.state = s

	cmds := []tea.Cmd{
		a.channels.SetItems(channelItems(s.Channels)),
		a.playlists.SetItems(playlistItems(s.Playlists)),
	}
	if s.Notice != "" && s.Notice != prevNotice {
		ctrl := a.ctrl
		cmds = append(cmds, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
			ctrl.DismissNotice()
			return nil
		}))
	}
	return tea.Batch(cmds...)
}

func (a *App) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		item, ok := a.channels.SelectedItem().(channelItem)
		if !ok {
			return nil
		}
		ctrl, id := a.ctrl, item.channel.ChannelID
		return func() tea.Msg {
			ctrl.SelectChannel(id)
			return nil
		}
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		a.channels, cmd = a.channels.Update(msg)
		return cmd
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	term := a.input.Value()
	if term == before {
		return cmd
	}

	ctrl := a.ctrl
	return tea.Batch(cmd, func() tea.Msg {
		ctrl.SetSearchTerm(term)
		return nil
	})
}

func (a *App) updatePlaylists(msg tea.KeyMsg) tea.Cmd {
	ctrl := a.ctrl
	switch {
	case msg.Type == tea.KeyEsc || msg.Type == tea.KeyBackspace:
		return func() tea.Msg {
			ctrl.ClearSelection()
			return nil
		}
	case msg.Type == tea.KeyEnter || msg.String() == "c":
		item, ok := a.playlists.SelectedItem().(playlistItem)
		if !ok {
			return nil
		}
		return func() tea.Msg {
			_ = ctrl.CopyOne(item.playlist)
			return nil
		}
	case msg.String() == "a":
		return func() tea.Msg {
			_ = ctrl.CopyAll()
			return nil
		}
	}

	var cmd tea.Cmd
	a.playlists, cmd = a.playlists.Update(msg)
	return cmd
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("YouTube Playlist Explorer"))
	b.WriteString("\n")

	if a.state.Err != "" {
		b.WriteString(ErrorStyle.Render("Error: " + a.state.Err))
		b.WriteString("\n")
	}
	if a.state.Notice != "" {
		b.WriteString(NoticeStyle.Render(a.state.Notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if a.state.SelectedChannelID == "" {
		b.WriteString(a.searchView())
	} else {
		b.WriteString(a.playlistsView())
	}
	return b.String()
}

func (a *App) searchView() string {
	parts := []string{InputStyle.Render(a.input.View())}
	switch {
	case a.state.LoadingChannels:
		parts = append(parts, MutedStyle.Render("Loading channels..."))
	case len(a.state.Channels) > 0:
		parts = append(parts, a.channels.View())
	}
	parts = append(parts, HelpStyle.Render("type to search • ↑/↓ move • enter: show playlists • ctrl+c: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) playlistsView() string {
	var parts []string
	switch {
	case a.state.LoadingPlaylists:
		parts = append(parts, MutedStyle.Render("Loading playlists..."))
	case len(a.state.Playlists) == 0:
		parts = append(parts, MutedStyle.Render("No playlists."))
	default:
		parts = append(parts, a.playlists.View())
	}
	parts = append(parts, HelpStyle.Render("enter/c: copy link • a: copy all • esc: back • ctrl+c: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the explorer UI against catalog and blocks until the user quits
// or ctx is canceled.
func Run(ctx context.Context, catalog engine.Catalog, clip explorer.Clipboard) error {
	app := NewApp(nil)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	ctrl := explorer.New(ctx, catalog, clip, explorer.WithOnChange(func(s explorer.State) {
		p.Send(stateMsg(s))
	}))
	defer ctrl.Close()
	app.ctrl = ctrl

	_, err := p.Run()
	return err
}
