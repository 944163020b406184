// Package explorer holds the view state of the playlist explorer and the
// controller that drives it: channel search, channel selection, playlist
// loading and clipboard export.
package explorer

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/anatolykoptev/go_playlists/internal/engine"
)

// State is the view state. Mutated only by Controller.
type State struct {
	SearchTerm        string
	Channels          []engine.Channel
	SelectedChannelID string
	Playlists         []engine.Playlist
	CopyAllText       string
	LoadingChannels   bool
	LoadingPlaylists  bool
	Err               string
	Notice            string
}

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnChange registers fn to receive a snapshot after every state change.
// Deliveries are serialized and each carries the latest state.
// fn must not call back into the Controller synchronously.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller owns State. Each fetch axis (channels, playlists) keeps a
// generation counter; a new trigger cancels the in-flight fetch and results
// from an older generation are dropped.
type Controller struct {
	catalog  engine.Catalog
	clip     Clipboard
	onChange func(State)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu              sync.Mutex
	state           State
	closed          bool
	channelGen      uint64
	playlistGen     uint64
	cancelChannels  context.CancelFunc
	cancelPlaylists context.CancelFunc

	notifyMu sync.Mutex
}

// New returns a Controller fetching from catalog. Fetches run under ctx.
func New(ctx context.Context, catalog engine.Catalog, clip Clipboard, opts ...Option) *Controller {
	cctx, cancel := context.WithCancel(ctx)
	c := &Controller{
		catalog: catalog,
		clip:    clip,
		ctx:     cctx,
		cancel:  cancel,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetSearchTerm replaces the search term and fetches matching channels.
// An empty term clears the channel list without a fetch.
func (c *Controller) SetSearchTerm(term string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state.SearchTerm = term
	c.channelGen++
	gen := c.channelGen
	if c.cancelChannels != nil {
		c.cancelChannels()
		c.cancelChannels = nil
	}

	if term == "" {
		c.state.Channels = nil
		c.state.LoadingChannels = false
		c.mu.Unlock()
		c.notify()
		return
	}

	c.state.LoadingChannels = true
	c.state.Err = ""
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelChannels = cancel
	c.wg.Add(1)
	c.mu.Unlock()
	c.notify()

	go func() {
		defer c.wg.Done()
		defer cancel()
		channels, err := c.catalog.SearchChannels(ctx, term)
		c.finishChannels(gen, term, channels, err)
	}()
}

func (c *Controller) finishChannels(gen uint64, term string, channels []engine.Channel, err error) {
	c.mu.Lock()
	if gen != c.channelGen || c.closed {
		c.mu.Unlock()
		slog.Debug("stale channel search dropped", slog.String("term", term))
		return
	}
	c.cancelChannels = nil
	c.state.LoadingChannels = false
	if err != nil {
		slog.Warn("channel search failed", slog.String("term", term), slog.Any("error", err))
		c.state.Err = engine.MsgChannelsFailed
		c.state.Channels = nil
	} else {
		c.state.Channels = channels
	}
	c.mu.Unlock()
	c.notify()
}

// SelectChannel selects a channel and fetches all of its playlists.
// The previous playlists are cleared immediately. An empty id clears the selection.
func (c *Controller) SelectChannel(channelID string) {
	if channelID == "" {
		c.ClearSelection()
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	gen := c.resetSelectionLocked()
	c.state.SelectedChannelID = channelID
	c.state.LoadingPlaylists = true
	c.state.Err = ""
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelPlaylists = cancel
	c.wg.Add(1)
	c.mu.Unlock()
	c.notify()

	go func() {
		defer c.wg.Done()
		defer cancel()
		playlists, err := c.catalog.ListPlaylists(ctx, channelID)
		c.finishPlaylists(gen, channelID, playlists, err)
	}()
}

func (c *Controller) finishPlaylists(gen uint64, channelID string, playlists []engine.Playlist, err error) {
	c.mu.Lock()
	if gen != c.playlistGen || c.closed {
		c.mu.Unlock()
		slog.Debug("stale playlist fetch dropped", slog.String("channel_id", channelID))
		return
	}
	c.cancelPlaylists = nil
	c.state.LoadingPlaylists = false
	if err != nil {
		slog.Warn("playlist fetch failed",
			slog.String("channel_id", channelID),
			slog.Bool("page_limit", errors.Is(err, engine.ErrPageLimit)),
			slog.Any("error", err),
		)
		c.state.Err = engine.MsgPlaylistsFailed
		c.setPlaylistsLocked(nil)
	} else {
		c.setPlaylistsLocked(playlists)
	}
	c.mu.Unlock()
	c.notify()
}

// ClearSelection deselects the channel and empties the playlists.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	c.resetSelectionLocked()
	c.mu.Unlock()
	c.notify()
}

// resetSelectionLocked bumps the playlist generation, cancels any in-flight
// fetch and clears selection-derived state. Returns the new generation.
func (c *Controller) resetSelectionLocked() uint64 {
	c.playlistGen++
	if c.cancelPlaylists != nil {
		c.cancelPlaylists()
		c.cancelPlaylists = nil
	}
	c.state.SelectedChannelID = ""
	c.state.LoadingPlaylists = false
	c.setPlaylistsLocked(nil)
	return c.playlistGen
}

func (c *Controller) setPlaylistsLocked(playlists []engine.Playlist) {
	c.state.Playlists = playlists
	c.state.CopyAllText = engine.FormatCopyAll(playlists)
}

// CopyOne copies "<title> - <url>" for a single playlist.
func (c *Controller) CopyOne(p engine.Playlist) error {
	return c.copy(engine.FormatPlaylistLine(p), engine.MsgPlaylistCopied)
}

// CopyAll copies the aggregated text of every loaded playlist.
func (c *Controller) CopyAll() error {
	c.mu.Lock()
	text := c.state.CopyAllText
	c.mu.Unlock()
	return c.copy(text, engine.MsgAllPlaylistsCopied)
}

func (c *Controller) copy(text, notice string) error {
	err := c.clip.WriteAll(text)

	c.mu.Lock()
	if err != nil {
		slog.Warn("clipboard write failed", slog.Any("error", err))
		c.state.Err = engine.MsgClipboardFailed
		c.state.Notice = ""
	} else {
		c.state.Notice = notice
	}
	c.mu.Unlock()
	c.notify()
	return err
}

// DismissNotice clears the current notice.
func (c *Controller) DismissNotice() {
	c.mu.Lock()
	c.state.Notice = ""
	c.mu.Unlock()
	c.notify()
}

// Snapshot returns a copy of the current state. Slices are not shared.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	if c.state.Channels != nil {
		s.Channels = append([]engine.Channel(nil), c.state.Channels...)
	}
	if c.state.Playlists != nil {
		s.Playlists = append([]engine.Playlist(nil), c.state.Playlists...)
	}
	return s
}

// Wait blocks until every in-flight fetch has settled.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight fetches and waits for them. Later triggers are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
	c.wg.Wait()
}

func (c *Controller) notify() {
	if c.onChange == nil {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.onChange(c.Snapshot())
}
