package ytserver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/anatolykoptev/go_playlists/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type fakeCatalog struct {
	channels  []engine.Channel
	playlists []engine.Playlist
	err       error
	calls     int
}

func (f *fakeCatalog) SearchChannels(_ context.Context, _ string) ([]engine.Channel, error) {
	f.calls++
	return f.channels, f.err
}

func (f *fakeCatalog) ListPlaylists(_ context.Context, _ string) ([]engine.Playlist, error) {
	f.calls++
	return f.playlists, f.err
}

func TestRegisterTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "dev"}, nil)
	// AddTool panics on an invalid schema; registering is the assertion.
	RegisterTools(server, &fakeCatalog{})
}

func TestChannelSearchHandler(t *testing.T) {
	cat := &fakeCatalog{channels: []engine.Channel{{ChannelID: "UC1", Title: "Acme Co", Thumbnail: "u1"}}}
	h := channelSearchHandler(cat)

	_, out, err := h(context.Background(), nil, engine.ChannelSearchInput{Query: "  Acme "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Query != "Acme" {
		t.Errorf("query = %q, want trimmed %q", out.Query, "Acme")
	}
	if out.Count != 1 || out.Channels[0].ChannelID != "UC1" {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestChannelSearchHandlerValidation(t *testing.T) {
	cat := &fakeCatalog{}
	h := channelSearchHandler(cat)

	if _, _, err := h(context.Background(), nil, engine.ChannelSearchInput{Query: "   "}); err == nil {
		t.Error("expected error for blank query")
	}
	if cat.calls != 0 {
		t.Errorf("catalog called %d times for blank query", cat.calls)
	}
}

func TestChannelSearchHandlerUpstreamError(t *testing.T) {
	cat := &fakeCatalog{err: fmt.Errorf("%w: quotaExceeded", engine.ErrUpstream)}
	_, _, err := channelSearchHandler(cat)(context.Background(), nil, engine.ChannelSearchInput{Query: "Acme"})
	if err == nil || err.Error() != engine.MsgChannelsFailed {
		t.Errorf("err = %v, want %q", err, engine.MsgChannelsFailed)
	}
}

func TestChannelPlaylistsHandler(t *testing.T) {
	cat := &fakeCatalog{playlists: []engine.Playlist{
		{PlaylistID: "PL1", Title: "A"},
		{PlaylistID: "PL2", Title: "B"},
	}}

	_, out, err := channelPlaylistsHandler(cat)(context.Background(), nil, engine.ChannelPlaylistsInput{ChannelID: "UC1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 {
		t.Errorf("count = %d, want 2", out.Count)
	}
	want := "A - https://www.youtube.com/playlist?list=PL1\nB - https://www.youtube.com/playlist?list=PL2"
	if out.CopyAll != want {
		t.Errorf("copy_all = %q, want %q", out.CopyAll, want)
	}
}

func TestChannelPlaylistsHandlerEmpty(t *testing.T) {
	_, out, err := channelPlaylistsHandler(&fakeCatalog{})(context.Background(), nil, engine.ChannelPlaylistsInput{ChannelID: "UC1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Playlists == nil || out.Count != 0 || out.CopyAll != "" {
		t.Errorf("unexpected output for no playlists: %+v", out)
	}
}

func TestChannelPlaylistsHandlerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"blank id", " ", nil},
		{"upstream", "UC1", engine.ErrUpstream},
		{"page limit", "UC1", engine.ErrPageLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &fakeCatalog{err: tt.err}
			_, _, err := channelPlaylistsHandler(cat)(context.Background(), nil, engine.ChannelPlaylistsInput{ChannelID: tt.input})
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, engine.ErrUpstream) {
				t.Errorf("upstream error leaked to tool result: %v", err)
			}
		})
	}
}
