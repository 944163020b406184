package explorer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_playlists/internal/engine"
)

func TestClientSearchChannels(t *testing.T) {
	gotQuery := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/youtube" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotQuery <- r.URL.Query().Get("searchTerm")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"channelId":"UC1","title":"Acme Co","thumbnail":"u1"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client())
	channels, err := c.SearchChannels(context.Background(), "Acme & Sons")
	require.NoError(t, err)
	assert.Equal(t, "Acme & Sons", <-gotQuery, "term must be URL-encoded")
	assert.Equal(t, []engine.Channel{{ChannelID: "UC1", Title: "Acme Co", Thumbnail: "u1"}}, channels)
}

func TestClientListPlaylists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "UC1", r.URL.Query().Get("channelId"))
		assert.Empty(t, r.URL.Query().Get("searchTerm"))
		_, _ = w.Write([]byte(`[{"playlistId":"PL1","title":"A"},{"playlistId":"PL2","title":"B"}]`))
	}))
	defer srv.Close()

	playlists, err := NewClient(srv.URL, srv.Client()).ListPlaylists(context.Background(), "UC1")
	require.NoError(t, err)
	assert.Equal(t, []engine.Playlist{{PlaylistID: "PL1", Title: "A"}, {PlaylistID: "PL2", Title: "B"}}, playlists)
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to fetch playlists"}`))
	}))
	defer srv.Close()

	playlists, err := NewClient(srv.URL, srv.Client()).ListPlaylists(context.Background(), "UC1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "Failed to fetch playlists")
	assert.Nil(t, playlists)
}

func TestClientBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).SearchChannels(context.Background(), "x")
	require.Error(t, err)
}

func TestClientDrivesController(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Query().Get("searchTerm") == "Acme":
			_, _ = w.Write([]byte(`[{"channelId":"UC1","title":"Acme Co","thumbnail":"u1"}]`))
		case r.URL.Query().Get("channelId") == "UC1":
			_, _ = w.Write([]byte(`[{"playlistId":"PL1","title":"A"},{"playlistId":"PL2","title":"B"}]`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	c := newController(t, NewClient(srv.URL, srv.Client()), nil)
	c.SetSearchTerm("Acme")
	c.Wait()
	require.Len(t, c.Snapshot().Channels, 1)
	c.SelectChannel(c.Snapshot().Channels[0].ChannelID)
	c.Wait()

	assert.Equal(t,
		"A - https://www.youtube.com/playlist?list=PL1\nB - https://www.youtube.com/playlist?list=PL2",
		c.Snapshot().CopyAllText)
}
