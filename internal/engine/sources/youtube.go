package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_playlists/internal/engine"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTube channel search and playlist listing over the Data API v3.

// YouTubeClient implements engine.Catalog against the YouTube Data API.
type YouTubeClient struct {
	service   *youtube.Service
	searchMax int64
	pageSize  int64
	maxPages  int
}

var _ engine.Catalog = (*YouTubeClient)(nil)

// NewYouTubeClient builds a Data API client from the engine configuration.
// The API key is required and is sent as the "key" query parameter on every call.
func NewYouTubeClient(ctx context.Context, c engine.Config) (*YouTubeClient, error) {
	if c.YouTubeAPIKey == "" {
		return nil, errors.New("youtube: API key is required")
	}
	opts := []option.ClientOption{option.WithHTTPClient(newAPIKeyClient(c.HTTPClient, c.YouTubeAPIKey))}
	if c.YouTubeAPIEndpoint != "" {
		opts = append(opts, option.WithEndpoint(c.YouTubeAPIEndpoint))
	}

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube: create service: %w", err)
	}
	return &YouTubeClient{
		service:   svc,
		searchMax: int64(positiveOr(c.SearchMaxResults, engine.DefaultSearchMaxResults)),
		pageSize:  int64(positiveOr(c.PlaylistPageSize, engine.DefaultPlaylistPageSize)),
		maxPages:  positiveOr(c.MaxPlaylistPages, engine.DefaultMaxPlaylistPages),
	}, nil
}

// SearchChannels runs a single channel-type search for term.
// Results keep the upstream (relevance) order; no sorting or de-duplication.
func (y *YouTubeClient) SearchChannels(ctx context.Context, term string) ([]engine.Channel, error) {
	engine.IncrChannelSearch()

	var resp *youtube.SearchListResponse
	err := engine.TrackOperation(ctx, "youtube.search", func(ctx context.Context) error {
		var err error
		resp, err = y.service.Search.List([]string{"snippet"}).
			Q(term).
			Type("channel").
			MaxResults(y.searchMax).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, upstreamError("search channels", err)
	}

	channels := make([]engine.Channel, 0, len(resp.Items))
	for _, item := range resp.Items {
		channels = append(channels, channelFromSearchResult(item))
	}
	return channels, nil
}

// ListPlaylists fetches every playlist of channelID, following nextPageToken
// until the API stops returning one. Pages are fetched sequentially and
// concatenated in order. A failed page discards everything gathered so far.
func (y *YouTubeClient) ListPlaylists(ctx context.Context, channelID string) ([]engine.Playlist, error) {
	engine.IncrPlaylistList()

	var (
		playlists []engine.Playlist
		pageToken string
	)
	for page := 0; ; page++ {
		if page >= y.maxPages {
			engine.IncrPageLimitHit()
			slog.Warn("youtube: playlist page limit reached",
				slog.String("channel_id", channelID), slog.Int("pages", page), slog.Int("playlists", len(playlists)))
			return nil, fmt.Errorf("youtube: list playlists for %s: %w (%d pages)", channelID, engine.ErrPageLimit, y.maxPages)
		}

		engine.IncrPlaylistPage()
		call := y.service.Playlists.List([]string{"snippet"}).
			ChannelId(channelID).
			MaxResults(y.pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, upstreamError("list playlists", err)
		}

		for _, item := range resp.Items {
			playlists = append(playlists, playlistFromItem(item))
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if playlists == nil {
		playlists = []engine.Playlist{}
	}
	return playlists, nil
}

func channelFromSearchResult(item *youtube.SearchResult) engine.Channel {
	var ch engine.Channel
	if item == nil {
		return ch
	}
	if item.Id != nil {
		ch.ChannelID = item.Id.ChannelId
	}
	if s := item.Snippet; s != nil {
		ch.Title = s.Title
		if s.Thumbnails != nil && s.Thumbnails.Default != nil {
			ch.Thumbnail = s.Thumbnails.Default.Url
		}
	}
	return ch
}

func playlistFromItem(item *youtube.Playlist) engine.Playlist {
	var p engine.Playlist
	if item == nil {
		return p
	}
	p.PlaylistID = item.Id
	if item.Snippet != nil {
		p.Title = item.Snippet.Title
	}
	return p
}

// upstreamError logs the API failure and wraps it with engine.ErrUpstream.
func upstreamError(op string, err error) error {
	engine.IncrUpstreamError()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		slog.Error("youtube: API error",
			slog.String("op", op),
			slog.Int("status", apiErr.Code),
			slog.String("message", apiErr.Message),
			slog.String("body", engine.TruncateRunes(apiErr.Body, 512, "...")))
	} else {
		slog.Error("youtube: request failed", slog.String("op", op), slog.Any("error", err))
	}
	return fmt.Errorf("youtube: %s: %w: %w", op, engine.ErrUpstream, err)
}

func positiveOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
