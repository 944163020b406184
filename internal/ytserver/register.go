package ytserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_playlists/internal/engine"
	"github.com/anatolykoptev/go_playlists/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers the playlist lookup tools on the given MCP server:
// channel_search, channel_playlists. Both are served by catalog.
func RegisterTools(server *mcp.Server, catalog engine.Catalog) {
	registerChannelSearch(server, catalog)
	registerChannelPlaylists(server, catalog)
}

func registerChannelSearch(server *mcp.Server, catalog engine.Catalog) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "channel_search",
		Description: "Search YouTube channels by name. Returns channel IDs, titles and thumbnail URLs in YouTube's relevance order. Pass a channel ID to channel_playlists to list its playlists.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, channelSearchHandler(catalog))
}

func channelSearchHandler(catalog engine.Catalog) func(context.Context, *mcp.CallToolRequest, engine.ChannelSearchInput) (*mcp.CallToolResult, engine.ChannelSearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input engine.ChannelSearchInput) (*mcp.CallToolResult, engine.ChannelSearchOutput, error) {
		query, err := toolutil.RequireParam("query", input.Query)
		if err != nil {
			return nil, engine.ChannelSearchOutput{}, err
		}

		channels, err := catalog.SearchChannels(ctx, query)
		if err != nil {
			slog.Warn("channel_search error", slog.String("query", query), slog.Any("error", err))
			return nil, engine.ChannelSearchOutput{}, errors.New(engine.MsgChannelsFailed)
		}
		channels = toolutil.NonNil(channels)

		return nil, engine.ChannelSearchOutput{
			Query:    query,
			Count:    len(channels),
			Channels: channels,
		}, nil
	}
}

func registerChannelPlaylists(server *mcp.Server, catalog engine.Catalog) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "channel_playlists",
		Description: "List every playlist of a YouTube channel (all pages). Returns playlist IDs and titles plus copy_all: one \"<title> - https://www.youtube.com/playlist?list=<id>\" line per playlist.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, channelPlaylistsHandler(catalog))
}

func channelPlaylistsHandler(catalog engine.Catalog) func(context.Context, *mcp.CallToolRequest, engine.ChannelPlaylistsInput) (*mcp.CallToolResult, engine.ChannelPlaylistsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input engine.ChannelPlaylistsInput) (*mcp.CallToolResult, engine.ChannelPlaylistsOutput, error) {
		channelID, err := toolutil.RequireParam("channel_id", input.ChannelID)
		if err != nil {
			return nil, engine.ChannelPlaylistsOutput{}, err
		}

		playlists, err := catalog.ListPlaylists(ctx, channelID)
		if err != nil {
			slog.Warn("channel_playlists error", slog.String("channel_id", channelID), slog.Any("error", err))
			if errors.Is(err, engine.ErrPageLimit) {
				return nil, engine.ChannelPlaylistsOutput{}, fmt.Errorf("%s: channel has too many playlists", engine.MsgPlaylistsFailed)
			}
			return nil, engine.ChannelPlaylistsOutput{}, errors.New(engine.MsgPlaylistsFailed)
		}
		playlists = toolutil.NonNil(playlists)

		return nil, engine.ChannelPlaylistsOutput{
			ChannelID: channelID,
			Count:     len(playlists),
			Playlists: playlists,
			CopyAll:   engine.FormatCopyAll(playlists),
		}, nil
	}
}
