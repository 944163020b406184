// go_playlists: YouTube channel playlist proxy.
//
// Serves GET /api/youtube (channel search and full playlist listing) over
// HTTP for the explorer front-end, and exposes the same lookups as MCP tools:
// channel_search, channel_playlists.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_playlists/internal/api"
	"github.com/anatolykoptev/go_playlists/internal/engine"
	"github.com/anatolykoptev/go_playlists/internal/engine/sources"
	"github.com/anatolykoptev/go_playlists/internal/ytserver"
	"github.com/gofiber/fiber/v3"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version     = "dev"
	httpPort    = env.Str("HTTP_PORT", "8080")
	mcpPort     = env.Str("MCP_PORT", "8891")
	corsOrigins = env.Str("CORS_ORIGINS", "*")
)

func main() {
	initEngine()

	yt, err := sources.NewYouTubeClient(context.Background(), *engine.Cfg)
	if err != nil {
		slog.Error("youtube client init failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("starting go_playlists",
		slog.String("http_port", httpPort),
		slog.String("mcp_port", mcpPort),
		slog.Int("max_playlist_pages", engine.Cfg.MaxPlaylistPages),
	)

	app := api.New(yt, api.Options{
		AppName:     "go_playlists",
		CORSOrigins: corsOrigins,
	})
	go func() {
		if err := app.Listen(":"+httpPort, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
			slog.Error("http server failed", slog.Any("error", err))
		}
	}()

	if mcpPort != "" {
		server := mcp.NewServer(&mcp.Implementation{
			Name:    "go_playlists",
			Version: version,
		}, nil)

		ytserver.RegisterTools(server, yt)
		slog.Info("tools registered", slog.Int("count", 2))

		if err := mcpserver.Run(server, mcpserver.Config{
			Name:         "go_playlists",
			Version:      version,
			Port:         mcpPort,
			WriteTimeout: 120 * time.Second,
			Metrics:      engine.FormatMetrics,
		}); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("mcp server failed", slog.Any("error", err))
		}
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		<-ctx.Done()
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Warn("http shutdown failed", slog.Any("error", err))
	}
	slog.Info("stopped")
}

func initEngine() {
	c := engine.Config{
		YouTubeAPIKey:      env.Str("YOUTUBE_API_KEY", ""),
		YouTubeAPIEndpoint: env.Str("YOUTUBE_API_ENDPOINT", ""),
		SearchMaxResults:   env.Int("YOUTUBE_SEARCH_MAX_RESULTS", engine.DefaultSearchMaxResults),
		PlaylistPageSize:   env.Int("YOUTUBE_PLAYLIST_PAGE_SIZE", engine.DefaultPlaylistPageSize),
		MaxPlaylistPages:   env.Int("YOUTUBE_MAX_PLAYLIST_PAGES", engine.DefaultMaxPlaylistPages),
		FetchTimeout:       env.Duration("FETCH_TIMEOUT", 15*time.Second),
	}
	c.HTTPClient = &http.Client{
		Timeout: c.FetchTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     60 * time.Second,
		},
	}

	engine.Init(c)
}
