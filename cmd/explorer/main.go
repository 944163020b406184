// explorer: terminal front-end for go_playlists.
//
// Search channels by name, open one to list all of its playlists, and copy
// "<title> - <url>" lines to the system clipboard.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anatolykoptev/go_playlists/internal/engine"
	"github.com/anatolykoptev/go_playlists/internal/explorer"
	"github.com/anatolykoptev/go_playlists/internal/tui"
)

var (
	apiURL  = env.Str("EXPLORER_API_URL", "http://127.0.0.1:8080")
	logFile = env.Str("EXPLORER_LOG_FILE", "")
)

func main() {
	closeLog := initLogging()
	defer closeLog()

	engine.Init(engine.Config{
		FetchTimeout: env.Duration("FETCH_TIMEOUT", 15*time.Second),
	})
	httpClient := &http.Client{Timeout: engine.Cfg.FetchTimeout}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := explorer.NewClient(apiURL, httpClient)
	slog.Info("explorer starting", slog.String("api_url", client.BaseURL))

	if err := tui.Run(ctx, client, tui.SystemClipboard{}); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		slog.Error("explorer failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogging sends slog output to EXPLORER_LOG_FILE, or discards it:
// the terminal belongs to the UI.
func initLogging() func() {
	if logFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}
	}
	f, err := tea.LogToFile(logFile, "explorer")
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { _ = f.Close() }
}
