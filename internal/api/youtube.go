package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/anatolykoptev/go_playlists/internal/engine"
	"github.com/anatolykoptev/go_playlists/internal/toolutil"
)

type YouTubeHandler struct {
	catalog engine.Catalog
}

func NewYouTubeHandler(catalog engine.Catalog) *YouTubeHandler {
	return &YouTubeHandler{catalog: catalog}
}

// Lookup handles GET /api/youtube?searchTerm=X or GET /api/youtube?channelId=Y.
// searchTerm takes precedence when both are present.
func (h *YouTubeHandler) Lookup(c fiber.Ctx) error {
	if term := c.Query("searchTerm"); term != "" {
		channels, err := h.catalog.SearchChannels(c.Context(), term)
		if err != nil {
			logLookupFailure(c, "search channels", err)
			return ErrorResponse(c, fiber.StatusInternalServerError, engine.MsgChannelsFailed)
		}
		return c.JSON(toolutil.NonNil(channels))
	}

	if channelID := c.Query("channelId"); channelID != "" {
		playlists, err := h.catalog.ListPlaylists(c.Context(), channelID)
		if err != nil {
			logLookupFailure(c, "list playlists", err)
			return ErrorResponse(c, fiber.StatusInternalServerError, engine.MsgPlaylistsFailed)
		}
		return c.JSON(toolutil.NonNil(playlists))
	}

	return ErrorResponse(c, fiber.StatusBadRequest, engine.MsgMissingParam)
}

// ErrorResponse writes the proxy's error body: {"error": message}.
func ErrorResponse(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func logLookupFailure(c fiber.Ctx, op string, err error) {
	slog.Error("api: lookup failed",
		slog.String("op", op),
		slog.String("request_id", RequestID(c)),
		slog.Bool("page_limit", errors.Is(err, engine.ErrPageLimit)),
		slog.Any("error", err))
}
