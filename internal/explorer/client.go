package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_playlists/internal/engine"
)

// maxErrorBody caps how much of a failed response is read for logging.
const maxErrorBody = 4 << 10

// Client is an engine.Catalog backed by the playlist proxy's /api/youtube endpoint.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client for the proxy at baseURL.
// A nil httpClient uses engine.Cfg.HTTPClient, then http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = engine.Cfg.HTTPClient
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: httpClient,
	}
}

// SearchChannels calls GET /api/youtube?searchTerm=<term>.
func (c *Client) SearchChannels(ctx context.Context, term string) ([]engine.Channel, error) {
	var out []engine.Channel
	if err := c.get(ctx, url.Values{"searchTerm": {term}}, &out); err != nil {
		return nil, fmt.Errorf("search channels: %w", err)
	}
	return out, nil
}

// ListPlaylists calls GET /api/youtube?channelId=<id>.
func (c *Client) ListPlaylists(ctx context.Context, channelID string) ([]engine.Playlist, error) {
	var out []engine.Playlist
	if err := c.get(ctx, url.Values{"channelId": {channelID}}, &out); err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, q url.Values, out any) error {
	u := c.BaseURL + "/api/youtube?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", engine.UserAgentBot)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return fmt.Errorf("proxy status %d: %s", resp.StatusCode, e.Error)
		}
		return fmt.Errorf("proxy status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
