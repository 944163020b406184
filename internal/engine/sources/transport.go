package sources

import (
	"net/http"

	"github.com/anatolykoptev/go_playlists/internal/engine"
)

// apiKeyTransport adds the Data API key and our User-Agent to every request.
// The client library skips its own key handling once a custom *http.Client
// is supplied, so the key is attached here.
type apiKeyTransport struct {
	key  string
	base http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	q := r.URL.Query()
	q.Set("key", t.key)
	r.URL.RawQuery = q.Encode()
	r.Header.Set("User-Agent", engine.UserAgentBot)
	return t.base.RoundTrip(r)
}

// newAPIKeyClient wraps the shared engine client (pool + timeout) with the key transport.
// A nil base falls back to http.DefaultTransport and Cfg.FetchTimeout.
func newAPIKeyClient(base *http.Client, key string) *http.Client {
	var rt http.RoundTripper = http.DefaultTransport
	timeout := engine.Cfg.FetchTimeout
	if base != nil {
		if base.Transport != nil {
			rt = base.Transport
		}
		timeout = base.Timeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &apiKeyTransport{key: key, base: rt},
	}
}
