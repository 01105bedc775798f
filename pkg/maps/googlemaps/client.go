// Package googlemaps implements the maps vendor clients (geocoding,
// places, directions, elevation) against the Google Maps web service
// endpoints.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cartoscope/go-mapagent/internal/httpc"
	"github.com/cartoscope/go-mapagent/pkg/maps"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// Client talks to the Google Maps web services. One client serves all
// four vendor interfaces.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("googlemaps: API key is required")
	}
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    httpc.Client,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// statusEnvelope is the common wrapper of every web service response.
type statusEnvelope struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// get issues a GET to the given service path with the API key
// appended, decodes the body into out, and converts non-OK vendor
// statuses into *maps.StatusError. ZERO_RESULTS is not an error.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s/%s/json?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("googlemaps: create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("googlemaps: %s request: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("googlemaps: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("googlemaps: %s returned HTTP %d", path, resp.StatusCode)
	}

	var env statusEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("googlemaps: parse response: %w", err)
	}
	if env.Status != "OK" && env.Status != "ZERO_RESULTS" {
		c.logger.Warn("vendor request failed", "service", path, "status", env.Status, "message", env.ErrorMessage)
		return &maps.StatusError{Status: env.Status, Message: env.ErrorMessage}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("googlemaps: parse %s response: %w", path, err)
	}
	return nil
}

// latLngParam formats a coordinate for a query parameter.
func latLngParam(l maps.LatLng) string {
	return fmt.Sprintf("%v,%v", l.Lat, l.Lng)
}

// Interface checks.
var (
	_ maps.Geocoder         = (*Client)(nil)
	_ maps.PlacesClient     = (*Client)(nil)
	_ maps.DirectionsClient = (*Client)(nil)
	_ maps.ElevationClient  = (*Client)(nil)
)
