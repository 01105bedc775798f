// Package weather fetches current conditions and daily forecasts from
// the Google Weather API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cartoscope/go-mapagent/internal/httpc"
	"github.com/cartoscope/go-mapagent/pkg/maps"
)

const defaultBaseURL = "https://weather.googleapis.com"

// Client talks to the weather endpoints.
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

// New creates a weather client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("weather: API key is required")
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

// Temperature is a value with its unit, e.g. 21.5 CELSIUS.
type Temperature struct {
	Degrees float64 `json:"degrees"`
	Unit    string  `json:"unit"`
}

// Condition describes the sky, e.g. "Partly cloudy".
type Condition struct {
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
	IconBaseURI string `json:"iconBaseUri"`
}

// Wind is the current wind reading.
type Wind struct {
	Speed struct {
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	} `json:"speed"`
}

// CurrentConditions is the lookup result for a point right now.
type CurrentConditions struct {
	Temperature          Temperature `json:"temperature"`
	FeelsLikeTemperature Temperature `json:"feelsLikeTemperature"`
	WeatherCondition     Condition   `json:"weatherCondition"`
	RelativeHumidity     float64     `json:"relativeHumidity"`
	UVIndex              float64     `json:"uvIndex"`
	Wind                 Wind        `json:"wind"`
	Visibility           struct {
		Distance float64 `json:"distance"`
	} `json:"visibility"`
	CurrentConditionsHistory *struct {
		MinTemperature Temperature `json:"minTemperature"`
		MaxTemperature Temperature `json:"maxTemperature"`
	} `json:"currentConditionsHistory"`
}

// ForecastDay is one day of the daily forecast.
type ForecastDay struct {
	DisplayDate struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Day   int `json:"day"`
	} `json:"displayDate"`
	MinTemperature  Temperature `json:"minTemperature"`
	MaxTemperature  Temperature `json:"maxTemperature"`
	DaytimeForecast *struct {
		WeatherCondition Condition `json:"weatherCondition"`
		Precipitation    struct {
			Probability struct {
				Percent float64 `json:"percent"`
			} `json:"probability"`
		} `json:"precipitation"`
		RelativeHumidity float64 `json:"relativeHumidity"`
	} `json:"daytimeForecast"`
}

// Forecast is a multi-day daily forecast.
type Forecast struct {
	ForecastDays []ForecastDay `json:"forecastDays"`
}

// CurrentConditions fetches the conditions at a point.
func (c *Client) CurrentConditions(ctx context.Context, loc maps.LatLng) (*CurrentConditions, error) {
	var out CurrentConditions
	if err := c.get(ctx, "v1/currentConditions:lookup", loc, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DailyForecast fetches up to days of daily forecast for a point.
func (c *Client) DailyForecast(ctx context.Context, loc maps.LatLng, days int) (*Forecast, error) {
	extra := url.Values{}
	if days > 0 {
		extra.Set("days", strconv.Itoa(days))
	}
	var out Forecast
	if err := c.get(ctx, "v1/forecast/days:lookup", loc, extra, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// apiError is the structured error body the weather API may return on
// a non-2xx response.
type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, loc maps.LatLng, extra url.Values, out any) error {
	params := url.Values{}
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	params.Set("key", c.apiKey)
	params.Set("location.latitude", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
	params.Set("location.longitude", strconv.FormatFloat(loc.Lng, 'f', -1, 64))

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("weather: create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("weather: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("weather: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae apiError
		if json.Unmarshal(body, &ae) == nil && ae.Error.Message != "" {
			return fmt.Errorf("weather: %s", ae.Error.Message)
		}
		return fmt.Errorf("weather: HTTP error %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("weather: parse response: %w", err)
	}
	return nil
}

// Service is the surface the command executor depends on.
type Service interface {
	CurrentConditions(ctx context.Context, loc maps.LatLng) (*CurrentConditions, error)
	DailyForecast(ctx context.Context, loc maps.LatLng, days int) (*Forecast, error)
}

var _ Service = (*Client)(nil)
