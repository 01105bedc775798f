package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cartoscope/go-mapagent/pkg/maps"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestCurrentConditions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v1/currentConditions:lookup") {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("key") != "test-key" {
			t.Errorf("key = %q", q.Get("key"))
		}
		if q.Get("location.latitude") != "48.8566" || q.Get("location.longitude") != "2.3522" {
			t.Errorf("location = %q, %q", q.Get("location.latitude"), q.Get("location.longitude"))
		}
		fmt.Fprint(w, `{
			"temperature": {"degrees": 21.5, "unit": "CELSIUS"},
			"feelsLikeTemperature": {"degrees": 20.1, "unit": "CELSIUS"},
			"weatherCondition": {"description": {"text": "Partly cloudy"}},
			"relativeHumidity": 62,
			"uvIndex": 4,
			"wind": {"speed": {"value": 12, "unit": "KILOMETERS_PER_HOUR"}}
		}`)
	})

	cond, err := c.CurrentConditions(context.Background(), maps.LatLng{Lat: 48.8566, Lng: 2.3522})
	if err != nil {
		t.Fatalf("CurrentConditions: %v", err)
	}
	if cond.Temperature.Degrees != 21.5 {
		t.Errorf("temperature = %v", cond.Temperature.Degrees)
	}
	if cond.WeatherCondition.Description.Text != "Partly cloudy" {
		t.Errorf("condition = %q", cond.WeatherCondition.Description.Text)
	}
	if cond.RelativeHumidity != 62 {
		t.Errorf("humidity = %v", cond.RelativeHumidity)
	}
}

func TestDailyForecast(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v1/forecast/days:lookup") {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("days"); got != "5" {
			t.Errorf("days = %q, want 5", got)
		}
		fmt.Fprint(w, `{
			"forecastDays": [{
				"displayDate": {"year": 2026, "month": 9, "day": 2},
				"minTemperature": {"degrees": 14, "unit": "CELSIUS"},
				"maxTemperature": {"degrees": 24, "unit": "CELSIUS"},
				"daytimeForecast": {
					"weatherCondition": {"description": {"text": "Sunny"}},
					"precipitation": {"probability": {"percent": 10}},
					"relativeHumidity": 55
				}
			}]
		}`)
	})

	fc, err := c.DailyForecast(context.Background(), maps.LatLng{Lat: 48.8566, Lng: 2.3522}, 5)
	if err != nil {
		t.Fatalf("DailyForecast: %v", err)
	}
	if len(fc.ForecastDays) != 1 {
		t.Fatalf("got %d days", len(fc.ForecastDays))
	}
	day := fc.ForecastDays[0]
	if day.MaxTemperature.Degrees != 24 {
		t.Errorf("max temperature = %v", day.MaxTemperature.Degrees)
	}
	if day.DaytimeForecast.Precipitation.Probability.Percent != 10 {
		t.Errorf("precipitation = %v", day.DaytimeForecast.Precipitation.Probability.Percent)
	}
}

func TestStructuredError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error": {"message": "API key not valid"}}`)
	})

	_, err := c.CurrentConditions(context.Background(), maps.LatLng{})
	if err == nil || !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("expected the structured message, got %v", err)
	}
}

func TestFallbackHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream broke")
	})

	_, err := c.CurrentConditions(context.Background(), maps.LatLng{})
	if err == nil || !strings.Contains(err.Error(), "HTTP error 502") {
		t.Errorf("expected generic HTTP status error, got %v", err)
	}
}
