package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
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

func TestGeocode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("address"); got != "Paris" {
			t.Errorf("address = %q, want Paris", got)
		}
		fmt.Fprint(w, `{
			"status": "OK",
			"results": [{
				"formatted_address": "Paris, France",
				"geometry": {"location": {"lat": 48.8566, "lng": 2.3522}}
			}]
		}`)
	})

	results, err := c.Geocode(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].FormattedAddress != "Paris, France" {
		t.Errorf("address = %q", results[0].FormattedAddress)
	}
	if results[0].Location.Lat != 48.8566 {
		t.Errorf("lat = %v", results[0].Location.Lat)
	}
}

func TestGeocodeZeroResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "ZERO_RESULTS", "results": []}`)
	})

	results, err := c.Geocode(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("ZERO_RESULTS should not be an error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestVendorStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "REQUEST_DENIED", "error_message": "key invalid"}`)
	})

	_, err := c.Geocode(context.Background(), "Paris")
	var se *maps.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *maps.StatusError, got %v", err)
	}
	if se.Status != "REQUEST_DENIED" {
		t.Errorf("status = %q", se.Status)
	}
}

func TestTextSearchAdaptsPlaces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"status": "OK",
			"results": [{
				"place_id": "p1",
				"name": "Cafe de Flore",
				"formatted_address": "172 Bd Saint-Germain",
				"geometry": {"location": {"lat": 48.854, "lng": 2.332}},
				"rating": 4.2,
				"photos": [{"photo_reference": "ref1"}],
				"icon_background_color": "#FF9E67",
				"opening_hours": {"open_now": true}
			}]
		}`)
	})

	places, err := c.TextSearch(context.Background(), maps.TextSearchRequest{Query: "cafe"})
	if err != nil {
		t.Fatalf("TextSearch: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("got %d places, want 1", len(places))
	}
	p := places[0]
	if p.ID != "p1" || p.Name != "Cafe de Flore" || p.Rating != 4.2 {
		t.Errorf("unexpected place: %+v", p)
	}
	if p.PhotoURL == "" {
		t.Error("photo URL should be derived from the photo reference")
	}
	if !p.OpenNow {
		t.Error("open_now should carry through")
	}
}

func TestNearbySearchParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("radius") != "500" {
			t.Errorf("radius = %q, want 500", q.Get("radius"))
		}
		if q.Get("type") != "restaurant|cafe" {
			t.Errorf("type = %q", q.Get("type"))
		}
		fmt.Fprint(w, `{"status": "OK", "results": []}`)
	})

	_, err := c.NearbySearch(context.Background(), maps.NearbySearchRequest{
		Location: maps.LatLng{Lat: 48.85, Lng: 2.35},
		Radius:   500,
		Types:    []string{"restaurant", "cafe"},
	})
	if err != nil {
		t.Fatalf("NearbySearch: %v", err)
	}
}

func TestDetailsUsesDefaultFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("fields"); got == "" {
			t.Error("fields param should default when unset by caller")
		}
		fmt.Fprint(w, `{
			"status": "OK",
			"result": {
				"name": "The White House",
				"formatted_address": "1600 Pennsylvania Ave",
				"geometry": {"location": {"lat": 38.8977, "lng": -77.0365}},
				"rating": 4.5
			}
		}`)
	})

	place, err := c.Details(context.Background(), "p2", nil)
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if place.Name != "The White House" {
		t.Errorf("name = %q", place.Name)
	}
	if place.ID != "p2" {
		t.Errorf("ID should fall back to the requested place ID, got %q", place.ID)
	}
}

func TestRoute(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("mode"); got != "walking" {
			t.Errorf("mode = %q, want walking", got)
		}
		fmt.Fprint(w, `{
			"status": "OK",
			"routes": [{
				"summary": "A4",
				"legs": [{
					"distance": {"text": "4.2 km"},
					"duration": {"text": "52 mins"},
					"start_address": "A",
					"end_address": "B"
				}]
			}]
		}`)
	})

	route, err := c.Route(context.Background(), maps.RouteRequest{
		Origin: "A", Destination: "B", Mode: maps.TravelModeWalking,
	})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(route.Legs) != 1 || route.Legs[0].DistanceText != "4.2 km" {
		t.Errorf("unexpected route: %+v", route)
	}
}

func TestRouteZeroResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "ZERO_RESULTS", "routes": []}`)
	})

	_, err := c.Route(context.Background(), maps.RouteRequest{Origin: "A", Destination: "nowhere"})
	if maps.StatusOf(err) != "ZERO_RESULTS" {
		t.Errorf("status = %q, want ZERO_RESULTS", maps.StatusOf(err))
	}
}

func TestElevation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "OK", "results": [{"elevation": 35.678}]}`)
	})

	meters, err := c.Elevation(context.Background(), maps.LatLng{Lat: 48.85, Lng: 2.35})
	if err != nil {
		t.Fatalf("Elevation: %v", err)
	}
	if meters != 35.678 {
		t.Errorf("elevation = %v", meters)
	}
}

func TestHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := c.Geocode(context.Background(), "Paris"); err == nil {
		t.Error("expected error for HTTP 502")
	}
}
