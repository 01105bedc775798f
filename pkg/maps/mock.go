package maps

import (
	"context"
	"strings"
	"sync"
)

// Mock vendor clients for tests and for running the agent without
// real API credentials.

// MockGeocoder resolves addresses from a canned table. Lookups are
// case-insensitive on the full address string.
type MockGeocoder struct {
	mu      sync.Mutex
	Results map[string][]GeocodeResult
	Err     error
	Calls   []string
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) ([]GeocodeResult, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, address)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for key, results := range m.Results {
		if strings.EqualFold(key, address) {
			return results, nil
		}
	}
	return nil, nil
}

// MockPlaces serves canned search results and details.
type MockPlaces struct {
	mu            sync.Mutex
	TextResults   []Place
	NearbyResults []Place
	DetailsResult *Place
	Err           error

	TextRequests   []TextSearchRequest
	NearbyRequests []NearbySearchRequest
	DetailsIDs     []string
}

func (m *MockPlaces) TextSearch(ctx context.Context, req TextSearchRequest) ([]Place, error) {
	m.mu.Lock()
	m.TextRequests = append(m.TextRequests, req)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.TextResults, nil
}

func (m *MockPlaces) NearbySearch(ctx context.Context, req NearbySearchRequest) ([]Place, error) {
	m.mu.Lock()
	m.NearbyRequests = append(m.NearbyRequests, req)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.NearbyResults, nil
}

func (m *MockPlaces) Details(ctx context.Context, placeID string, fields []string) (*Place, error) {
	m.mu.Lock()
	m.DetailsIDs = append(m.DetailsIDs, placeID)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.DetailsResult == nil {
		return nil, &StatusError{Status: "NOT_FOUND"}
	}
	return m.DetailsResult, nil
}

// MockDirections returns one canned route, or a status failure when
// Status is set to anything other than "OK".
type MockDirections struct {
	mu       sync.Mutex
	Result   *Route
	Status   string
	Requests []RouteRequest
}

func (m *MockDirections) Route(ctx context.Context, req RouteRequest) (*Route, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()
	if m.Status != "" && m.Status != "OK" {
		return nil, &StatusError{Status: m.Status}
	}
	if m.Result == nil {
		return nil, &StatusError{Status: "ZERO_RESULTS"}
	}
	return m.Result, nil
}

// MockElevation returns a fixed elevation for every point.
type MockElevation struct {
	mu     sync.Mutex
	Meters float64
	Err    error
	Calls  []LatLng
}

func (m *MockElevation) Elevation(ctx context.Context, loc LatLng) (float64, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, loc)
	m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Meters, nil
}

// NewMockState builds a fully wired State backed by mock clients,
// suitable for tests and for offline runs.
func NewMockState() *State {
	return &State{
		Map:      NewMapView(DefaultViewConfig()),
		Panorama: NewPanorama(),
		Geocoder: &MockGeocoder{
			Results: map[string][]GeocodeResult{
				"Paris": {{FormattedAddress: "Paris, France", Location: LatLng{Lat: 48.8566, Lng: 2.3522}}},
				"Tokyo": {{FormattedAddress: "Tokyo, Japan", Location: LatLng{Lat: 35.6762, Lng: 139.6503}}},
			},
		},
		Places:     &MockPlaces{},
		Directions: &MockDirections{},
		Elevation:  &MockElevation{Meters: 35},
	}
}

// Interface checks.
var (
	_ Geocoder         = (*MockGeocoder)(nil)
	_ PlacesClient     = (*MockPlaces)(nil)
	_ DirectionsClient = (*MockDirections)(nil)
	_ ElevationClient  = (*MockElevation)(nil)
)
