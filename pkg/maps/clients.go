package maps

import "context"

// Geocoder resolves free-text addresses to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]GeocodeResult, error)
}

// TextSearchRequest is a free-text place search, optionally biased
// towards a location within a radius in meters.
type TextSearchRequest struct {
	Query    string
	Location *LatLng
	Radius   float64
}

// NearbySearchRequest is a category search around a point. Types and
// Radius are both required.
type NearbySearchRequest struct {
	Location LatLng
	Radius   float64
	Types    []string
}

// PlacesClient searches for places and fetches their details.
type PlacesClient interface {
	TextSearch(ctx context.Context, req TextSearchRequest) ([]Place, error)
	NearbySearch(ctx context.Context, req NearbySearchRequest) ([]Place, error)
	Details(ctx context.Context, placeID string, fields []string) (*Place, error)
}

// RouteRequest asks for directions between two endpoints. Mode is one
// of the travel mode constants; empty means driving.
type RouteRequest struct {
	Origin      string
	Destination string
	Mode        string
}

// DirectionsClient computes routes. Failures carry the vendor status
// as a *StatusError.
type DirectionsClient interface {
	Route(ctx context.Context, req RouteRequest) (*Route, error)
}

// ElevationClient looks up ground elevation in meters for a point.
type ElevationClient interface {
	Elevation(ctx context.Context, loc LatLng) (float64, error)
}

// State bundles the map handles and vendor clients passed into every
// executed command. The executor reads and mutates these but never
// creates or destroys them; the bundle is built once at startup and
// lives for the whole session.
type State struct {
	Map        *MapView
	Geocoder   Geocoder
	Panorama   *Panorama
	Places     PlacesClient
	Directions DirectionsClient
	Elevation  ElevationClient
}
