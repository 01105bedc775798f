// Package maps models the map surface the agent controls: the camera,
// the Street View panorama, overlays, and the vendor clients behind
// geocoding, place search, directions, and elevation lookups.
package maps

import (
	"errors"
	"fmt"
	"math"
)

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l LatLng) String() string {
	return fmt.Sprintf("%v, %v", l.Lat, l.Lng)
}

// IsZero reports whether the coordinate is the zero value, which the
// clients use to mean "no location".
func (l LatLng) IsZero() bool {
	return l == LatLng{}
}

// Bounds is a rectangular region given by its edges in degrees.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.South + b.North) / 2,
		Lng: (b.West + b.East) / 2,
	}
}

// Contains reports whether the point lies inside the bounds.
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat >= b.South && p.Lat <= b.North &&
		p.Lng >= b.West && p.Lng <= b.East
}

// Extend grows the bounds to include the point.
func (b Bounds) Extend(p LatLng) Bounds {
	if b.IsEmpty() {
		return Bounds{South: p.Lat, West: p.Lng, North: p.Lat, East: p.Lng}
	}
	out := b
	out.South = math.Min(out.South, p.Lat)
	out.North = math.Max(out.North, p.Lat)
	out.West = math.Min(out.West, p.Lng)
	out.East = math.Max(out.East, p.Lng)
	return out
}

// Inset shrinks the bounds by the given fraction of each span.
func (b Bounds) Inset(fraction float64) Bounds {
	latMargin := (b.North - b.South) * fraction
	lngMargin := (b.East - b.West) * fraction
	return Bounds{
		South: b.South + latMargin,
		West:  b.West + lngMargin,
		North: b.North - latMargin,
		East:  b.East - lngMargin,
	}
}

// IsEmpty reports whether the bounds cover no area.
func (b Bounds) IsEmpty() bool {
	return b.South == 0 && b.West == 0 && b.North == 0 && b.East == 0
}

// MapType selects the base imagery of the map.
type MapType string

const (
	MapTypeRoadmap   MapType = "roadmap"
	MapTypeSatellite MapType = "satellite"
	MapTypeHybrid    MapType = "hybrid"
	MapTypeTerrain   MapType = "terrain"
)

// ValidMapTypes lists the accepted map types in display order.
var ValidMapTypes = []MapType{MapTypeRoadmap, MapTypeSatellite, MapTypeHybrid, MapTypeTerrain}

// IsValid reports whether t is one of the accepted map types.
func (t MapType) IsValid() bool {
	for _, v := range ValidMapTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Pov is a Street View camera orientation.
type Pov struct {
	Heading float64 `json:"heading"`
	Pitch   float64 `json:"pitch"`
}

// Place is the normalized shape every vendor place result is adapted
// into before markers and panels see it.
type Place struct {
	ID                  string   `json:"place_id"`
	Name                string   `json:"name"`
	FormattedAddress    string   `json:"formatted_address"`
	Location            LatLng   `json:"location"`
	Rating              float64  `json:"rating"`
	PhotoURL            string   `json:"photo_url,omitempty"`
	IconMaskURI         string   `json:"icon_mask_base_uri,omitempty"`
	IconBackgroundColor string   `json:"icon_background_color,omitempty"`
	Phone               string   `json:"formatted_phone_number,omitempty"`
	Types               []string `json:"types,omitempty"`
	OpenNow             bool     `json:"open_now,omitempty"`
}

// GeocodeResult is a single geocoder match.
type GeocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Location         LatLng `json:"location"`
}

// Leg is one segment of a computed route.
type Leg struct {
	DistanceText string `json:"distance"`
	DurationText string `json:"duration"`
	StartAddress string `json:"start_address"`
	EndAddress   string `json:"end_address"`
}

// Route is a computed route with at least one leg.
type Route struct {
	Summary string   `json:"summary"`
	Legs    []Leg    `json:"legs"`
	Path    []LatLng `json:"path,omitempty"`
}

// Travel modes accepted by directions requests.
const (
	TravelModeDriving   = "DRIVING"
	TravelModeWalking   = "WALKING"
	TravelModeBicycling = "BICYCLING"
	TravelModeTransit   = "TRANSIT"
)

// ValidTravelMode reports whether mode is an accepted travel mode.
func ValidTravelMode(mode string) bool {
	switch mode {
	case TravelModeDriving, TravelModeWalking, TravelModeBicycling, TravelModeTransit:
		return true
	}
	return false
}

// StatusError carries a vendor status code for a failed request, so
// callers can surface the status verbatim.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Status, e.Message)
	}
	return e.Status
}

// StatusOf extracts the vendor status from err, or returns its plain
// message when no status is attached.
func StatusOf(err error) string {
	if err == nil {
		return ""
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return err.Error()
}
