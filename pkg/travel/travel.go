// Package travel builds multi-day itineraries: a model-generated
// outline of places per day, resolved against real place search and
// optionally paired with a matching forecast.
package travel

import (
	"context"
	"fmt"

	"github.com/cartoscope/go-mapagent/pkg/maps"
	"github.com/cartoscope/go-mapagent/pkg/weather"
)

// Request describes the trip to plan.
type Request struct {
	Destination string
	Days        int
	StartDate   string
	Preferences string
}

// Validate checks the request.
func (r Request) Validate() error {
	if r.Destination == "" {
		return fmt.Errorf("travel: destination is required")
	}
	if r.Days < 1 {
		return fmt.Errorf("travel: days must be at least 1")
	}
	if r.Days > 14 {
		return fmt.Errorf("travel: plans are limited to 14 days")
	}
	return nil
}

// PlannedPlace is one stop on the itinerary. Place is nil when the
// outline entry could not be resolved to a real place; resolved stops
// carry the full normalized place.
type PlannedPlace struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Place       *maps.Place `json:"place,omitempty"`
}

// Day is one day of the itinerary.
type Day struct {
	Number int            `json:"number"`
	Title  string         `json:"title"`
	Places []PlannedPlace `json:"places"`
}

// Plan is a complete itinerary.
type Plan struct {
	Destination string            `json:"destination"`
	Location    maps.LatLng       `json:"location"`
	StartDate   string            `json:"start_date,omitempty"`
	Days        []Day             `json:"days"`
	Forecast    *weather.Forecast `json:"forecast,omitempty"`
}

// Day returns the given one-based day, or false when out of range.
func (p *Plan) Day(number int) (*Day, bool) {
	if number < 1 || number > len(p.Days) {
		return nil, false
	}
	return &p.Days[number-1], true
}

// Outline is the raw day-by-day skeleton produced by the model,
// before place resolution.
type Outline struct {
	Days []OutlineDay `json:"days"`
}

// OutlineDay is one day of the outline.
type OutlineDay struct {
	Title  string         `json:"title"`
	Places []OutlinePlace `json:"places"`
}

// OutlinePlace names a stop the model suggested.
type OutlinePlace struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Generator produces an itinerary outline for a request.
type Generator interface {
	GenerateOutline(ctx context.Context, req Request) (*Outline, error)
}
