package travel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cartoscope/go-mapagent/pkg/maps"
	"github.com/cartoscope/go-mapagent/pkg/weather"
)

// Planner orchestrates the itinerary pipeline: outline generation,
// destination geocoding, optional forecast, and per-place resolution.
// A single place or weather lookup failing never aborts the plan;
// it is logged and that piece is omitted.
type Planner struct {
	generator Generator
	geocoder  maps.Geocoder
	places    maps.PlacesClient
	weather   weather.Service
	logger    *slog.Logger
}

// PlannerConfig wires a Planner. Weather is optional; everything else
// is required.
type PlannerConfig struct {
	Generator Generator
	Geocoder  maps.Geocoder
	Places    maps.PlacesClient
	Weather   weather.Service
	Logger    *slog.Logger
}

// NewPlanner creates a planner from the config.
func NewPlanner(cfg PlannerConfig) (*Planner, error) {
	if cfg.Generator == nil {
		return nil, fmt.Errorf("travel: generator is required")
	}
	if cfg.Geocoder == nil {
		return nil, fmt.Errorf("travel: geocoder is required")
	}
	if cfg.Places == nil {
		return nil, fmt.Errorf("travel: places client is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		generator: cfg.Generator,
		geocoder:  cfg.Geocoder,
		places:    cfg.Places,
		weather:   cfg.Weather,
		logger:    logger.With("component", "travel.planner"),
	}, nil
}

// Build runs the full pipeline and returns the resolved plan.
func (p *Planner) Build(ctx context.Context, req Request) (*Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	outline, err := p.generator.GenerateOutline(ctx, req)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Destination: req.Destination,
		StartDate:   req.StartDate,
	}

	results, err := p.geocoder.Geocode(ctx, req.Destination)
	if err != nil {
		return nil, fmt.Errorf("travel: geocode destination: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("travel: could not find destination %q", req.Destination)
	}
	plan.Location = results[0].Location

	if req.StartDate != "" && p.weather != nil {
		forecast, err := p.weather.DailyForecast(ctx, plan.Location, req.Days)
		if err != nil {
			p.logger.Warn("forecast lookup failed, continuing without weather",
				"destination", req.Destination, "error", err)
		} else {
			plan.Forecast = forecast
		}
	}

	for i, day := range outline.Days {
		planned := Day{Number: i + 1, Title: day.Title}
		for _, op := range day.Places {
			planned.Places = append(planned.Places, p.resolvePlace(ctx, req.Destination, op))
		}
		plan.Days = append(plan.Days, planned)
	}

	return plan, nil
}

// resolvePlace turns an outline entry into a resolved stop via place
// text search. Lookup failures leave Place nil.
func (p *Planner) resolvePlace(ctx context.Context, destination string, op OutlinePlace) PlannedPlace {
	planned := PlannedPlace{Name: op.Name, Description: op.Description}

	query := fmt.Sprintf("%s, %s", op.Name, destination)
	found, err := p.places.TextSearch(ctx, maps.TextSearchRequest{Query: query})
	if err != nil {
		p.logger.Warn("place resolution failed, omitting place",
			"place", op.Name, "error", err)
		return planned
	}
	if len(found) == 0 {
		p.logger.Warn("place not found, omitting place", "place", op.Name)
		return planned
	}

	place := found[0]
	planned.Place = &place
	return planned
}
