package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cartoscope/go-mapagent/pkg/maps"
	"github.com/cartoscope/go-mapagent/pkg/travel"
	"github.com/cartoscope/go-mapagent/pkg/weather"
)

// Config wires an Executor. State is required; weather and travel are
// optional and their catalogs are only advertised when present.
type Config struct {
	State   *maps.State
	Weather weather.Service
	Planner *travel.Planner
	Panels  Panels
	Logger  *slog.Logger
}

type handlerFunc func(ctx context.Context, args Args) string

// Executor is the single entry point for tool calls. It owns the
// overlay bookkeeping (markers, route, layers, active plan) and
// reports every failure as a descriptive string, never an error:
// the model conversation loop has no other channel to observe them.
type Executor struct {
	state   *maps.State
	weather weather.Service
	planner *travel.Planner
	panels  Panels
	logger  *slog.Logger

	catalog  Catalog
	handlers map[string]handlerFunc

	mu      sync.Mutex
	markers *maps.MarkerSet
	route   *maps.RouteRenderer
	traffic *maps.Layer
	transit *maps.Layer
	plan    *travel.Plan
}

// New builds an executor and fails fast when the advertised catalog
// and the dispatch table do not match exactly.
func New(cfg Config) (*Executor, error) {
	if cfg.State == nil {
		return nil, fmt.Errorf("agent: map state is required")
	}
	panels := cfg.Panels
	if panels == nil {
		panels = NopPanels{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := &Executor{
		state:   cfg.State,
		weather: cfg.Weather,
		planner: cfg.Planner,
		panels:  panels,
		logger:  logger.With("component", "agent.executor"),
	}

	catalogs := []Catalog{NavigationCatalog(), PlacesCatalog()}
	e.handlers = map[string]handlerFunc{
		"panToLocation":        e.panToLocation,
		"panToCoordinates":     e.panToCoordinates,
		"setCenter":            e.setCenter,
		"panToBounds":          e.panToBounds,
		"panBy":                e.panBy,
		"setHeading":           e.setHeading,
		"setTilt":              e.setTilt,
		"setMapTypeId":         e.setMapTypeID,
		"zoomInMap":            e.zoomIn,
		"zoomOutMap":           e.zoomOut,
		"showStreetView":       e.showStreetView,
		"hideStreetView":       e.hideStreetView,
		"setStreetViewPov":     e.setStreetViewPov,
		"navigateStreetView":   e.navigateStreetView,
		"lookAroundStreetView": e.lookAroundStreetView,
		"showTrafficLayer":     e.showTrafficLayer,
		"hideTrafficLayer":     e.hideTrafficLayer,
		"showTransitLayer":     e.showTransitLayer,
		"hideTransitLayer":     e.hideTransitLayer,
		"searchPlaces":         e.searchPlaces,
		"searchNearby":         e.searchNearby,
		"getPlaceDetailsByPlaceId":  e.placeDetailsByID,
		"getPlaceDetailsByLocation": e.placeDetailsByLocation,
		"getDirections":        e.getDirections,
		"getElevation":         e.getElevation,
		"clearMarkers":         e.clearMarkers,
	}

	if e.weather != nil {
		catalogs = append(catalogs, WeatherCatalog())
		e.handlers["getCurrentConditions"] = e.getCurrentConditions
		e.handlers["getDailyForecast"] = e.getDailyForecast
		e.handlers["closeWeatherInfo"] = e.closeWeatherInfo
	}
	if e.planner != nil {
		catalogs = append(catalogs, TravelCatalog())
		e.handlers["getTravelPlan"] = e.getTravelPlan
		e.handlers["showTravelDay"] = e.showTravelDay
	}

	catalog, err := Combine(catalogs...)
	if err != nil {
		return nil, err
	}
	e.catalog = catalog

	// Every advertised name has exactly one handler and vice versa.
	for _, d := range catalog {
		if _, ok := e.handlers[d.Name]; !ok {
			return nil, fmt.Errorf("agent: advertised tool %q has no handler", d.Name)
		}
	}
	if len(e.handlers) != len(catalog) {
		for name := range e.handlers {
			advertised := false
			for _, d := range catalog {
				if d.Name == name {
					advertised = true
					break
				}
			}
			if !advertised {
				return nil, fmt.Errorf("agent: handler %q is not advertised in the catalog", name)
			}
		}
	}

	return e, nil
}

// Catalog returns the combined catalog advertised to the model.
func (e *Executor) Catalog() Catalog {
	return e.catalog
}

// Declarations renders the catalog for the model API.
func (e *Executor) Declarations() []map[string]any {
	return e.catalog.Declarations()
}

// Execute dispatches one tool call and returns its textual result.
// Unknown names fail with a result string, not an error.
func (e *Executor) Execute(ctx context.Context, name string, args map[string]any) string {
	handler, ok := e.handlers[name]
	if !ok {
		return fmt.Sprintf("Error: Unknown tool command '%s'.", name)
	}
	e.logger.Debug("executing tool", "tool", name, "args", args)
	return handler(ctx, Args(args))
}

// ActiveMarkerCount reports the live marker count, for display state.
func (e *Executor) ActiveMarkerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.markers == nil {
		return 0
	}
	return e.markers.Len()
}

// ActiveRoute reports whether a route renderer is live.
func (e *Executor) ActiveRoute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.route != nil && !e.route.Disposed()
}

// ActivePlan returns the current travel plan, nil when none.
func (e *Executor) ActivePlan() *travel.Plan {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.plan
}

// setMarkers installs a new marker set, disposing the previous one
// first so at most one set is ever live.
func (e *Executor) setMarkers(ms *maps.MarkerSet) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.markers != nil {
		e.markers.Dispose()
	}
	e.markers = ms
	if ms != nil {
		e.logger.Debug("marker set installed", "set", ms.ID, "markers", ms.Len())
	}
}

// setRoute installs a new route renderer, disposing the previous one.
func (e *Executor) setRoute(r *maps.RouteRenderer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.route != nil {
		e.route.Dispose()
	}
	e.route = r
}

// updatePanoramaIfVisible keeps a visible panorama glued to the map
// center after camera moves.
func (e *Executor) updatePanoramaIfVisible() {
	p := e.state.Panorama
	if p != nil && p.Visible() && e.state.Map != nil {
		p.SetPosition(e.state.Map.Center())
	}
}
