package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cartoscope/go-mapagent/pkg/maps"
)

func formatPlaces(places []maps.Place) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d places. Results:\n", len(places))
	lines := make([]string, 0, len(places))
	for _, p := range places {
		lines = append(lines, fmt.Sprintf("%s (%v★) - %s", p.Name, p.Rating, p.FormattedAddress))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// clipResults applies the optional maxResults cap and logs when the
// soft minResults floor is not met. Too few results is a warning, not
// an error.
func (e *Executor) clipResults(places []maps.Place, args Args) []maps.Place {
	if max, ok := args.Float("maxResults"); ok && int(max) < len(places) {
		places = places[:int(max)]
	}
	if min, ok := args.Float("minResults"); ok && len(places) < int(min) {
		e.logger.Warn("fewer results than requested minimum",
			"found", len(places), "minimum", int(min))
	}
	return places
}

// showMarkers replaces the active marker set with one for the given
// places and pushes the list to the display panels.
func (e *Executor) showMarkers(places []maps.Place) {
	e.setMarkers(maps.NewMarkerSet(places))
	e.panels.ShowPlaces(places)
}

func (e *Executor) searchPlaces(ctx context.Context, args Args) string {
	query, ok := args.String("query")
	if !ok {
		return missingParam("query")
	}
	if e.state.Places == nil {
		return "Error: PlacesService not initialized."
	}
	req := maps.TextSearchRequest{Query: query}
	biased := false
	if args.Bool("biasTowardsMapCenter") && e.state.Map != nil {
		biased = true
		center := e.state.Map.Center()
		req.Location = &center
		if radius, ok := args.Float("radius"); ok {
			req.Radius = radius
		}
	}
	results, err := e.state.Places.TextSearch(ctx, req)
	if err != nil {
		return fmt.Sprintf("No places found or error: %s", maps.StatusOf(err))
	}
	if len(results) == 0 {
		return "No places found or error: ZERO_RESULTS"
	}
	results = e.clipResults(results, args)
	e.showMarkers(results)
	if !biased && e.state.Map != nil {
		if bounds, ok := maps.PlacesBounds(results); ok {
			e.state.Map.FitBounds(bounds)
		}
	}
	return formatPlaces(results)
}

func (e *Executor) searchNearby(ctx context.Context, args Args) string {
	types := args.Strings("types")
	if len(types) == 0 {
		return missingParam("types")
	}
	radius, ok := args.Float("radius")
	if !ok {
		return missingParam("radius")
	}
	if e.state.Places == nil {
		return "Error: PlacesService not initialized."
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	results, err := e.state.Places.NearbySearch(ctx, maps.NearbySearchRequest{
		Location: e.state.Map.Center(),
		Radius:   radius,
		Types:    types,
	})
	if err != nil {
		return fmt.Sprintf("No places found or error: %s", maps.StatusOf(err))
	}
	if len(results) == 0 {
		return "No places found or error: ZERO_RESULTS"
	}
	results = e.clipResults(results, args)
	e.showMarkers(results)
	return formatPlaces(results)
}

func (e *Executor) placeDetailsByID(ctx context.Context, args Args) string {
	placeID, ok := args.String("placeId")
	if !ok {
		return missingParam("placeId")
	}
	if e.state.Places == nil {
		return "Error: PlacesService not initialized."
	}
	place, err := e.state.Places.Details(ctx, placeID, args.Strings("fields"))
	if err != nil {
		return fmt.Sprintf("Error getting place details: %s", maps.StatusOf(err))
	}
	if !place.Location.IsZero() && e.state.Map != nil {
		e.state.Map.PanTo(place.Location)
	}
	out, err := json.MarshalIndent(place, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error getting place details: %s", err.Error())
	}
	return string(out)
}

func (e *Executor) placeDetailsByLocation(ctx context.Context, args Args) string {
	location, ok := args.String("location")
	if !ok {
		return missingParam("location")
	}
	if e.state.Places == nil {
		return "Error: PlacesService not initialized."
	}
	results, err := e.state.Places.TextSearch(ctx, maps.TextSearchRequest{Query: location})
	if err != nil {
		return fmt.Sprintf("Error getting place details: %s", maps.StatusOf(err))
	}
	if len(results) == 0 {
		return fmt.Sprintf("Error: Could not find place '%s'.", location)
	}
	place, err := e.state.Places.Details(ctx, results[0].ID, nil)
	if err != nil {
		return fmt.Sprintf("Error getting place details: %s", maps.StatusOf(err))
	}
	e.showMarkers([]maps.Place{*place})
	e.panels.ShowPlaceDetails(place)
	if !place.Location.IsZero() && e.state.Map != nil {
		// Skip the camera jump when the place is already comfortably
		// in view at a useful zoom.
		if !e.state.Map.InView(place.Location, 15) {
			e.state.Map.PanTo(place.Location)
			e.state.Map.SetZoom(15)
		}
	}
	return fmt.Sprintf("Showing details for %s at %s.", place.Name, place.FormattedAddress)
}

func (e *Executor) getDirections(ctx context.Context, args Args) string {
	origin, ok := args.String("origin")
	if !ok {
		return missingParam("origin")
	}
	destination, ok := args.String("destination")
	if !ok {
		return missingParam("destination")
	}
	if e.state.Directions == nil {
		return "Error: DirectionsService not initialized."
	}
	mode := maps.TravelModeDriving
	if raw, ok := args.String("travelMode"); ok {
		m := strings.ToUpper(raw)
		if !maps.ValidTravelMode(m) {
			return fmt.Sprintf("Error: Invalid travel mode '%s'. Valid modes are: DRIVING, WALKING, BICYCLING, TRANSIT.", raw)
		}
		mode = m
	}
	route, err := e.state.Directions.Route(ctx, maps.RouteRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
	})
	if err != nil {
		return fmt.Sprintf("Directions request failed due to %s", maps.StatusOf(err))
	}
	if len(route.Legs) == 0 {
		return "Directions request failed due to ZERO_RESULTS"
	}
	e.setRoute(maps.NewRouteRenderer(route))
	e.panels.ShowDirections(route)
	leg := route.Legs[0]
	return fmt.Sprintf("Directions found: %s (%s). Start at %s, go to %s.",
		leg.DistanceText, leg.DurationText, leg.StartAddress, leg.EndAddress)
}

func (e *Executor) getElevation(ctx context.Context, args Args) string {
	lat, ok := args.Float("lat")
	if !ok {
		return missingParam("lat")
	}
	lng, ok := args.Float("lng")
	if !ok {
		return missingParam("lng")
	}
	if e.state.Elevation == nil {
		return "Error: ElevationService not initialized."
	}
	location := maps.LatLng{Lat: lat, Lng: lng}
	meters, err := e.state.Elevation.Elevation(ctx, location)
	if err != nil {
		return fmt.Sprintf("Elevation request failed: %s", maps.StatusOf(err))
	}
	return fmt.Sprintf("Elevation at %v, %v is %.2f meters.", location.Lat, location.Lng, meters)
}

func (e *Executor) clearMarkers(ctx context.Context, args Args) string {
	e.mu.Lock()
	if e.markers != nil {
		e.markers.Dispose()
		e.markers = nil
	}
	if e.route != nil {
		e.route.Dispose()
		e.route = nil
	}
	if e.traffic != nil {
		e.traffic.Dispose()
		e.traffic = nil
	}
	if e.transit != nil {
		e.transit.Dispose()
		e.transit = nil
	}
	e.plan = nil
	e.mu.Unlock()
	e.panels.CloseAll()
	return "Successfully cleared all markers and directions from the map."
}
