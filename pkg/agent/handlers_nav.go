package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/cartoscope/go-mapagent/pkg/maps"
)

func (e *Executor) panToLocation(ctx context.Context, args Args) string {
	name, ok := args.String("locationName")
	if !ok {
		return missingParam("locationName")
	}
	if e.state.Geocoder == nil {
		return "Error: Geocoder not ready or initialized."
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	results, err := e.state.Geocoder.Geocode(ctx, name)
	if err != nil {
		return fmt.Sprintf("Error: Geocoding failed for '%s'. Reason: %s", name, err.Error())
	}
	if len(results) == 0 {
		return fmt.Sprintf("Error: Could not find location '%s'. Please check the spelling.", name)
	}
	e.state.Map.PanTo(results[0].Location)
	e.updatePanoramaIfVisible()
	return fmt.Sprintf("Successfully executed map.panTo() to move map to %s", name)
}

func (e *Executor) panToCoordinates(ctx context.Context, args Args) string {
	lat, ok := args.Float("lat")
	if !ok {
		return missingParam("lat")
	}
	lng, ok := args.Float("lng")
	if !ok {
		return missingParam("lng")
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	e.state.Map.PanTo(maps.LatLng{Lat: lat, Lng: lng})
	e.updatePanoramaIfVisible()
	return fmt.Sprintf("Successfully executed map.panTo() to move map to coordinates: %v, %v", lat, lng)
}

func (e *Executor) setCenter(ctx context.Context, args Args) string {
	lat, ok := args.Float("lat")
	if !ok {
		return missingParam("lat")
	}
	lng, ok := args.Float("lng")
	if !ok {
		return missingParam("lng")
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	e.state.Map.SetCenter(maps.LatLng{Lat: lat, Lng: lng})
	e.updatePanoramaIfVisible()
	return fmt.Sprintf("Successfully executed map.setCenter() with coordinates: %v, %v", lat, lng)
}

func (e *Executor) panToBounds(ctx context.Context, args Args) string {
	south, ok := args.Float("south")
	if !ok {
		return missingParam("south")
	}
	west, ok := args.Float("west")
	if !ok {
		return missingParam("west")
	}
	north, ok := args.Float("north")
	if !ok {
		return missingParam("north")
	}
	east, ok := args.Float("east")
	if !ok {
		return missingParam("east")
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	padding := 0.0
	if p, ok := args.Float("padding"); ok {
		padding = p
	}
	bounds := maps.Bounds{South: south, West: west, North: north, East: east}
	e.state.Map.PanToBounds(bounds, padding)
	return fmt.Sprintf("Successfully executed map.panToBounds() with bounds: [%v, %v, %v, %v] and padding: %v",
		south, west, north, east, padding)
}

func (e *Executor) panBy(ctx context.Context, args Args) string {
	x, ok := args.Float("x")
	if !ok {
		return missingParam("x")
	}
	y, ok := args.Float("y")
	if !ok {
		return missingParam("y")
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	e.state.Map.PanBy(x, y)
	return fmt.Sprintf("Successfully executed map.panBy(%v, %v)", x, y)
}

func (e *Executor) setHeading(ctx context.Context, args Args) string {
	heading, ok := args.Float("heading")
	if !ok {
		return missingParam("heading")
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	e.state.Map.SetHeading(heading)
	return fmt.Sprintf("Successfully executed map.setHeading(%v)", heading)
}

func (e *Executor) setTilt(ctx context.Context, args Args) string {
	tilt, ok := args.Float("tilt")
	if !ok {
		return missingParam("tilt")
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	e.state.Map.SetTilt(tilt)
	return fmt.Sprintf("Successfully executed map.setTilt(%v)", tilt)
}

func (e *Executor) setMapTypeID(ctx context.Context, args Args) string {
	raw, ok := args.String("mapTypeId")
	if !ok {
		return missingParam("mapTypeId")
	}
	mt := maps.MapType(strings.ToLower(raw))
	if !mt.IsValid() {
		return fmt.Sprintf("Error: Invalid map type '%s'. Valid types are: roadmap, satellite, hybrid, terrain.", raw)
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	e.state.Map.SetMapType(mt)
	return fmt.Sprintf("Successfully executed map.setMapTypeId('%s')", mt)
}

func (e *Executor) zoomIn(ctx context.Context, args Args) string {
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	target := e.state.Map.Zoom() + 1
	if level, ok := args.Float("level"); ok {
		target = level
	}
	e.state.Map.SetZoom(target)
	return fmt.Sprintf("Successfully executed zoomInMap. New zoom level: %v", e.state.Map.Zoom())
}

func (e *Executor) zoomOut(ctx context.Context, args Args) string {
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	target := e.state.Map.Zoom() - 1
	if level, ok := args.Float("level"); ok {
		target = level
	}
	e.state.Map.SetZoom(target)
	return fmt.Sprintf("Successfully executed zoomOutMap. New zoom level: %v", e.state.Map.Zoom())
}

func (e *Executor) showStreetView(ctx context.Context, args Args) string {
	p := e.state.Panorama
	if p == nil {
		return "Error: Street View not initialized."
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	p.SetPosition(e.state.Map.Center())
	p.SetPov(maps.Pov{Heading: e.state.Map.Heading(), Pitch: 0})
	p.SetVisible(true)
	e.state.Map.SetStreetView(p)
	return "Successfully showed Street View in split mode."
}

func (e *Executor) hideStreetView(ctx context.Context, args Args) string {
	p := e.state.Panorama
	if p == nil {
		return "Error: Street View not initialized."
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	p.SetVisible(false)
	e.state.Map.SetStreetView(nil)
	return "Successfully hidden Street View."
}

func (e *Executor) setStreetViewPov(ctx context.Context, args Args) string {
	p := e.state.Panorama
	if p == nil || !p.Visible() {
		return "Error: Street View is not currently visible. Show it first."
	}
	pov := p.Pov()
	if heading, ok := args.Float("heading"); ok {
		pov.Heading = heading
	}
	if pitch, ok := args.Float("pitch"); ok {
		pov.Pitch = pitch
	}
	p.SetPov(pov)
	applied := p.Pov()
	return fmt.Sprintf("Successfully executed panorama.setPov() with heading: %v, pitch: %v", applied.Heading, applied.Pitch)
}

func (e *Executor) navigateStreetView(ctx context.Context, args Args) string {
	direction, ok := args.String("direction")
	if !ok {
		return missingParam("direction")
	}
	p := e.state.Panorama
	if p == nil || !p.Visible() {
		return "Error: Street View is not currently visible. Show it first."
	}
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	link, ok := p.Navigate(direction)
	if !ok {
		return fmt.Sprintf("Error: Unable to move %s. No panorama link exists for that direction at the current position. Please inform the user that they cannot move in that direction here.", direction)
	}
	e.state.Map.SetCenter(p.Position())
	if link.Description != "" {
		return fmt.Sprintf("Successfully moved %s toward %s.", direction, link.Description)
	}
	return fmt.Sprintf("Successfully moved %s.", direction)
}

// look step sizes in degrees per call.
const (
	lookHeadingStep = 45.0
	lookPitchStep   = 30.0
	lookPitchMin    = -90.0
	lookPitchMax    = 90.0
)

func (e *Executor) lookAroundStreetView(ctx context.Context, args Args) string {
	direction, ok := args.String("direction")
	if !ok {
		return missingParam("direction")
	}
	p := e.state.Panorama
	if p == nil || !p.Visible() {
		return "Error: Street View is not currently visible. Show it first."
	}
	pov := p.Pov()
	switch strings.ToLower(direction) {
	case "left":
		pov.Heading -= lookHeadingStep
	case "right":
		pov.Heading += lookHeadingStep
	case "up":
		pov.Pitch += lookPitchStep
		if pov.Pitch > lookPitchMax {
			pov.Pitch = lookPitchMax
		}
	case "down":
		pov.Pitch -= lookPitchStep
		if pov.Pitch < lookPitchMin {
			pov.Pitch = lookPitchMin
		}
	default:
		return "Error: Invalid direction. Use left, right, up, or down."
	}
	p.SetPov(pov)
	applied := p.Pov()
	return fmt.Sprintf("Successfully executed panorama.setPov() with heading: %v, pitch: %v", applied.Heading, applied.Pitch)
}

func (e *Executor) showTrafficLayer(ctx context.Context, args Args) string {
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.traffic != nil && !e.traffic.Disposed() {
		return "Traffic layer is already visible."
	}
	e.traffic = maps.NewTrafficLayer()
	return "Successfully enabled the live traffic layer."
}

func (e *Executor) hideTrafficLayer(ctx context.Context, args Args) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.traffic == nil || e.traffic.Disposed() {
		return "Traffic layer is not currently visible."
	}
	e.traffic.Dispose()
	e.traffic = nil
	return "Successfully disabled the live traffic layer."
}

func (e *Executor) showTransitLayer(ctx context.Context, args Args) string {
	if e.state.Map == nil {
		return "Error: Map not initialized."
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.transit != nil && !e.transit.Disposed() {
		return "Transit layer is already visible."
	}
	e.transit = maps.NewTransitLayer()
	return "Successfully enabled the public transit layer."
}

func (e *Executor) hideTransitLayer(ctx context.Context, args Args) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.transit == nil || e.transit.Disposed() {
		return "Transit layer is not currently visible."
	}
	e.transit.Dispose()
	e.transit = nil
	return "Successfully disabled the public transit layer."
}
