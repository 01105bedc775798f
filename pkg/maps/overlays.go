package maps

import (
	"sync"

	"github.com/google/uuid"
)

// Marker is a single place pin on the map.
type Marker struct {
	Place Place
}

// MarkerSet is the collection of markers produced by one place search.
// At most one set should be live at a time; callers dispose the
// previous set before installing a new one.
type MarkerSet struct {
	// ID identifies the set in logs.
	ID string

	mu       sync.Mutex
	markers  []Marker
	disposed bool
}

// NewMarkerSet creates a marker for every place that has a location.
func NewMarkerSet(places []Place) *MarkerSet {
	s := &MarkerSet{ID: uuid.NewString()}
	for _, p := range places {
		if p.Location == (LatLng{}) {
			continue
		}
		s.markers = append(s.markers, Marker{Place: p})
	}
	return s
}

// Len returns the number of live markers, zero once disposed.
func (s *MarkerSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return 0
	}
	return len(s.markers)
}

// Markers returns a copy of the live markers.
func (s *MarkerSet) Markers() []Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return nil
	}
	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// Bounds returns the bounds enclosing all live markers.
func (s *MarkerSet) Bounds() Bounds {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b Bounds
	if s.disposed {
		return b
	}
	for _, m := range s.markers {
		b = b.Extend(m.Place.Location)
	}
	return b
}

// Dispose removes all markers. Safe to call more than once.
func (s *MarkerSet) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	s.markers = nil
}

// Disposed reports whether the set has been disposed.
func (s *MarkerSet) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// PlacesBounds returns the bounds enclosing every place that has a
// location. ok is false when no place carries one.
func PlacesBounds(places []Place) (Bounds, bool) {
	var b Bounds
	found := false
	for _, p := range places {
		if p.Location.IsZero() {
			continue
		}
		b = b.Extend(p.Location)
		found = true
	}
	return b, found
}

// RouteRenderer draws one computed route on the map.
type RouteRenderer struct {
	mu       sync.Mutex
	route    *Route
	disposed bool
}

// NewRouteRenderer creates a renderer showing the given route.
func NewRouteRenderer(route *Route) *RouteRenderer {
	return &RouteRenderer{route: route}
}

// Route returns the rendered route, nil once disposed.
func (r *RouteRenderer) Route() *Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed {
		return nil
	}
	return r.route
}

// SetRoute replaces the rendered route.
func (r *RouteRenderer) SetRoute(route *Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed {
		return
	}
	r.route = route
}

// Dispose removes the route from the map. Safe to call more than once.
func (r *RouteRenderer) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disposed = true
	r.route = nil
}

// Disposed reports whether the renderer has been disposed.
func (r *RouteRenderer) Disposed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disposed
}

// Layer is a toggleable map overlay such as live traffic or transit
// lines. At most one layer of each kind should be live at a time.
type Layer struct {
	mu       sync.Mutex
	kind     string
	disposed bool
}

// NewTrafficLayer creates a live-traffic overlay.
func NewTrafficLayer() *Layer {
	return &Layer{kind: "traffic"}
}

// NewTransitLayer creates a transit-lines overlay.
func NewTransitLayer() *Layer {
	return &Layer{kind: "transit"}
}

// Kind returns "traffic" or "transit".
func (l *Layer) Kind() string {
	return l.kind
}

// Dispose removes the layer from the map. Safe to call more than once.
func (l *Layer) Dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disposed = true
}

// Disposed reports whether the layer has been disposed.
func (l *Layer) Disposed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disposed
}
