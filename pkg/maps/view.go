package maps

import (
	"math"
	"sync"
)

// Zoom limits: 1 is world view, 20 is building view.
const (
	MinZoom = 1
	MaxZoom = 20
)

// ViewConfig seeds the initial camera state of a MapView.
type ViewConfig struct {
	Center  LatLng
	Zoom    float64
	MapType MapType

	// Viewport dimensions in pixels, used for panBy and for
	// deciding whether a point is already in view.
	Width  float64
	Height float64
}

// DefaultViewConfig returns a camera over central Paris at city zoom.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		Center:  LatLng{Lat: 48.8566, Lng: 2.3522},
		Zoom:    12,
		MapType: MapTypeRoadmap,
		Width:   1280,
		Height:  720,
	}
}

// MapView holds the camera state of the map: center, zoom, heading,
// tilt, and base imagery. All methods are safe for concurrent use.
type MapView struct {
	mu sync.RWMutex

	center  LatLng
	zoom    float64
	heading float64
	tilt    float64
	mapType MapType

	width  float64
	height float64

	splitView  bool
	streetView *Panorama
}

// NewMapView creates a map view with the given initial camera.
func NewMapView(cfg ViewConfig) *MapView {
	if cfg.Zoom == 0 {
		cfg.Zoom = DefaultViewConfig().Zoom
	}
	if cfg.MapType == "" {
		cfg.MapType = MapTypeRoadmap
	}
	if cfg.Width == 0 {
		cfg.Width = DefaultViewConfig().Width
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultViewConfig().Height
	}
	return &MapView{
		center:  cfg.Center,
		zoom:    clampZoom(cfg.Zoom),
		mapType: cfg.MapType,
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Center returns the current camera center.
func (v *MapView) Center() LatLng {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.center
}

// PanTo moves the camera center with animation.
func (v *MapView) PanTo(p LatLng) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.center = p
}

// SetCenter moves the camera center immediately, without animation.
func (v *MapView) SetCenter(p LatLng) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.center = p
}

// PanBy shifts the camera by screen pixels. Positive x moves the view
// east, positive y moves it south.
func (v *MapView) PanBy(x, y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	scale := degreesPerPixel(v.zoom)
	v.center.Lng += x * scale
	v.center.Lat -= y * scale
}

// PanToBounds pans the camera so the bounds are centered in view.
// Zoom is not changed. Padding is in pixels and only affects whether
// the bounds are considered already visible.
func (v *MapView) PanToBounds(b Bounds, padding float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	pad := padding * degreesPerPixel(v.zoom)
	vp := v.viewportLocked()
	padded := Bounds{
		South: b.South - pad,
		West:  b.West - pad,
		North: b.North + pad,
		East:  b.East + pad,
	}
	if vp.Contains(LatLng{Lat: padded.South, Lng: padded.West}) &&
		vp.Contains(LatLng{Lat: padded.North, Lng: padded.East}) {
		return
	}
	v.center = b.Center()
}

// FitBounds centers the camera on the bounds and picks the largest
// zoom at which they fit entirely in the viewport.
func (v *MapView) FitBounds(b Bounds) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.center = b.Center()

	latSpan := b.North - b.South
	lngSpan := b.East - b.West
	if latSpan <= 0 && lngSpan <= 0 {
		return
	}
	for z := float64(MaxZoom); z >= MinZoom; z-- {
		scale := degreesPerPixel(z)
		if lngSpan <= v.width*scale && latSpan <= v.height*scale {
			v.zoom = z
			return
		}
	}
	v.zoom = MinZoom
}

// Zoom returns the current zoom level.
func (v *MapView) Zoom() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.zoom
}

// SetZoom sets the zoom level, clamped to the valid range.
func (v *MapView) SetZoom(z float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.zoom = clampZoom(z)
}

// Heading returns the compass heading in degrees from true north.
func (v *MapView) Heading() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.heading
}

// SetHeading sets the compass heading, normalized to [0, 360).
func (v *MapView) SetHeading(h float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.heading = NormalizeHeading(h)
}

// Tilt returns the angle of incidence in degrees.
func (v *MapView) Tilt() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.tilt
}

// SetTilt sets the angle of incidence.
func (v *MapView) SetTilt(t float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tilt = t
}

// MapType returns the current base imagery.
func (v *MapView) MapType() MapType {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mapType
}

// SetMapType switches the base imagery. Invalid types are the
// caller's responsibility to reject.
func (v *MapView) SetMapType(t MapType) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mapType = t
}

// Viewport returns the bounds currently covered by the camera.
func (v *MapView) Viewport() Bounds {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.viewportLocked()
}

// InView reports whether the point sits comfortably inside the current
// viewport with the camera at minZoom or closer. Used to skip
// redundant camera jumps when a target is already on screen.
func (v *MapView) InView(p LatLng, minZoom float64) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.zoom < minZoom {
		return false
	}
	return v.viewportLocked().Inset(0.2).Contains(p)
}

// SetStreetView binds a panorama to the map and enters split view.
func (v *MapView) SetStreetView(p *Panorama) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.streetView = p
	v.splitView = p != nil
}

// StreetView returns the bound panorama, or nil.
func (v *MapView) StreetView() *Panorama {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.streetView
}

// SplitView reports whether the map is sharing the layout with a
// visible panorama.
func (v *MapView) SplitView() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.splitView
}

func (v *MapView) viewportLocked() Bounds {
	scale := degreesPerPixel(v.zoom)
	halfLng := v.width / 2 * scale
	halfLat := v.height / 2 * scale
	return Bounds{
		South: v.center.Lat - halfLat,
		West:  v.center.Lng - halfLng,
		North: v.center.Lat + halfLat,
		East:  v.center.Lng + halfLng,
	}
}

// degreesPerPixel is the web-mercator longitude span of one pixel at
// the given zoom, with a 256px base tile.
func degreesPerPixel(zoom float64) float64 {
	return 360 / (256 * math.Pow(2, zoom))
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// NormalizeHeading wraps a heading in degrees into [0, 360).
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
