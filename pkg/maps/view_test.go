package maps

import (
	"math"
	"testing"
)

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 90, 90},
		{"wraps past 360", 370, 10},
		{"exactly 360", 360, 0},
		{"negative", -10, 350},
		{"large negative", -730, 350},
		{"multiple wraps", 725, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHeading(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeHeading(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetHeadingWrap(t *testing.T) {
	v := NewMapView(DefaultViewConfig())

	// Crossing the 0/360 boundary must not produce a discontinuity
	// larger than the actual angular delta.
	v.SetHeading(350)
	before := v.Heading()
	v.SetHeading(370)
	after := v.Heading()

	if after != 10 {
		t.Errorf("heading after 370 = %v, want 10", after)
	}
	delta := math.Abs(after - before)
	if delta > 180 {
		delta = 360 - delta
	}
	if delta != 20 {
		t.Errorf("angular delta = %v, want 20", delta)
	}
}

func TestSetZoomClamp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below min", 0, 1},
		{"min", 1, 1},
		{"mid", 12, 12},
		{"max", 20, 20},
		{"above max", 25, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewMapView(DefaultViewConfig())
			v.SetZoom(tt.in)
			if got := v.Zoom(); got != tt.want {
				t.Errorf("SetZoom(%v): zoom = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPanByDirection(t *testing.T) {
	v := NewMapView(DefaultViewConfig())
	start := v.Center()

	// Positive x moves east, positive y moves south.
	v.PanBy(100, 100)
	after := v.Center()

	if after.Lng <= start.Lng {
		t.Errorf("positive x should increase longitude: %v -> %v", start.Lng, after.Lng)
	}
	if after.Lat >= start.Lat {
		t.Errorf("positive y should decrease latitude: %v -> %v", start.Lat, after.Lat)
	}
}

func TestPanToBoundsKeepsZoom(t *testing.T) {
	v := NewMapView(DefaultViewConfig())
	zoomBefore := v.Zoom()

	b := Bounds{South: 40, West: -75, North: 41, East: -73}
	v.PanToBounds(b, 0)

	if v.Zoom() != zoomBefore {
		t.Errorf("panToBounds changed zoom: %v -> %v", zoomBefore, v.Zoom())
	}
	center := v.Center()
	want := b.Center()
	if center != want {
		t.Errorf("center = %v, want %v", center, want)
	}
}

func TestInView(t *testing.T) {
	v := NewMapView(ViewConfig{
		Center: LatLng{Lat: 48.8566, Lng: 2.3522},
		Zoom:   12,
		Width:  1280,
		Height: 720,
	})

	if !v.InView(v.Center(), 10) {
		t.Error("center should be in view at sufficient zoom")
	}
	if v.InView(v.Center(), 15) {
		t.Error("center should not count as in view below the required zoom")
	}
	if v.InView(LatLng{Lat: 35.6762, Lng: 139.6503}, 10) {
		t.Error("a point on another continent should not be in view")
	}
}

func TestFitBounds(t *testing.T) {
	v := NewMapView(DefaultViewConfig())
	b := Bounds{South: 48.80, West: 2.25, North: 48.91, East: 2.42}
	v.FitBounds(b)

	if v.Center() != b.Center() {
		t.Errorf("center = %v, want %v", v.Center(), b.Center())
	}
	vp := v.Viewport()
	if !vp.Contains(LatLng{Lat: b.South, Lng: b.West}) || !vp.Contains(LatLng{Lat: b.North, Lng: b.East}) {
		t.Errorf("viewport %+v does not contain bounds %+v", vp, b)
	}
}

func TestBoundsExtend(t *testing.T) {
	var b Bounds
	b = b.Extend(LatLng{Lat: 10, Lng: 20})
	b = b.Extend(LatLng{Lat: -5, Lng: 25})

	want := Bounds{South: -5, West: 20, North: 10, East: 25}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}

func TestMapTypeIsValid(t *testing.T) {
	for _, mt := range ValidMapTypes {
		if !mt.IsValid() {
			t.Errorf("%q should be valid", mt)
		}
	}
	if MapType("streetmap").IsValid() {
		t.Error("unknown map type should be invalid")
	}
}
