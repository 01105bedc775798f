package maps

import "testing"

func TestMarkerSetSkipsPlacesWithoutLocation(t *testing.T) {
	places := []Place{
		{Name: "A", Location: LatLng{Lat: 1, Lng: 1}},
		{Name: "no location"},
		{Name: "B", Location: LatLng{Lat: 2, Lng: 2}},
	}
	s := NewMarkerSet(places)
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}
}

func TestMarkerSetDisposeIdempotent(t *testing.T) {
	s := NewMarkerSet([]Place{{Name: "A", Location: LatLng{Lat: 1, Lng: 1}}})

	s.Dispose()
	if s.Len() != 0 {
		t.Errorf("len after dispose = %d, want 0", s.Len())
	}
	s.Dispose()
	if !s.Disposed() {
		t.Error("set should stay disposed")
	}
	if s.Markers() != nil {
		t.Error("markers should be nil after dispose")
	}
}

func TestMarkerSetBounds(t *testing.T) {
	s := NewMarkerSet([]Place{
		{Name: "A", Location: LatLng{Lat: 1, Lng: 3}},
		{Name: "B", Location: LatLng{Lat: 2, Lng: 4}},
	})
	want := Bounds{South: 1, West: 3, North: 2, East: 4}
	if got := s.Bounds(); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestRouteRendererDispose(t *testing.T) {
	r := NewRouteRenderer(&Route{Summary: "A40"})
	if r.Route() == nil {
		t.Fatal("route should be set")
	}
	r.Dispose()
	r.Dispose()
	if r.Route() != nil {
		t.Error("route should be nil after dispose")
	}
}

func TestLayerKinds(t *testing.T) {
	traffic := NewTrafficLayer()
	transit := NewTransitLayer()
	if traffic.Kind() != "traffic" || transit.Kind() != "transit" {
		t.Errorf("kinds = %q, %q", traffic.Kind(), transit.Kind())
	}
	traffic.Dispose()
	if !traffic.Disposed() {
		t.Error("layer should be disposed")
	}
}
