package travel

import (
	"context"
	"errors"
	"testing"

	"github.com/cartoscope/go-mapagent/pkg/maps"
	"github.com/cartoscope/go-mapagent/pkg/weather"
)

type stubGenerator struct {
	outline *Outline
	err     error
}

func (s *stubGenerator) GenerateOutline(ctx context.Context, req Request) (*Outline, error) {
	return s.outline, s.err
}

type stubWeather struct {
	forecast *weather.Forecast
	err      error
	calls    int
}

func (s *stubWeather) CurrentConditions(ctx context.Context, loc maps.LatLng) (*weather.CurrentConditions, error) {
	return nil, errors.New("not used")
}

func (s *stubWeather) DailyForecast(ctx context.Context, loc maps.LatLng, days int) (*weather.Forecast, error) {
	s.calls++
	return s.forecast, s.err
}

func parisGeocoder() *maps.MockGeocoder {
	return &maps.MockGeocoder{
		Results: map[string][]maps.GeocodeResult{
			"Paris": {{FormattedAddress: "Paris, France", Location: maps.LatLng{Lat: 48.8566, Lng: 2.3522}}},
		},
	}
}

func twoDayOutline() *Outline {
	return &Outline{Days: []OutlineDay{
		{Title: "Classics", Places: []OutlinePlace{
			{Name: "Louvre Museum", Description: "Morning at the museum"},
			{Name: "Eiffel Tower", Description: "Sunset views"},
		}},
		{Title: "Left Bank", Places: []OutlinePlace{
			{Name: "Luxembourg Gardens", Description: "Stroll"},
		}},
	}}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"valid", Request{Destination: "Paris", Days: 3}, false},
		{"missing destination", Request{Days: 3}, true},
		{"zero days", Request{Destination: "Paris"}, true},
		{"too many days", Request{Destination: "Paris", Days: 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildResolvesPlaces(t *testing.T) {
	louvre := maps.Place{ID: "louvre", Name: "Louvre Museum", Location: maps.LatLng{Lat: 48.8606, Lng: 2.3376}}
	places := &maps.MockPlaces{TextResults: []maps.Place{louvre}}

	p, err := NewPlanner(PlannerConfig{
		Generator: &stubGenerator{outline: twoDayOutline()},
		Geocoder:  parisGeocoder(),
		Places:    places,
	})
	if err != nil {
		t.Fatalf("NewPlanner: %v", err)
	}

	plan, err := p.Build(context.Background(), Request{Destination: "Paris", Days: 2})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if plan.Location.Lat != 48.8566 {
		t.Errorf("plan location = %v", plan.Location)
	}
	if len(plan.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(plan.Days))
	}
	if plan.Days[0].Number != 1 || plan.Days[1].Number != 2 {
		t.Error("day numbers should be one-based and sequential")
	}
	for _, stop := range plan.Days[0].Places {
		if stop.Place == nil {
			t.Errorf("place %q should be resolved", stop.Name)
		}
	}
	// One search per outline place.
	if len(places.TextRequests) != 3 {
		t.Errorf("got %d searches, want 3", len(places.TextRequests))
	}
}

func TestBuildOmitsUnresolvedPlaces(t *testing.T) {
	// Empty search results: every stop stays unresolved, but the plan
	// still comes back whole.
	p, err := NewPlanner(PlannerConfig{
		Generator: &stubGenerator{outline: twoDayOutline()},
		Geocoder:  parisGeocoder(),
		Places:    &maps.MockPlaces{},
	})
	if err != nil {
		t.Fatalf("NewPlanner: %v", err)
	}

	plan, err := p.Build(context.Background(), Request{Destination: "Paris", Days: 2})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, day := range plan.Days {
		for _, stop := range day.Places {
			if stop.Place != nil {
				t.Errorf("place %q should be unresolved", stop.Name)
			}
			if stop.Name == "" {
				t.Error("outline name should survive failed resolution")
			}
		}
	}
}

func TestBuildForecastOnlyWithStartDate(t *testing.T) {
	w := &stubWeather{forecast: &weather.Forecast{}}
	p, err := NewPlanner(PlannerConfig{
		Generator: &stubGenerator{outline: twoDayOutline()},
		Geocoder:  parisGeocoder(),
		Places:    &maps.MockPlaces{},
		Weather:   w,
	})
	if err != nil {
		t.Fatalf("NewPlanner: %v", err)
	}

	plan, err := p.Build(context.Background(), Request{Destination: "Paris", Days: 2})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if plan.Forecast != nil || w.calls != 0 {
		t.Error("forecast should not be fetched without a start date")
	}

	plan, err = p.Build(context.Background(), Request{Destination: "Paris", Days: 2, StartDate: "2026-09-20"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if plan.Forecast == nil || w.calls != 1 {
		t.Error("forecast should be fetched when a start date is given")
	}
}

func TestBuildForecastFailureIsNotFatal(t *testing.T) {
	w := &stubWeather{err: errors.New("weather down")}
	p, err := NewPlanner(PlannerConfig{
		Generator: &stubGenerator{outline: twoDayOutline()},
		Geocoder:  parisGeocoder(),
		Places:    &maps.MockPlaces{},
		Weather:   w,
	})
	if err != nil {
		t.Fatalf("NewPlanner: %v", err)
	}

	plan, err := p.Build(context.Background(), Request{Destination: "Paris", Days: 2, StartDate: "2026-09-20"})
	if err != nil {
		t.Fatalf("Build should survive a weather failure: %v", err)
	}
	if plan.Forecast != nil {
		t.Error("forecast should be omitted on failure")
	}
}

func TestBuildUnknownDestination(t *testing.T) {
	p, err := NewPlanner(PlannerConfig{
		Generator: &stubGenerator{outline: twoDayOutline()},
		Geocoder:  &maps.MockGeocoder{},
		Places:    &maps.MockPlaces{},
	})
	if err != nil {
		t.Fatalf("NewPlanner: %v", err)
	}

	if _, err := p.Build(context.Background(), Request{Destination: "Nowhereville", Days: 2}); err == nil {
		t.Error("expected error for unknown destination")
	}
}

func TestPlanDayLookup(t *testing.T) {
	plan := &Plan{Days: []Day{{Number: 1}, {Number: 2}}}

	if _, ok := plan.Day(0); ok {
		t.Error("day 0 should not exist")
	}
	if _, ok := plan.Day(3); ok {
		t.Error("day 3 should not exist")
	}
	day, ok := plan.Day(2)
	if !ok || day.Number != 2 {
		t.Errorf("Day(2) = %+v, %v", day, ok)
	}
}
