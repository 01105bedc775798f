package agent

import (
	"github.com/cartoscope/go-mapagent/pkg/maps"
	"github.com/cartoscope/go-mapagent/pkg/travel"
	"github.com/cartoscope/go-mapagent/pkg/weather"
)

// Panels is the display surface results are pushed to. Panels read
// what the executor hands them; they never mutate map overlays.
type Panels interface {
	ShowPlaces(places []maps.Place)
	ShowPlaceDetails(place *maps.Place)
	ShowDirections(route *maps.Route)
	ShowCurrentConditions(location string, cond *weather.CurrentConditions)
	ShowForecast(location string, forecast *weather.Forecast)
	ShowTravelPlan(plan *travel.Plan)
	ShowTravelDay(plan *travel.Plan, day int)
	CloseWeather()
	CloseAll()
}

// NopPanels discards every update. Used when no display is attached.
type NopPanels struct{}

func (NopPanels) ShowPlaces([]maps.Place)                               {}
func (NopPanels) ShowPlaceDetails(*maps.Place)                          {}
func (NopPanels) ShowDirections(*maps.Route)                            {}
func (NopPanels) ShowCurrentConditions(string, *weather.CurrentConditions) {}
func (NopPanels) ShowForecast(string, *weather.Forecast)                {}
func (NopPanels) ShowTravelPlan(*travel.Plan)                           {}
func (NopPanels) ShowTravelDay(*travel.Plan, int)                       {}
func (NopPanels) CloseWeather()                                         {}
func (NopPanels) CloseAll()                                             {}

var _ Panels = NopPanels{}
