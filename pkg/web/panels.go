package web

import (
	"github.com/cartoscope/go-mapagent/pkg/agent"
	"github.com/cartoscope/go-mapagent/pkg/maps"
	"github.com/cartoscope/go-mapagent/pkg/travel"
	"github.com/cartoscope/go-mapagent/pkg/weather"
)

// The executor pushes panel updates here; each becomes one event on
// the websocket feed and the browser renders the matching panel.

var _ agent.Panels = (*Server)(nil)

func (s *Server) ShowPlaces(places []maps.Place) {
	s.broadcastEvent("places", places)
}

func (s *Server) ShowPlaceDetails(place *maps.Place) {
	s.broadcastEvent("place_details", place)
}

func (s *Server) ShowDirections(route *maps.Route) {
	s.broadcastEvent("directions", route)
}

// weatherPayload pairs a resolved location label with its data.
type weatherPayload struct {
	Location string `json:"location"`
	Data     any    `json:"data"`
}

func (s *Server) ShowCurrentConditions(location string, cond *weather.CurrentConditions) {
	s.broadcastEvent("weather_current", weatherPayload{Location: location, Data: cond})
}

func (s *Server) ShowForecast(location string, forecast *weather.Forecast) {
	s.broadcastEvent("weather_forecast", weatherPayload{Location: location, Data: forecast})
}

func (s *Server) ShowTravelPlan(plan *travel.Plan) {
	s.broadcastEvent("travel_plan", plan)
}

// travelDayPayload points the browser at one day of the active plan.
type travelDayPayload struct {
	Day  int          `json:"day"`
	Plan *travel.Plan `json:"plan"`
}

func (s *Server) ShowTravelDay(plan *travel.Plan, day int) {
	s.broadcastEvent("travel_day", travelDayPayload{Day: day, Plan: plan})
}

func (s *Server) CloseWeather() {
	s.broadcastEvent("weather_closed", nil)
}

func (s *Server) CloseAll() {
	s.broadcastEvent("panels_closed", nil)
}
