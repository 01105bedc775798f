package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/cartoscope/go-mapagent/pkg/maps"
	"github.com/cartoscope/go-mapagent/pkg/travel"
)

func (e *Executor) getTravelPlan(ctx context.Context, args Args) string {
	destination, ok := args.String("destination")
	if !ok {
		return missingParam("destination")
	}
	days, ok := args.Float("days")
	if !ok {
		return missingParam("days")
	}
	req := travel.Request{
		Destination: destination,
		Days:        int(days),
	}
	if start, ok := args.String("startDate"); ok {
		req.StartDate = start
	}
	if prefs, ok := args.String("preferences"); ok {
		req.Preferences = prefs
	}

	plan, err := e.planner.Build(ctx, req)
	if err != nil {
		return fmt.Sprintf("Error: Could not generate a travel plan for '%s': %s", destination, err.Error())
	}

	e.mu.Lock()
	e.plan = plan
	e.mu.Unlock()

	if e.state.Map != nil && !plan.Location.IsZero() {
		e.state.Map.PanTo(plan.Location)
	}
	e.panels.ShowTravelPlan(plan)
	e.showDayMarkers(plan, 1)

	var b strings.Builder
	fmt.Fprintf(&b, "Generated a %d-day travel plan for %s:\n", len(plan.Days), plan.Destination)
	lines := make([]string, 0, len(plan.Days))
	for _, day := range plan.Days {
		lines = append(lines, fmt.Sprintf("Day %d: %s (%d places)", day.Number, day.Title, len(day.Places)))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func (e *Executor) showTravelDay(ctx context.Context, args Args) string {
	number, ok := args.Float("dayNumber")
	if !ok {
		return missingParam("dayNumber")
	}
	e.mu.Lock()
	plan := e.plan
	e.mu.Unlock()
	if plan == nil {
		return "Error: No active travel plan. Generate one with getTravelPlan first."
	}
	day, ok := plan.Day(int(number))
	if !ok {
		return fmt.Sprintf("Error: Day %d is out of range. The current plan has %d days.", int(number), len(plan.Days))
	}

	e.panels.ShowTravelDay(plan, int(number))
	e.showDayMarkers(plan, int(number))

	var b strings.Builder
	fmt.Fprintf(&b, "Day %d of the %s plan: %s. Places:\n", day.Number, plan.Destination, day.Title)
	lines := make([]string, 0, len(day.Places))
	for _, p := range day.Places {
		lines = append(lines, p.Name)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// showDayMarkers replaces the active marker set with the resolved
// places of the given plan day and fits the camera around them.
// Unresolved places are skipped.
func (e *Executor) showDayMarkers(plan *travel.Plan, number int) {
	day, ok := plan.Day(number)
	if !ok {
		return
	}
	var places []maps.Place
	for _, p := range day.Places {
		if p.Place != nil {
			places = append(places, *p.Place)
		}
	}
	if len(places) == 0 {
		return
	}
	e.setMarkers(maps.NewMarkerSet(places))
	if e.state.Map != nil {
		if bounds, ok := maps.PlacesBounds(places); ok {
			e.state.Map.FitBounds(bounds)
		}
	}
}
