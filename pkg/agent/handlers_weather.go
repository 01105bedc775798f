package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/cartoscope/go-mapagent/pkg/maps"
)

// resolveWeatherLocation turns the lat/lng or location-name arguments
// into a coordinate and a display label, panning the map there. The
// second return value is a ready-to-send error string when resolution
// fails.
func (e *Executor) resolveWeatherLocation(ctx context.Context, args Args) (maps.LatLng, string, string) {
	lat, latOK := args.Float("lat")
	lng, lngOK := args.Float("lng")
	if latOK && lngOK {
		point := maps.LatLng{Lat: lat, Lng: lng}
		if e.state.Map != nil {
			e.state.Map.PanTo(point)
		}
		return point, point.String(), ""
	}

	name, ok := args.String("location")
	if !ok {
		return maps.LatLng{}, "", missingParam("location")
	}
	if e.state.Geocoder == nil {
		return maps.LatLng{}, "", "Error: Geocoder not ready or initialized."
	}
	results, err := e.state.Geocoder.Geocode(ctx, name)
	if err != nil {
		return maps.LatLng{}, "", fmt.Sprintf("Error: Geocoding failed for '%s'. Reason: %s", name, err.Error())
	}
	if len(results) == 0 {
		return maps.LatLng{}, "", fmt.Sprintf("Error: Could not find location '%s'. Please check the spelling.", name)
	}
	point := results[0].Location
	if e.state.Map != nil {
		e.state.Map.PanTo(point)
	}
	return point, name, ""
}

func (e *Executor) getCurrentConditions(ctx context.Context, args Args) string {
	point, label, errStr := e.resolveWeatherLocation(ctx, args)
	if errStr != "" {
		return errStr
	}
	cond, err := e.weather.CurrentConditions(ctx, point)
	if err != nil {
		return fmt.Sprintf("Error: Weather lookup failed for %s: %s", label, err.Error())
	}
	e.panels.ShowCurrentConditions(label, cond)
	return fmt.Sprintf("Current conditions for %s: %s, %v degrees %s (feels like %v). Humidity: %v%%. Wind: %v %s.",
		label,
		cond.WeatherCondition.Description.Text,
		cond.Temperature.Degrees, cond.Temperature.Unit,
		cond.FeelsLikeTemperature.Degrees,
		cond.RelativeHumidity,
		cond.Wind.Speed.Value, cond.Wind.Speed.Unit)
}

const defaultForecastDays = 10

func (e *Executor) getDailyForecast(ctx context.Context, args Args) string {
	point, label, errStr := e.resolveWeatherLocation(ctx, args)
	if errStr != "" {
		return errStr
	}
	days := defaultForecastDays
	if d, ok := args.Float("days"); ok {
		days = int(d)
	}
	forecast, err := e.weather.DailyForecast(ctx, point, days)
	if err != nil {
		return fmt.Sprintf("Error: Weather lookup failed for %s: %s", label, err.Error())
	}
	if len(forecast.ForecastDays) == 0 {
		return fmt.Sprintf("Error: No forecast available for %s.", label)
	}
	e.panels.ShowForecast(label, forecast)

	var b strings.Builder
	fmt.Fprintf(&b, "%d-day forecast for %s:\n", len(forecast.ForecastDays), label)
	lines := make([]string, 0, len(forecast.ForecastDays))
	for _, day := range forecast.ForecastDays {
		desc := ""
		if day.DaytimeForecast != nil {
			desc = day.DaytimeForecast.WeatherCondition.Description.Text
		}
		lines = append(lines, fmt.Sprintf("%04d-%02d-%02d: %s, %v to %v %s",
			day.DisplayDate.Year, day.DisplayDate.Month, day.DisplayDate.Day,
			desc,
			day.MinTemperature.Degrees, day.MaxTemperature.Degrees,
			day.MaxTemperature.Unit))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func (e *Executor) closeWeatherInfo(ctx context.Context, args Args) string {
	e.panels.CloseWeather()
	return "Successfully closed the weather panel."
}
