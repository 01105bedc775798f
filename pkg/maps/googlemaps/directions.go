package googlemaps

import (
	"context"
	"net/url"
	"strings"

	"github.com/cartoscope/go-mapagent/pkg/maps"
)

type directionsResponse struct {
	Routes []struct {
		Summary string `json:"summary"`
		Legs    []struct {
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
			StartAddress string `json:"start_address"`
			EndAddress   string `json:"end_address"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route computes directions between two endpoints. A request that
// matches no route fails with status ZERO_RESULTS.
func (c *Client) Route(ctx context.Context, req maps.RouteRequest) (*maps.Route, error) {
	mode := req.Mode
	if mode == "" {
		mode = maps.TravelModeDriving
	}

	params := url.Values{}
	params.Set("origin", req.Origin)
	params.Set("destination", req.Destination)
	params.Set("mode", strings.ToLower(mode))

	var resp directionsResponse
	if err := c.get(ctx, "directions", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Routes) == 0 {
		return nil, &maps.StatusError{Status: "ZERO_RESULTS"}
	}

	raw := resp.Routes[0]
	route := &maps.Route{Summary: raw.Summary}
	for _, leg := range raw.Legs {
		route.Legs = append(route.Legs, maps.Leg{
			DistanceText: leg.Distance.Text,
			DurationText: leg.Duration.Text,
			StartAddress: leg.StartAddress,
			EndAddress:   leg.EndAddress,
		})
	}
	return route, nil
}
