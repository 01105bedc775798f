package googlemaps

import (
	"context"
	"net/url"

	"github.com/cartoscope/go-mapagent/pkg/maps"
)

type elevationResponse struct {
	Results []struct {
		Elevation float64 `json:"elevation"`
	} `json:"results"`
}

// Elevation looks up ground elevation in meters for a single point.
func (c *Client) Elevation(ctx context.Context, loc maps.LatLng) (float64, error) {
	params := url.Values{}
	params.Set("locations", latLngParam(loc))

	var resp elevationResponse
	if err := c.get(ctx, "elevation", params, &resp); err != nil {
		return 0, err
	}
	if len(resp.Results) == 0 {
		return 0, &maps.StatusError{Status: "ZERO_RESULTS"}
	}
	return resp.Results[0].Elevation, nil
}
