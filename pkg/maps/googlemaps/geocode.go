package googlemaps

import (
	"context"
	"net/url"

	"github.com/cartoscope/go-mapagent/pkg/maps"
)

type geocodeResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location maps.LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-text address. An empty result set means the
// address did not match anything; it is not an error.
func (c *Client) Geocode(ctx context.Context, address string) ([]maps.GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", address)

	var resp geocodeResponse
	if err := c.get(ctx, "geocode", params, &resp); err != nil {
		return nil, err
	}

	results := make([]maps.GeocodeResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, maps.GeocodeResult{
			FormattedAddress: r.FormattedAddress,
			Location:         r.Geometry.Location,
		})
	}
	return results, nil
}
