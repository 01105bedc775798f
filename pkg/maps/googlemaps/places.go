package googlemaps

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cartoscope/go-mapagent/pkg/maps"
)

// placeResult is the raw place shape shared by the search and details
// endpoints. Every result is adapted into maps.Place before leaving
// this package.
type placeResult struct {
	PlaceID          string `json:"place_id"`
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
	Vicinity         string `json:"vicinity"`
	Geometry         struct {
		Location maps.LatLng `json:"location"`
	} `json:"geometry"`
	Rating float64 `json:"rating"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
	IconMaskBaseURI      string   `json:"icon_mask_base_uri"`
	IconBackgroundColor  string   `json:"icon_background_color"`
	FormattedPhoneNumber string   `json:"formatted_phone_number"`
	Types                []string `json:"types"`
	OpeningHours         *struct {
		OpenNow bool `json:"open_now"`
	} `json:"opening_hours"`
}

func (c *Client) adaptPlace(p placeResult) maps.Place {
	address := p.FormattedAddress
	if address == "" {
		address = p.Vicinity
	}
	place := maps.Place{
		ID:                  p.PlaceID,
		Name:                p.Name,
		FormattedAddress:    address,
		Location:            p.Geometry.Location,
		Rating:              p.Rating,
		IconMaskURI:         p.IconMaskBaseURI,
		IconBackgroundColor: p.IconBackgroundColor,
		Phone:               p.FormattedPhoneNumber,
		Types:               p.Types,
	}
	if len(p.Photos) > 0 && p.Photos[0].PhotoReference != "" {
		place.PhotoURL = fmt.Sprintf("%s/place/photo?maxwidth=400&photo_reference=%s&key=%s",
			c.baseURL, p.Photos[0].PhotoReference, c.apiKey)
	}
	if p.OpeningHours != nil {
		place.OpenNow = p.OpeningHours.OpenNow
	}
	return place
}

type placesSearchResponse struct {
	Results []placeResult `json:"results"`
}

// TextSearch runs a free-text place search, optionally biased towards
// a location within a radius.
func (c *Client) TextSearch(ctx context.Context, req maps.TextSearchRequest) ([]maps.Place, error) {
	params := url.Values{}
	params.Set("query", req.Query)
	if req.Location != nil {
		params.Set("location", latLngParam(*req.Location))
		if req.Radius > 0 {
			params.Set("radius", fmt.Sprintf("%v", req.Radius))
		}
	}

	var resp placesSearchResponse
	if err := c.get(ctx, "place/textsearch", params, &resp); err != nil {
		return nil, err
	}
	return c.adaptPlaces(resp.Results), nil
}

// NearbySearch runs a category search around a point.
func (c *Client) NearbySearch(ctx context.Context, req maps.NearbySearchRequest) ([]maps.Place, error) {
	params := url.Values{}
	params.Set("location", latLngParam(req.Location))
	params.Set("radius", fmt.Sprintf("%v", req.Radius))
	if len(req.Types) > 0 {
		params.Set("type", strings.Join(req.Types, "|"))
	}

	var resp placesSearchResponse
	if err := c.get(ctx, "place/nearbysearch", params, &resp); err != nil {
		return nil, err
	}
	return c.adaptPlaces(resp.Results), nil
}

type placeDetailsResponse struct {
	Result placeResult `json:"result"`
}

// defaultDetailFields are requested when the caller does not name any.
var defaultDetailFields = []string{
	"name", "formatted_address", "geometry", "rating", "formatted_phone_number",
}

// Details fetches full information for one place by its ID.
func (c *Client) Details(ctx context.Context, placeID string, fields []string) (*maps.Place, error) {
	if len(fields) == 0 {
		fields = defaultDetailFields
	}
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", strings.Join(fields, ","))

	var resp placeDetailsResponse
	if err := c.get(ctx, "place/details", params, &resp); err != nil {
		return nil, err
	}
	place := c.adaptPlace(resp.Result)
	if place.ID == "" {
		place.ID = placeID
	}
	return &place, nil
}

func (c *Client) adaptPlaces(results []placeResult) []maps.Place {
	places := make([]maps.Place, 0, len(results))
	for _, r := range results {
		places = append(places, c.adaptPlace(r))
	}
	return places
}
