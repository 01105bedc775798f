package agent

// The tool catalogs, grouped by domain. Descriptions are written for
// the model: they say when to pick the tool, not just what it does.

// NavigationCatalog declares the camera, Street View, and layer tools.
func NavigationCatalog() Catalog {
	return Catalog{
		{
			Name:        "panToLocation",
			Description: "Moves the map view to a specific address, city, landmark, or location name. Use this for navigation commands like 'Go to X', 'Fly to Y', 'Show me Z'. This tool does NOT create markers or pins, it only changes the view.",
			Params: map[string]Param{
				"locationName": {Type: TypeString, Description: "The name of the city, address, or landmark."},
			},
			Required: []string{"locationName"},
		},
		{
			Name:        "panToCoordinates",
			Description: "Moves the map center to specific latitude and longitude coordinates using smooth animation.",
			Params: map[string]Param{
				"lat": {Type: TypeNumber, Description: "The latitude"},
				"lng": {Type: TypeNumber, Description: "The longitude"},
			},
			Required: []string{"lat", "lng"},
		},
		{
			Name:        "setCenter",
			Description: "Immediately sets the map center to specific latitude and longitude coordinates (no animation).",
			Params: map[string]Param{
				"lat": {Type: TypeNumber, Description: "The latitude"},
				"lng": {Type: TypeNumber, Description: "The longitude"},
			},
			Required: []string{"lat", "lng"},
		},
		{
			Name:        "panToBounds",
			Description: "Pans the map to contain the given bounds (south, west, north, east). Zoom is NOT changed.",
			Params: map[string]Param{
				"south":   {Type: TypeNumber, Description: "Southern latitude"},
				"west":    {Type: TypeNumber, Description: "Western longitude"},
				"north":   {Type: TypeNumber, Description: "Northern latitude"},
				"east":    {Type: TypeNumber, Description: "Eastern longitude"},
				"padding": {Type: TypeNumber, Description: "Padding in pixels (optional, default 0)"},
			},
			Required: []string{"south", "west", "north", "east"},
		},
		{
			Name:        "panBy",
			Description: "Pans the map by the given distance in pixels (x, y). x increases east, y increases south.",
			Params: map[string]Param{
				"x": {Type: TypeNumber, Description: "Pixels to move in x direction (positive is east)"},
				"y": {Type: TypeNumber, Description: "Pixels to move in y direction (positive is south)"},
			},
			Required: []string{"x", "y"},
		},
		{
			Name:        "setHeading",
			Description: "Sets the compass heading for the map in degrees from cardinal North.",
			Params: map[string]Param{
				"heading": {Type: TypeNumber, Description: "The heading in degrees (0-360)"},
			},
			Required: []string{"heading"},
		},
		{
			Name:        "setTilt",
			Description: "Sets the angle of incidence of the map (tilt).",
			Params: map[string]Param{
				"tilt": {Type: TypeNumber, Description: "The angle of tilt in degrees."},
			},
			Required: []string{"tilt"},
		},
		{
			Name:        "setMapTypeId",
			Description: "Sets the type of map to display. Allowed values: 'roadmap', 'satellite', 'hybrid', 'terrain'.",
			Params: map[string]Param{
				"mapTypeId": {
					Type:        TypeString,
					Description: "The type of map. One of: 'roadmap', 'satellite', 'hybrid', 'terrain'.",
					Enum:        []string{"roadmap", "satellite", "hybrid", "terrain"},
				},
			},
			Required: []string{"mapTypeId"},
		},
		{
			Name:        "zoomInMap",
			Description: "Zooms the map in (increases detail). Use this for 'Zoom in', 'Closer', 'Show me more detail'.",
			Params: map[string]Param{
				"level": {Type: TypeNumber, Description: "Optional specific zoom level (1-20). If omitted, zooms in by one step."},
			},
		},
		{
			Name:        "zoomOutMap",
			Description: "Zooms the map out (decreases detail/wider view). Use this for 'Zoom out', 'Further away', 'Show world view'.",
			Params: map[string]Param{
				"level": {Type: TypeNumber, Description: "Optional specific zoom level (1-20). If omitted, zooms out by one step."},
			},
		},
		{
			Name:        "showStreetView",
			Description: "Shows the Street View panorama for the current map location.",
			Params:      map[string]Param{},
		},
		{
			Name:        "hideStreetView",
			Description: "Hides the Street View panorama and returns to the map view.",
			Params:      map[string]Param{},
		},
		{
			Name:        "setStreetViewPov",
			Description: "Rotates the camera to look in a specific direction or angle WITHOUT moving position. Use this for 'look up', 'turn right', 'look north'.",
			Params: map[string]Param{
				"heading": {Type: TypeNumber, Description: "The camera heading in degrees relative to true north (0-360)."},
				"pitch":   {Type: TypeNumber, Description: "The camera pitch in degrees (-90 to 90). 0 is level, 90 is straight up, -90 is straight down."},
			},
		},
		{
			Name:        "navigateStreetView",
			Description: "Moves the position of the Street View camera to the next panorama node in the specified direction. Use this for 'walk north', 'go forward', 'move northeast', 'step south'.",
			Params: map[string]Param{
				"direction": {
					Type:        TypeString,
					Description: "The direction to move/walk: north, northeast, east, southeast, south, southwest, west, northwest.",
					Enum:        []string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"},
				},
			},
			Required: []string{"direction"},
		},
		{
			Name:        "lookAroundStreetView",
			Description: "Pans the Street View camera to look around smoothly. Use this for 'pan left', 'look around to the right', 'drag view up'.",
			Params: map[string]Param{
				"direction": {
					Type:        TypeString,
					Description: "The direction to look: left, right, up, down.",
					Enum:        []string{"left", "right", "up", "down"},
				},
			},
			Required: []string{"direction"},
		},
		{
			Name:        "showTrafficLayer",
			Description: "Overlays live traffic conditions on the map. Use this for 'show traffic', 'how is traffic'.",
			Params:      map[string]Param{},
		},
		{
			Name:        "hideTrafficLayer",
			Description: "Removes the live traffic overlay from the map.",
			Params:      map[string]Param{},
		},
		{
			Name:        "showTransitLayer",
			Description: "Overlays public transit lines on the map. Use this for 'show the metro', 'show transit lines'.",
			Params:      map[string]Param{},
		},
		{
			Name:        "hideTransitLayer",
			Description: "Removes the public transit overlay from the map.",
			Params:      map[string]Param{},
		},
	}
}

// PlacesCatalog declares search, details, directions, and elevation.
func PlacesCatalog() Catalog {
	return Catalog{
		{
			Name:        "searchPlaces",
			Description: "Search for places to display on the map with markers. Use this when the user explicitly asks to 'Find', 'Search', 'Locate', or 'Show markers' for specific types of places (e.g., 'gas stations', 'restaurants') or specific POIs to see their location pinned.",
			Params: map[string]Param{
				"query":                {Type: TypeString, Description: "The text query for the search."},
				"radius":               {Type: TypeNumber, Description: "Search radius in meters (optional)."},
				"biasTowardsMapCenter": {Type: TypeBoolean, Description: "Whether to bias the search results towards the current map center (default: true)."},
				"maxResults":           {Type: TypeNumber, Description: "The maximum number of results to display."},
				"minResults":           {Type: TypeNumber, Description: "The minimum number of results to display."},
			},
			Required: []string{"query"},
		},
		{
			Name:        "searchNearby",
			Description: "Search for places of given categories around the current map center. Use this for 'what restaurants are nearby', 'find cafes around here'. Requires category types and a radius.",
			Params: map[string]Param{
				"types":      {Type: TypeArray, Description: "Place categories to search for (e.g., 'restaurant', 'cafe', 'gas_station').", Items: &Param{Type: TypeString}},
				"radius":     {Type: TypeNumber, Description: "Search radius in meters."},
				"maxResults": {Type: TypeNumber, Description: "The maximum number of results to display."},
			},
			Required: []string{"types", "radius"},
		},
		{
			Name:        "getPlaceDetailsByPlaceId",
			Description: "Get detailed information about a specific place using its Place ID.",
			Params: map[string]Param{
				"placeId": {Type: TypeString, Description: "The Place ID of the location."},
				"fields":  {Type: TypeArray, Description: "List of fields to retrieve (e.g., 'name', 'formatted_address', 'rating', 'opening_hours').", Items: &Param{Type: TypeString}},
			},
			Required: []string{"placeId"},
		},
		{
			Name:        "getPlaceDetailsByLocation",
			Description: "Get detailed information about a specific place by its name or address (e.g., 'White House', 'Eiffel Tower'). This tool will find the place, add a marker, and show its details in the side panel.",
			Params: map[string]Param{
				"location": {Type: TypeString, Description: "The name or address of the place to find."},
			},
			Required: []string{"location"},
		},
		{
			Name:        "getDirections",
			Description: "Get directions between two locations.",
			Params: map[string]Param{
				"origin":      {Type: TypeString, Description: "Starting point (address, place name, or coordinates)."},
				"destination": {Type: TypeString, Description: "Ending point (address, place name, or coordinates)."},
				"travelMode": {
					Type:        TypeString,
					Description: "Travel mode: 'DRIVING', 'WALKING', 'BICYCLING', 'TRANSIT'. Default is 'DRIVING'.",
					Enum:        []string{"DRIVING", "WALKING", "BICYCLING", "TRANSIT"},
				},
			},
			Required: []string{"origin", "destination"},
		},
		{
			Name:        "getElevation",
			Description: "Get elevation data for a specific location.",
			Params: map[string]Param{
				"lat": {Type: TypeNumber, Description: "Latitude of the location."},
				"lng": {Type: TypeNumber, Description: "Longitude of the location."},
			},
			Required: []string{"lat", "lng"},
		},
		{
			Name:        "clearMarkers",
			Description: "Removes all search markers, pins, and info windows from the map. Use this when the user says 'clear the map', 'remove markers', 'hide pins', or 'start over'.",
			Params:      map[string]Param{},
		},
	}
}

// WeatherCatalog declares the weather lookups and panel control.
func WeatherCatalog() Catalog {
	return Catalog{
		{
			Name:        "getCurrentConditions",
			Description: "Get the current weather conditions for a specific location. You can provide a city name/address (e.g., 'Paris', 'Tokyo') OR latitude/longitude coordinates.",
			Params: map[string]Param{
				"location": {Type: TypeString, Description: "City name, address, or landmark (e.g., 'Paris, France')."},
				"lat":      {Type: TypeNumber, Description: "Latitude of the location (optional if location name is provided)."},
				"lng":      {Type: TypeNumber, Description: "Longitude of the location (optional if location name is provided)."},
			},
		},
		{
			Name:        "getDailyForecast",
			Description: "Get the daily weather forecast (e.g. 10 days) for a specific location. You can provide a city name/address OR latitude/longitude coordinates.",
			Params: map[string]Param{
				"location": {Type: TypeString, Description: "City name, address, or landmark (e.g., 'Paris, France')."},
				"lat":      {Type: TypeNumber, Description: "Latitude of the location (optional if location name is provided)."},
				"lng":      {Type: TypeNumber, Description: "Longitude of the location (optional if location name is provided)."},
				"days":     {Type: TypeNumber, Description: "Number of days to forecast (optional, default 10)."},
			},
		},
		{
			Name:        "closeWeatherInfo",
			Description: "Closes the weather information panel.",
			Params:      map[string]Param{},
		},
	}
}

// TravelCatalog declares the itinerary tools.
func TravelCatalog() Catalog {
	return Catalog{
		{
			Name:        "getTravelPlan",
			Description: "Generates a multi-day travel itinerary for a destination. It finds specific places for each day and displays them on the map and in a travel panel.",
			Params: map[string]Param{
				"destination": {Type: TypeString, Description: "The city or cities to visit (e.g., 'Paris' or 'Tokyo')."},
				"days":        {Type: TypeNumber, Description: "The total number of days for the trip."},
				"startDate":   {Type: TypeString, Description: "Optional start date of the trip (e.g., '2025-02-20'). If provided, weather information will be displayed."},
				"preferences": {Type: TypeString, Description: "Optional travel preferences (e.g., 'art and history', 'foodie', 'relaxed pace')."},
			},
			Required: []string{"destination", "days"},
		},
		{
			Name:        "showTravelDay",
			Description: "Displays the itinerary for a specific day of the currently active travel plan.",
			Params: map[string]Param{
				"dayNumber": {Type: TypeNumber, Description: "The day number to show (e.g., 3 for Day 3)."},
			},
			Required: []string{"dayNumber"},
		},
	}
}
