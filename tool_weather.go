package travelbuddy

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/dhamidi/travelbuddy/geocode"
	"github.com/dhamidi/travelbuddy/weather"
)

// NewWeatherTool builds the get_weather tool. The geocoder and weather
// provider are injected so tests can swap in fakes.
func NewWeatherTool(geocoder geocode.Geocoder, provider weather.Provider) *ToolDefinition {
	return &ToolDefinition{
		Tool: &genai.Tool{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "get_weather",
					Description: "Retrieves the current weather report for a specified city.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"city": {
								Type:        genai.TypeString,
								Title:       "city",
								Description: "The name of the city to get the weather for, e.g. 'Paris'.",
							},
						},
						Required: []string{"city"},
					},
				},
			},
		},
		Function: func(args map[string]any) (out map[string]any, err error) {
			defer func() {
				if r := recover(); r != nil {
					out = Failure("An unexpected error occurred: %v", r).AsMap()
					err = nil
				}
			}()
			return getWeather(context.Background(), geocoder, provider, stringArg(args, "city")).AsMap(), nil
		},
	}
}

func getWeather(ctx context.Context, geocoder geocode.Geocoder, provider weather.Provider, city string) ToolResult {
	location, err := geocoder.Geocode(ctx, city)
	if err != nil {
		return Failure("An unexpected error occurred: %v", err)
	}
	if location == nil {
		return Failure("Could not find the city: %s.", city)
	}

	current, err := provider.Current(ctx, location.Latitude, location.Longitude)
	if err != nil {
		var reqErr *weather.RequestError
		switch {
		case errors.As(err, &reqErr):
			return Failure("Request error: %v", reqErr)
		case errors.Is(err, weather.ErrNoCurrentWeather):
			return Failure("Weather data not available for %s.", city)
		default:
			return Failure("An unexpected error occurred: %v", err)
		}
	}

	return Success(
		"The current temperature in %s is %.1f°C with a wind speed of %s km/h. Weather code: %d.",
		city, current.Temperature, formatWindSpeed(current.WindSpeed), current.WeatherCode,
	)
}

// formatWindSpeed keeps one decimal, matching the precision Open-Meteo
// reports wind speeds with.
func formatWindSpeed(speed float64) string {
	return fmt.Sprintf("%.1f", speed)
}
