package travelbuddy

import (
	"context"
	"time"

	"google.golang.org/genai"

	"github.com/dhamidi/travelbuddy/geocode"
	"github.com/dhamidi/travelbuddy/tzlookup"
)

// localTimeLayout renders a timestamp as date, time, and zone abbreviation
// followed by the UTC offset, e.g. "2025-08-30 17:04:05 BST+0100".
const localTimeLayout = "2006-01-02 15:04:05 MST-0700"

// NewTimeTool builds the get_current_time tool.
func NewTimeTool(geocoder geocode.Geocoder, finder tzlookup.Finder) *ToolDefinition {
	return &ToolDefinition{
		Tool: &genai.Tool{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "get_current_time",
					Description: "Returns the current local time in a specified city.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"city": {
								Type:        genai.TypeString,
								Title:       "city",
								Description: "The name of the city to get the current time for, e.g. 'Tokyo'.",
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
					out = Failure("%v", r).AsMap()
					err = nil
				}
			}()
			return getCurrentTime(context.Background(), geocoder, finder, stringArg(args, "city")).AsMap(), nil
		},
	}
}

func getCurrentTime(ctx context.Context, geocoder geocode.Geocoder, finder tzlookup.Finder, city string) ToolResult {
	location, err := geocoder.Geocode(ctx, city)
	if err != nil {
		return Failure("%v", err)
	}
	if location == nil {
		return Failure("Could not find the city: %s.", city)
	}

	zoneName := finder.TimezoneAt(location.Longitude, location.Latitude)
	if zoneName == "" {
		return Failure("Could not determine the timezone for %s.", city)
	}

	zone, err := time.LoadLocation(zoneName)
	if err != nil {
		return Failure("%v", err)
	}

	now := time.Now().In(zone)
	return Success("The current time in %s is %s", city, now.Format(localTimeLayout))
}
