package travelbuddy

import (
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/dhamidi/travelbuddy/travelinfo"
)

// NewTravelInfoTool builds the get_travel_info tool on top of a guide. The
// guide is constructed once at startup and shared read-only across calls.
func NewTravelInfoTool(guide *travelinfo.Guide) *ToolDefinition {
	return &ToolDefinition{
		Tool: &genai.Tool{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "get_travel_info",
					Description: "Provides travel information for a specified city, such as power outlets, local culture, or transportation.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"city": {
								Type:        genai.TypeString,
								Title:       "city",
								Description: "The destination city, e.g. 'Tokyo'.",
							},
							"info_type": {
								Type:        genai.TypeString,
								Title:       "info_type",
								Description: "The kind of information requested: 'power outlets', 'culture', or 'transportation'.",
							},
						},
						Required: []string{"city", "info_type"},
					},
				},
			},
		},
		Function: func(args map[string]any) (out map[string]any, err error) {
			defer func() {
				if r := recover(); r != nil {
					out = Failure("An error occurred while fetching travel information: %v", r).AsMap()
					err = nil
				}
			}()
			return getTravelInfo(guide, stringArg(args, "city"), stringArg(args, "info_type")).AsMap(), nil
		},
	}
}

func getTravelInfo(guide *travelinfo.Guide, city, infoType string) ToolResult {
	fact, err := guide.Lookup(city, infoType)
	if err != nil {
		var unknownCity *travelinfo.UnknownCityError
		var unknownCategory *travelinfo.UnknownCategoryError
		switch {
		case errors.As(err, &unknownCity):
			return Failure(
				"Sorry, I don't have specific travel information for %s yet. You can try major cities like London, Tokyo, New York, or Paris.",
				city,
			)
		case errors.As(err, &unknownCategory):
			return Failure(
				"Sorry, I don't have information about '%s' for %s. Available information includes: %s.",
				infoType, city, strings.Join(unknownCategory.Available, ", "),
			)
		default:
			return Failure("An error occurred while fetching travel information: %v", err)
		}
	}

	// Report with the caller's original casing, not the lower-cased lookup keys.
	return Success("For %s in %s: %s", infoType, city, fact)
}
