// Package travelbuddy is an interactive Gemini agent that helps travelers:
// it exposes weather, local-time, and travel-guide tools the model calls on
// the user's behalf.
package travelbuddy

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/dhamidi/travelbuddy/config"
	"github.com/dhamidi/travelbuddy/geocode"
	"github.com/dhamidi/travelbuddy/travelinfo"
	"github.com/dhamidi/travelbuddy/tzlookup"
	"github.com/dhamidi/travelbuddy/weather"
)

// NewTools builds the standard travel-buddy tool box against the
// configured providers.
func NewTools(cfg *config.Config) (ToolBox, error) {
	geocoder := geocode.NewClient(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, cfg.RequestTimeout())
	provider := weather.NewClient(cfg.Weather.BaseURL, cfg.RequestTimeout())
	finder, err := tzlookup.New()
	if err != nil {
		return nil, err
	}

	tools := NewToolBox().
		Add(NewWeatherTool(geocoder, provider)).
		Add(NewTimeTool(geocoder, finder)).
		Add(NewTravelInfoTool(travelinfo.Default()))
	return tools, nil
}

// Chat starts an interactive session on stdin/stdout with the given
// initial history.
func Chat(cfg *config.Config, initialHistory []*genai.Content) error {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("initializing client: %w", err)
	}

	tools, err := NewTools(cfg)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	getUserMessage := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	agent := NewAgent(client, getUserMessage, tools, cfg.Instruction, initialHistory, "travel_buddy")
	agent.ChooseModel(cfg.Model)
	agent.PersistTo(cfg.HistoryDB)
	return agent.Run(ctx)
}
