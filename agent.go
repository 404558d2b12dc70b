package travelbuddy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/dhamidi/travelbuddy/history"
)

// DefaultInstruction is the travel buddy persona handed to the model
// unless configuration overrides it.
const DefaultInstruction = "You are a friendly and helpful travel buddy agent. " +
	"You can answer user questions about the weather and time in a city, and provide travel guides " +
	"such as information on power outlets, local culture, and transportation in the destination city. " +
	"Provide relevant and practical answers for travelers."

// AgentDescription is what the agent says about itself in registration
// surfaces.
const AgentDescription = "An intelligent agent that functions as a travel buddy. " +
	"It can provide weather, time, and practical guides for destination cities."

// Agent runs the interactive chat loop: it feeds user turns to the model,
// dispatches the model's function calls through the tool box, and feeds the
// tool results back until the model answers in text.
type Agent struct {
	name              string
	client            *genai.Client
	getUserMessage    func() (string, bool)
	tools             ToolBox
	display           TextDisplayer
	tracingEnabled    bool
	systemInstruction string
	history           []*genai.Content
	modelName         string
	historyDBPath     string
}

// NewAgent wires up an agent. getUserMessage returns the next user turn and
// false once input is exhausted.
func NewAgent(client *genai.Client, getUserMessage func() (string, bool), tools ToolBox, systemInstruction string, initialHistory []*genai.Content, name string) *Agent {
	if name == "" {
		name = "travel_buddy"
	}
	if systemInstruction == "" {
		systemInstruction = DefaultInstruction
	}
	return &Agent{
		name:              name,
		client:            client,
		getUserMessage:    getUserMessage,
		tools:             tools,
		display:           NewGlamourTextDisplay(),
		systemInstruction: systemInstruction,
		history:           initialHistory,
		modelName:         "gemini-1.5-flash-002",
	}
}

// ChooseModel overrides the default model.
func (agent *Agent) ChooseModel(modelName string) *Agent {
	if modelName != "" {
		agent.modelName = modelName
	}
	return agent
}

// PersistTo makes Run save the transcript to the given history database on
// exit. An empty path disables persistence.
func (agent *Agent) PersistTo(dbPath string) *Agent {
	agent.historyDBPath = dbPath
	return agent
}

func (agent *Agent) EnableTracing() *Agent {
	agent.tracingEnabled = true
	return agent
}

func (agent *Agent) DisableTracing() *Agent {
	agent.tracingEnabled = false
	return agent
}

// Run drives the chat loop until user input ends, then persists the
// transcript if a history database is configured.
func (agent *Agent) Run(ctx context.Context) error {
	if agent.history == nil {
		agent.history = []*genai.Content{}
	}
	fmt.Printf("Chat with %s (use 'Ctrl-c' to quit)\n", agent.modelName)
	fmt.Printf("Available tools: %s\n", strings.Join(agent.tools.Names(), ", "))
	readUserInput := true
	for {
		if readUserInput {
			fmt.Printf("\u001b[94mYou [%d]\u001b[0m: ", len(agent.history))
			userInput, ok := agent.getUserMessage()
			if !ok {
				break
			}

			if strings.TrimSpace(userInput) == "/trace" {
				agent.EnableTracing()
				continue
			}
			if strings.TrimSpace(userInput) == "/no-trace" {
				agent.DisableTracing()
				continue
			}
			userMessage := genai.NewContentFromText(userInput, genai.RoleUser)
			agent.history = append(agent.history, userMessage)
		}

		response, err := agent.runInference(ctx, agent.history)
		if err != nil {
			return err
		}

		fmt.Printf("\u001b[90m%s\u001b[0m\n", formatUsageMetadata(response.UsageMetadata))

		if len(response.Candidates) == 0 {
			agent.errorMessage("empty response received")
			readUserInput = true
			continue
		}

		responseMessage := response.Candidates[0].Content
		if AsJSON(responseMessage.Parts) == "[{}]" {
			agent.errorMessage("empty response received")
			readUserInput = true
			continue
		}
		agent.history = append(agent.history, responseMessage)
		toolResults := []*genai.Content{}

		for _, content := range responseMessage.Parts {
			if content.Text != "" {
				agent.buddyMessage("%s", content.Text)
			} else if content.FunctionCall != nil {
				response := agent.executeTool(content.FunctionCall)
				toolResults = append(toolResults, response)
			}
		}

		if len(toolResults) == 0 {
			readUserInput = true
			continue
		}

		readUserInput = false
		agent.history = append(agent.history, toolResults...)
	}

	return agent.persist()
}

// persist writes the transcript to the configured history database.
func (agent *Agent) persist() error {
	if agent.historyDBPath == "" || len(agent.history) == 0 {
		return nil
	}

	conversation, err := history.New()
	if err != nil {
		return fmt.Errorf("creating conversation record: %w", err)
	}
	for _, content := range agent.history {
		if err := conversation.Append(content); err != nil {
			return err
		}
	}
	if err := history.SaveTo(conversation, agent.historyDBPath); err != nil {
		return err
	}
	fmt.Printf("\nSaved conversation %s to %s\n", conversation.ID, agent.historyDBPath)
	return nil
}

func (agent *Agent) executeTool(call *genai.FunctionCall) *genai.Content {
	agent.toolMessage("%s", FormatFunctionCall(call))
	tool, found := agent.tools.Get(call.Name)
	if !found {
		agent.toolMessage("%s", "not found")
		return genai.NewContentFromFunctionResponse(call.Name, Failure("tool not found: %s", call.Name).AsMap(), genai.RoleUser)
	}
	result, err := tool.Function(call.Args)
	if err != nil {
		agent.toolMessage("%s", err)
		return genai.NewContentFromFunctionResponse(call.Name, Failure("%v", err).AsMap(), genai.RoleUser)
	}

	agent.toolMessage("%s", CropText(AsJSON(result), 70))
	return genai.NewContentFromFunctionResponse(call.Name, result, genai.RoleUser)
}

func (agent *Agent) errorMessage(fmtStr string, value ...any) {
	fmt.Printf("\u001b[91mError [%d]\u001b[0m: "+fmtStr+"\n", append([]any{len(agent.history)}, value...)...)
}

func (agent *Agent) toolMessage(fmtStr string, value ...any) {
	fmt.Printf("\u001b[95mTool [%d]\u001b[0m: "+fmtStr+"\n", append([]any{len(agent.history)}, value...)...)
}

// buddyMessage renders a model reply, markdown and all.
func (agent *Agent) buddyMessage(fmtStr string, value ...any) {
	fmt.Printf("\u001b[93mBuddy [%d]\u001b[0m:\n", len(agent.history))
	agent.display.Display(fmt.Sprintf(fmtStr, value...))
}

func (agent *Agent) trace(direction string, arg any) {
	if !agent.tracingEnabled {
		return
	}
	fmt.Printf("\u001b[90mTrace [%d] %s\u001b[0m: %s\n", len(agent.history), direction, AsJSON(arg))
}

func (agent *Agent) runInference(ctx context.Context, conversation []*genai.Content) (*genai.GenerateContentResponse, error) {
	agent.trace(">", conversation)

	var response *genai.GenerateContentResponse
	var err error

	retryDelays := []time.Duration{5 * time.Second, 10 * time.Second, 15 * time.Second, 30 * time.Second}
	maxRetries := 5

	for attempt := 0; attempt < maxRetries; attempt++ {
		config := &genai.GenerateContentConfig{
			MaxOutputTokens: 4 * 1024,
		}
		if len(agent.tools) > 0 {
			config.Tools = []*genai.Tool{agent.tools.List()}
		}
		config.SystemInstruction = agent.systemPrompt()

		agent.trace("GenerateContentConfig", config)
		response, err = agent.client.Models.GenerateContent(ctx, agent.modelName, conversation, config)

		if err == nil {
			agent.trace("<", response)
			return response, nil
		}

		if strings.Contains(err.Error(), "An internal error has occurred") || strings.Contains(err.Error(), "server error") {
			fmt.Fprintf(os.Stderr, "Attempt %d/%d: Encountered API error: %v\n", attempt+1, maxRetries, err)
			if attempt < len(retryDelays) {
				delay := retryDelays[attempt]
				fmt.Fprintf(os.Stderr, "Retrying in %s...\n", delay)
				time.Sleep(delay)
			} else if attempt < maxRetries-1 {
				delay := retryDelays[len(retryDelays)-1]
				fmt.Fprintf(os.Stderr, "Retrying in %s...\n", delay)
				time.Sleep(delay)
			} else {
				fmt.Fprintf(os.Stderr, "All %d retry attempts failed.\n", maxRetries)
				break
			}
		} else {
			agent.trace("<", response)
			return response, err
		}
	}

	return response, fmt.Errorf("after %d attempts, last error: %w", maxRetries, err)
}

func (agent *Agent) systemPrompt() *genai.Content {
	if strings.TrimSpace(agent.systemInstruction) == "" {
		return nil
	}

	return genai.NewContentFromText(agent.systemInstruction, genai.RoleUser)
}

func AsJSON(value any) string {
	asBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(asBytes)
}

// formatUsageMetadata creates a single-line summary of token usage.
func formatUsageMetadata(metadata *genai.GenerateContentResponseUsageMetadata) string {
	if metadata == nil {
		return "Usage metadata not available."
	}
	limit := 1048576
	return fmt.Sprintf(
		"Token Usage: Prompt=%d/%d (%d%%), Candidates=%d, Total=%d",
		metadata.PromptTokenCount,
		limit,
		(metadata.PromptTokenCount*100)/int32(limit),
		metadata.CandidatesTokenCount,
		metadata.TotalTokenCount,
	)
}

func CropText(in string, width int) string {
	if len(in) <= width {
		return in
	}

	half := width / 2
	return in[0:half] + "…" + in[len(in)-half:]
}
