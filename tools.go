package travelbuddy

import (
	"bytes"
	"fmt"

	"google.golang.org/genai"
)

// ToolDefinition pairs a genai function declaration with the Go function
// that backs it. Tool functions receive the decoded call arguments and
// return the FunctionResponse payload; failures travel inside the
// ToolResult envelope, so the error return only surfaces dispatch-level
// problems.
type ToolDefinition struct {
	Tool     *genai.Tool
	Function func(map[string]any) (map[string]any, error)
}

func (def *ToolDefinition) Name() string {
	return def.Tool.FunctionDeclarations[0].Name
}

// ToolBox indexes tool definitions by name for dispatch.
type ToolBox map[string]*ToolDefinition

func NewToolBox() ToolBox { return ToolBox{} }

func (tools ToolBox) Add(def *ToolDefinition) ToolBox {
	tools[def.Name()] = def
	return tools
}

func (tools ToolBox) Names() []string {
	names := []string{}
	for _, tool := range tools {
		names = append(names, tool.Name())
	}

	return names
}

func (tools ToolBox) Get(name string) (def *ToolDefinition, found bool) {
	def, found = tools[name]
	return
}

// List flattens the box into a single genai.Tool for the model config.
func (tools ToolBox) List() *genai.Tool {
	result := &genai.Tool{}
	for _, tool := range tools {
		result.FunctionDeclarations = append(result.FunctionDeclarations, tool.Tool.FunctionDeclarations...)
	}
	return result
}

// stringArg extracts a string argument from a function call, tolerating a
// missing key or a non-string value.
func stringArg(args map[string]any, name string) string {
	value, ok := args[name]
	if !ok || value == nil {
		return ""
	}
	text, ok := value.(string)
	if !ok {
		return fmt.Sprintf("%v", value)
	}
	return text
}

func FormatFunctionCall(fc *genai.FunctionCall) string {
	buf := bytes.NewBufferString(fc.Name)
	if fc.ID != "" {
		fmt.Fprintf(buf, "@%s", fc.ID)
	}
	fmt.Fprintf(buf, "(%s)", AsJSON(fc.Args))
	return buf.String()
}
