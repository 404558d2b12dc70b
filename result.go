package travelbuddy

import "fmt"

// ToolResult status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ToolResult is the uniform envelope every tool hands back to the model:
// a report on success, an error message on failure, never both.
type ToolResult struct {
	Status       string `json:"status"`
	Report       string `json:"report,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Success builds a success result with a formatted report.
func Success(format string, args ...any) ToolResult {
	return ToolResult{Status: StatusSuccess, Report: fmt.Sprintf(format, args...)}
}

// Failure builds an error result with a formatted message.
func Failure(format string, args ...any) ToolResult {
	return ToolResult{Status: StatusError, ErrorMessage: fmt.Sprintf(format, args...)}
}

// AsMap renders the result as the payload of a genai FunctionResponse.
// Only the field selected by Status is included.
func (r ToolResult) AsMap() map[string]any {
	if r.Status == StatusSuccess {
		return map[string]any{"status": r.Status, "report": r.Report}
	}
	return map[string]any{"status": r.Status, "error_message": r.ErrorMessage}
}
