package travelbuddy

import "testing"

func TestToolResultExclusivity(t *testing.T) {
	tests := []struct {
		name       string
		result     ToolResult
		wantStatus string
		wantKey    string
		absentKey  string
	}{
		{"success", Success("all good: %d", 42), StatusSuccess, "report", "error_message"},
		{"error", Failure("bad: %s", "oops"), StatusError, "error_message", "report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.result.AsMap()
			if m["status"] != tt.wantStatus {
				t.Errorf("status = %v, want %v", m["status"], tt.wantStatus)
			}
			if _, ok := m[tt.wantKey]; !ok {
				t.Errorf("map is missing %q", tt.wantKey)
			}
			if _, ok := m[tt.absentKey]; ok {
				t.Errorf("map should not contain %q", tt.absentKey)
			}
			if len(m) != 2 {
				t.Errorf("map has %d keys, want 2: %v", len(m), m)
			}
		})
	}
}

func TestSuccessAndFailureFormat(t *testing.T) {
	if got := Success("hello %s", "world").Report; got != "hello world" {
		t.Errorf("Success report = %q", got)
	}
	if got := Failure("code %d", 7).ErrorMessage; got != "code 7" {
		t.Errorf("Failure message = %q", got)
	}
}

func TestToolBoxDispatch(t *testing.T) {
	tools := NewToolBox().
		Add(NewTravelInfoTool(nil)) // declaration-only use; Function is not called

	if _, found := tools.Get("get_travel_info"); !found {
		t.Error("Get(get_travel_info) not found after Add")
	}
	if _, found := tools.Get("missing_tool"); found {
		t.Error("Get(missing_tool) unexpectedly found")
	}
	if names := tools.Names(); len(names) != 1 || names[0] != "get_travel_info" {
		t.Errorf("Names() = %v", names)
	}
	if list := tools.List(); len(list.FunctionDeclarations) != 1 {
		t.Errorf("List() has %d declarations, want 1", len(list.FunctionDeclarations))
	}
}

func TestStringArg(t *testing.T) {
	args := map[string]any{"city": "Paris", "count": 3}
	if got := stringArg(args, "city"); got != "Paris" {
		t.Errorf("stringArg(city) = %q", got)
	}
	if got := stringArg(args, "count"); got != "3" {
		t.Errorf("stringArg(count) = %q", got)
	}
	if got := stringArg(args, "missing"); got != "" {
		t.Errorf("stringArg(missing) = %q", got)
	}
}
