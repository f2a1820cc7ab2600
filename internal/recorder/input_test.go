package recorder

import (
	"encoding/json"
	"strings"
	"testing"

	"hooklog/internal/model"
)

func TestReadHookInput_Defaults(t *testing.T) {
	t.Setenv("CLAUDE_PROJECT_DIR", "/tmp/from-env")

	in, err := ReadHookInput(strings.NewReader(`{"session_id":"s1"}`))
	if err != nil {
		t.Fatalf("ReadHookInput: %v", err)
	}
	if in.CWD != "/tmp/from-env" {
		t.Errorf("CWD = %q, want /tmp/from-env", in.CWD)
	}
	if in.PermissionMode != "default" {
		t.Errorf("PermissionMode = %q, want default", in.PermissionMode)
	}
}

func TestReadHookInput_BadJSON(t *testing.T) {
	if _, err := ReadHookInput(strings.NewReader("not json")); err == nil {
		t.Fatal("want error on malformed payload")
	}
}

func TestSanitizeInput(t *testing.T) {
	long := strings.Repeat("x", 300)

	tests := []struct {
		name     string
		tool     string
		raw      string
		wantType string
		check    func(t *testing.T, s *model.InputSummary)
	}{
		{
			name: "bash command truncated",
			tool: "Bash", raw: `{"command":"` + long + `"}`,
			wantType: "command",
			check: func(t *testing.T, s *model.InputSummary) {
				if len(s.Command) != summaryMaxLen+3 || !strings.HasSuffix(s.Command, "...") {
					t.Errorf("Command length = %d, want truncated with ellipsis", len(s.Command))
				}
			},
		},
		{
			name: "read keeps path",
			tool: "Read", raw: `{"file_path":"/tmp/a.go"}`,
			wantType: "file_read",
			check: func(t *testing.T, s *model.InputSummary) {
				if s.FilePath != "/tmp/a.go" {
					t.Errorf("FilePath = %q", s.FilePath)
				}
			},
		},
		{
			name: "write keeps length not content",
			tool: "Write", raw: `{"file_path":"/tmp/a.go","content":"package main"}`,
			wantType: "write",
			check: func(t *testing.T, s *model.InputSummary) {
				if s.ContentLength == nil || *s.ContentLength != 12 {
					t.Errorf("ContentLength = %v, want 12", s.ContentLength)
				}
			},
		},
		{
			name: "grep keeps pattern",
			tool: "Grep", raw: `{"pattern":"func main"}`,
			wantType: "grep",
			check: func(t *testing.T, s *model.InputSummary) {
				if s.Query != "func main" {
					t.Errorf("Query = %q", s.Query)
				}
			},
		},
		{
			name: "mcp tool keeps nothing",
			tool: "mcp__github__create_issue", raw: `{"title":"secret"}`,
			wantType: "mcp_tool",
			check: func(t *testing.T, s *model.InputSummary) {
				if s.Query != "" || s.Command != "" || s.FilePath != "" {
					t.Errorf("mcp input leaked fields: %+v", s)
				}
			},
		},
		{
			name: "task keeps description",
			tool: "Task", raw: `{"description":"explore repo","prompt":"full prompt text"}`,
			wantType: "subagent",
			check: func(t *testing.T, s *model.InputSummary) {
				if s.Query != "explore repo" {
					t.Errorf("Query = %q, want explore repo", s.Query)
				}
			},
		},
		{
			name: "unknown tool keeps only name",
			tool: "WebFetch", raw: `{"url":"https://example.com"}`,
			wantType: "webfetch",
			check:    func(t *testing.T, s *model.InputSummary) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sanitizeInput(tt.tool, json.RawMessage(tt.raw))
			if s == nil {
				t.Fatal("sanitizeInput returned nil")
			}
			if s.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", s.Type, tt.wantType)
			}
			tt.check(t, s)
		})
	}
}

func TestSanitizeInput_NullPayload(t *testing.T) {
	if s := sanitizeInput("Bash", nil); s != nil {
		t.Errorf("nil payload = %+v, want nil", s)
	}
	if s := sanitizeInput("Bash", json.RawMessage("null")); s != nil {
		t.Errorf("null payload = %+v, want nil", s)
	}
}

func TestSummarizeOutput_ObjectSuccess(t *testing.T) {
	s := summarizeOutput("Bash", json.RawMessage(`{"success":true,"stdout":"ok"}`))
	if s == nil {
		t.Fatal("summarizeOutput returned nil")
	}
	if s.Success == nil || !*s.Success {
		t.Error("Success should be true")
	}
	if s.ResultType != "object" {
		t.Errorf("ResultType = %q, want object", s.ResultType)
	}
}

func TestSummarizeOutput_ErrorFieldForcesFailure(t *testing.T) {
	s := summarizeOutput("Bash", json.RawMessage(`{"success":true,"error":"command not found"}`))
	if s.Success == nil || *s.Success {
		t.Error("an error field must mark the call failed")
	}
	if s.Error != "command not found" {
		t.Errorf("Error = %q", s.Error)
	}
	if !s.Failed() {
		t.Error("Failed() should report true")
	}
}

func TestSummarizeOutput_StringResponse(t *testing.T) {
	s := summarizeOutput("Read", json.RawMessage(`"file contents here"`))
	if s.ResultType != "string" {
		t.Errorf("ResultType = %q, want string", s.ResultType)
	}
	if s.ResultLength == nil || *s.ResultLength != len("file contents here") {
		t.Errorf("ResultLength = %v", s.ResultLength)
	}
	if s.Success == nil || !*s.Success {
		t.Error("a plain string response is a success")
	}
}

func TestSummarizeOutput_NullPayload(t *testing.T) {
	if s := summarizeOutput("Bash", nil); s != nil {
		t.Errorf("nil payload = %+v, want nil", s)
	}
}

func TestToolClassification(t *testing.T) {
	if !isMCPTool("mcp__server__tool") || isMCPTool("Bash") {
		t.Error("isMCPTool misclassified")
	}
	if !isPluginTool("myplugin:do-thing") || !isPluginTool("plugin_custom") || isPluginTool("Bash") {
		t.Error("isPluginTool misclassified")
	}
}
