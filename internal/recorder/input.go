package recorder

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"hooklog/internal/model"
)

// HookInput is the JSON object the host writes to a driver's stdin. The field
// set depends on the lifecycle kind; absent fields decode to zero values.
type HookInput struct {
	SessionID      string          `json:"session_id"`
	CWD            string          `json:"cwd"`
	PermissionMode string          `json:"permission_mode"`
	ToolName       string          `json:"tool_name"`
	ToolUseID      string          `json:"tool_use_id"`
	ToolInput      json.RawMessage `json:"tool_input"`
	ToolResponse   json.RawMessage `json:"tool_response"`
	Reason         string          `json:"reason"`
	Source         string          `json:"source"`
	StopHookActive bool            `json:"stop_hook_active"`
	Prompt         string          `json:"prompt"`
}

// ReadHookInput decodes one hook payload and normalizes the fields every
// event carries: working directory falls back to CLAUDE_PROJECT_DIR and then
// the process cwd, permission mode falls back to "default".
func ReadHookInput(r io.Reader) (HookInput, error) {
	var in HookInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return in, fmt.Errorf("decoding hook input: %w", err)
	}

	if in.CWD == "" {
		in.CWD = os.Getenv("CLAUDE_PROJECT_DIR")
	}
	if in.CWD == "" {
		in.CWD, _ = os.Getwd()
	}
	if in.PermissionMode == "" {
		in.PermissionMode = "default"
	}
	return in, nil
}

const summaryMaxLen = 200

// sanitizeInput reduces a tool's raw input to a loggable sketch. Commands and
// queries are truncated, file contents are reduced to their length, and
// anything unrecognized keeps only the tool name.
func sanitizeInput(toolName string, raw json.RawMessage) *model.InputSummary {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		fields = nil
	}

	summary := &model.InputSummary{}
	switch {
	case toolName == "Bash":
		summary.Type = "command"
		if cmd, ok := fields["command"].(string); ok {
			summary.Command = truncate(cmd, summaryMaxLen)
		}
	case toolName == "Read":
		summary.Type = "file_read"
		summary.FilePath, _ = fields["file_path"].(string)
	case toolName == "Write" || toolName == "Edit":
		summary.Type = strings.ToLower(toolName)
		summary.FilePath, _ = fields["file_path"].(string)
		if content, ok := fields["content"].(string); ok {
			n := len(content)
			summary.ContentLength = &n
		}
	case toolName == "Grep" || toolName == "Glob":
		summary.Type = strings.ToLower(toolName)
		if pattern, ok := fields["pattern"].(string); ok {
			summary.Query = pattern
		} else {
			summary.Query, _ = fields["path"].(string)
		}
	case isMCPTool(toolName):
		summary.Type = "mcp_tool"
	case toolName == "Task":
		summary.Type = "subagent"
		if desc, ok := fields["description"].(string); ok {
			summary.Query = truncate(desc, summaryMaxLen)
		}
	default:
		summary.Type = strings.ToLower(toolName)
	}

	return summary
}

// summarizeOutput reduces a tool's raw response to success/failure plus a
// size sketch. An explicit error field marks the call failed.
func summarizeOutput(_ string, raw json.RawMessage) *model.OutputSummary {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	success := true
	summary := &model.OutputSummary{Success: &success}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err == nil {
		if ok, isBool := fields["success"].(bool); isBool {
			*summary.Success = ok
		}
		if errVal, present := fields["error"]; present && errVal != nil {
			*summary.Success = false
			if msg, isStr := errVal.(string); isStr {
				summary.Error = truncate(msg, summaryMaxLen)
			} else if data, merr := json.Marshal(errVal); merr == nil {
				summary.Error = truncate(string(data), summaryMaxLen)
			}
		}
		summary.ResultType = "object"
		n := len(raw)
		summary.ResultLength = &n
		return summary
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		summary.ResultType = "string"
		n := len(text)
		summary.ResultLength = &n
	}

	return summary
}

func isMCPTool(toolName string) bool {
	return strings.HasPrefix(toolName, "mcp__")
}

func isPluginTool(toolName string) bool {
	return strings.Contains(toolName, ":") || strings.HasPrefix(toolName, "plugin_")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
