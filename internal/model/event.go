package model

import "time"

// EventKind identifies which lifecycle hook produced an event.
type EventKind string

// The seven lifecycle events emitted by the Claude Code hook framework.
const (
	KindSessionStart     EventKind = "SessionStart"
	KindPreToolUse       EventKind = "PreToolUse"
	KindPostToolUse      EventKind = "PostToolUse"
	KindUserPromptSubmit EventKind = "UserPromptSubmit"
	KindStop             EventKind = "Stop"
	KindSubagentStop     EventKind = "SubagentStop"
	KindSessionEnd       EventKind = "SessionEnd"
)

// Event is one immutable record of something happening during a session.
// Once appended it is never edited, with a single exception: RelatedEventID
// on a PreToolUse event is set retroactively when its matching PostToolUse
// arrives.
type Event struct {
	EventID        string         `json:"event_id"`
	EventType      EventKind      `json:"event_type"`
	Timestamp      time.Time      `json:"timestamp"`
	ToolName       *string        `json:"tool_name"`
	ToolUseID      *string        `json:"tool_use_id"`
	CWD            string         `json:"cwd"`
	PermissionMode string         `json:"permission_mode"`
	Description    *string        `json:"description"`
	InputSummary   *InputSummary  `json:"input_summary"`
	OutputSummary  *OutputSummary `json:"output_summary"`
	DurationMs     *int64         `json:"duration_ms"`
	Matcher        *string        `json:"matcher"`
	IsMCPTool      bool           `json:"is_mcp_tool"`
	IsPluginTool   bool           `json:"is_plugin_tool"`
	RelatedEventID *string        `json:"related_event_id"`
}

// InputSummary is a sanitized sketch of a tool's input. Raw payloads are
// never persisted; summaries carry at most a truncated command or path.
type InputSummary struct {
	Type          string `json:"type,omitempty"`
	FilePath      string `json:"file_path,omitempty"`
	Command       string `json:"command,omitempty"`
	Query         string `json:"query,omitempty"`
	ContentLength *int   `json:"content_length,omitempty"`
}

// OutputSummary is a compact sketch of a tool's response. Success is a
// tri-state: nil means the tool reported nothing either way.
type OutputSummary struct {
	Success      *bool  `json:"success,omitempty"`
	ResultType   string `json:"result_type,omitempty"`
	ResultLength *int   `json:"result_length,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Failed reports whether the summary explicitly marks a failure.
func (o *OutputSummary) Failed() bool {
	return o != nil && o.Success != nil && !*o.Success
}

// PendingEvent bridges a PreToolUse to its eventual PostToolUse so the pair's
// duration can be computed across two separate driver processes. An entry
// whose PostToolUse never arrives is left orphaned; that is accepted
// staleness, not an error.
type PendingEvent struct {
	EventID   string `json:"event_id"`
	ToolUseID string `json:"tool_use_id"`
	StartTime int64  `json:"start_time"` // wall clock, unix milliseconds
	ToolName  string `json:"tool_name"`
	SessionID string `json:"session_id"`
}
