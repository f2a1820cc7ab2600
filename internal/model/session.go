// Package model defines the persisted data model for the usage log.
package model

import "time"

// Session is one continuous assistant interaction, identified by an opaque
// string supplied by the host. At most one Session exists per identifier
// within a UsageLog. Events are stored in insertion order, which is also
// chronological order.
type Session struct {
	SessionID       string       `json:"session_id"`
	ProjectDir      string       `json:"project_dir"`
	CWD             string       `json:"cwd"`
	StartedAt       time.Time    `json:"started_at"`
	EndedAt         *time.Time   `json:"ended_at"`
	TotalDurationMs *int64       `json:"total_duration_ms"`
	PermissionMode  string       `json:"permission_mode"`
	Events          []*Event     `json:"events"`
	SessionStats    SessionStats `json:"session_stats"`
}

// NewSession returns an active session with empty events and zeroed stats.
func NewSession(sessionID, cwd, permissionMode string, startedAt time.Time) *Session {
	return &Session{
		SessionID:      sessionID,
		ProjectDir:     cwd,
		CWD:            cwd,
		StartedAt:      startedAt,
		PermissionMode: permissionMode,
		Events:         []*Event{},
		SessionStats:   NewSessionStats(),
	}
}

// SessionStats holds counters derived from a session's event list. It is
// recomputed in full from the events every time the session changes, never
// patched incrementally.
type SessionStats struct {
	TotalEvents           int              `json:"total_events"`
	TotalToolCalls        int              `json:"total_tool_calls"`
	TotalProcessingTimeMs int64            `json:"total_processing_time_ms"`
	ToolUsageCounts       map[string]int   `json:"tool_usage_counts"`
	ToolTimeSpent         map[string]int64 `json:"tool_time_spent"`
	MostUsedTool          *string          `json:"most_used_tool"`
	SlowestTool           *string          `json:"slowest_tool"`
	UserPromptsCount      int              `json:"user_prompts_count"`
	ErrorsCount           int              `json:"errors_count"`
}

// NewSessionStats returns zeroed stats with initialized maps.
func NewSessionStats() SessionStats {
	return SessionStats{
		ToolUsageCounts: map[string]int{},
		ToolTimeSpent:   map[string]int64{},
	}
}
