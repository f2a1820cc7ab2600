package model

import "time"

// LogVersion is the schema version written into new usage logs.
const LogVersion = "1.0.0"

// UsageLog is the root aggregate: every tracked session plus the derived
// cross-session statistics. Exactly one instance exists per installation.
// It is loaded fully into memory, mutated, and rewritten as a whole on every
// driver invocation.
type UsageLog struct {
	Version        string         `json:"version"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Sessions       []*Session     `json:"sessions"`
	AggregateStats AggregateStats `json:"aggregate_stats"`
}

// NewUsageLog returns an empty log stamped with the current schema version.
func NewUsageLog(now time.Time) *UsageLog {
	return &UsageLog{
		Version:        LogVersion,
		CreatedAt:      now,
		UpdatedAt:      now,
		Sessions:       []*Session{},
		AggregateStats: NewAggregateStats(),
	}
}

// FindSession returns the session with the given identifier, or nil.
func (l *UsageLog) FindSession(sessionID string) *Session {
	for _, s := range l.Sessions {
		if s.SessionID == sessionID {
			return s
		}
	}
	return nil
}

// AggregateStats holds counters summed across all sessions, recomputed from
// scratch whenever any session's stats change.
type AggregateStats struct {
	TotalSessions      int                      `json:"total_sessions"`
	TotalEvents        int                      `json:"total_events"`
	TotalToolCalls     int                      `json:"total_tool_calls"`
	TotalTimeTrackedMs int64                    `json:"total_time_tracked_ms"`
	ToolUsageCounts    map[string]int           `json:"tool_usage_counts"`
	ToolTimeSpent      map[string]int64         `json:"tool_time_spent"`
	ProjectUsage       map[string]ProjectUsage  `json:"project_usage"`
	DailyActivity      map[string]DailyActivity `json:"daily_activity"`
}

// NewAggregateStats returns zeroed aggregates with initialized maps.
func NewAggregateStats() AggregateStats {
	return AggregateStats{
		ToolUsageCounts: map[string]int{},
		ToolTimeSpent:   map[string]int64{},
		ProjectUsage:    map[string]ProjectUsage{},
		DailyActivity:   map[string]DailyActivity{},
	}
}

// ProjectUsage is the per-project bucket, keyed by the session's working
// directory.
type ProjectUsage struct {
	Sessions    int   `json:"sessions"`
	TotalTimeMs int64 `json:"total_time_ms"`
	ToolCalls   int   `json:"tool_calls"`
}

// DailyActivity is the per-day bucket, keyed by the UTC calendar date
// (YYYY-MM-DD) of the session start.
type DailyActivity struct {
	Sessions int   `json:"sessions"`
	Events   int   `json:"events"`
	TimeMs   int64 `json:"time_ms"`
}

// TrackerConfig is the plugin configuration file. The recorder only consults
// TrackingEnabled; the per-field logging switches and retention knobs are read
// by the init and prune commands and by external reporting tooling.
type TrackerConfig struct {
	Version            string    `json:"version"`
	InitializedAt      time.Time `json:"initialized_at"`
	TrackingEnabled    bool      `json:"tracking_enabled"`
	LogUserPrompts     bool      `json:"log_user_prompts"`
	LogToolInputs      bool      `json:"log_tool_inputs"`
	LogToolOutputs     bool      `json:"log_tool_outputs"`
	MaxSessionsToKeep  int       `json:"max_sessions_to_keep"`
	AutoCleanupEnabled bool      `json:"auto_cleanup_enabled"`
}

// DefaultTrackerConfig returns the configuration written by a fresh init.
func DefaultTrackerConfig(now time.Time) TrackerConfig {
	return TrackerConfig{
		Version:            LogVersion,
		InitializedAt:      now,
		TrackingEnabled:    true,
		LogUserPrompts:     true,
		LogToolInputs:      true,
		LogToolOutputs:     true,
		MaxSessionsToKeep:  100,
		AutoCleanupEnabled: true,
	}
}
