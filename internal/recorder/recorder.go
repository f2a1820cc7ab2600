// Package recorder turns host hook payloads into usage-log events. Every
// operation is one load/mutate/save cycle over the whole log: after each
// append the owning session's stats are recomputed, then the aggregate block,
// then the log is persisted. A reader therefore never observes stats that lag
// the events next to them.
package recorder

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"hooklog/internal/model"
	"hooklog/internal/stats"
	"hooklog/internal/store"
)

// Recorder appends events for one plugin history directory.
type Recorder struct {
	st    *store.Store
	now   func() time.Time
	newID func() string
}

// New returns a recorder backed by the given store.
func New(st *store.Store) *Recorder {
	return &Recorder{
		st:    st,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// RecordSessionStart creates the session if this is the first event for its
// identifier and appends a SessionStart event.
func (r *Recorder) RecordSessionStart(in HookInput) error {
	log, err := r.st.LoadLog()
	if err != nil {
		return err
	}
	session := r.getOrCreate(log, in)

	source := in.Source
	if source == "" {
		source = "unknown"
	}

	ev := r.newEvent(model.KindSessionStart, in)
	ev.Description = ptr(fmt.Sprintf("Session started (source: %s)", source))
	session.Events = append(session.Events, ev)

	return r.finish(log, session)
}

// RecordPreToolUse appends a PreToolUse event and parks a pending entry so
// the matching PostToolUse can compute the call duration. A missing
// tool-invocation id is generated here so the pair can still be correlated.
func (r *Recorder) RecordPreToolUse(in HookInput) error {
	log, err := r.st.LoadLog()
	if err != nil {
		return err
	}
	session := r.getOrCreate(log, in)

	toolName := in.ToolName
	if toolName == "" {
		toolName = "Unknown"
	}
	toolUseID := in.ToolUseID
	if toolUseID == "" {
		toolUseID = r.newID()
	}

	ev := r.newEvent(model.KindPreToolUse, in)
	ev.ToolName = &toolName
	ev.ToolUseID = &toolUseID
	ev.Description = ptr("Starting " + toolName)
	ev.InputSummary = sanitizeInput(toolName, in.ToolInput)
	ev.Matcher = ptr("*")
	ev.IsMCPTool = isMCPTool(toolName)
	ev.IsPluginTool = isPluginTool(toolName)

	err = r.st.PutPending(model.PendingEvent{
		EventID:   ev.EventID,
		ToolUseID: toolUseID,
		StartTime: ev.Timestamp.UnixMilli(),
		ToolName:  toolName,
		SessionID: in.SessionID,
	})
	if err != nil {
		return err
	}

	session.Events = append(session.Events, ev)
	return r.finish(log, session)
}

// RecordPostToolUse appends a PostToolUse event, consuming the pending entry
// for its tool-invocation id to compute the duration and repairing the
// forward pointer on the matching PreToolUse event. A PostToolUse for an
// untracked session is silently skipped: logging must never create a session
// after the fact. A pending miss means the duration stays absent.
func (r *Recorder) RecordPostToolUse(in HookInput) error {
	log, err := r.st.LoadLog()
	if err != nil {
		return err
	}
	session := log.FindSession(in.SessionID)
	if session == nil {
		fmt.Fprintf(os.Stderr, "session not found: %s\n", in.SessionID)
		return nil
	}

	toolName := in.ToolName
	if toolName == "" {
		toolName = "Unknown"
	}

	ev := r.newEvent(model.KindPostToolUse, in)
	ev.ToolName = &toolName
	if in.ToolUseID != "" {
		ev.ToolUseID = &in.ToolUseID
	}
	ev.InputSummary = sanitizeInput(toolName, in.ToolInput)
	ev.OutputSummary = summarizeOutput(toolName, in.ToolResponse)
	ev.Matcher = ptr("*")
	ev.IsMCPTool = isMCPTool(toolName)
	ev.IsPluginTool = isPluginTool(toolName)

	pending, found, err := r.st.TakePending(in.ToolUseID)
	if err != nil {
		return err
	}
	if found {
		d := ev.Timestamp.UnixMilli() - pending.StartTime
		ev.DurationMs = &d
	}

	desc := "Completed " + toolName
	if ev.DurationMs != nil {
		desc += fmt.Sprintf(" in %dms", *ev.DurationMs)
	}
	ev.Description = &desc

	// The most recent PreToolUse with the same invocation id gets its
	// forward pointer set; the new event points back at it.
	pre := findLatestPre(session, in.ToolUseID)
	switch {
	case pre != nil:
		ev.RelatedEventID = &pre.EventID
		pre.RelatedEventID = &ev.EventID
	case found:
		ev.RelatedEventID = &pending.EventID
	}

	session.Events = append(session.Events, ev)
	return r.finish(log, session)
}

// RecordUserPromptSubmit appends a UserPromptSubmit event. Only the prompt's
// character length is recorded, never its content.
func (r *Recorder) RecordUserPromptSubmit(in HookInput) error {
	log, err := r.st.LoadLog()
	if err != nil {
		return err
	}
	session := r.getOrCreate(log, in)

	promptLen := utf8.RuneCountInString(in.Prompt)

	ev := r.newEvent(model.KindUserPromptSubmit, in)
	ev.Description = ptr(fmt.Sprintf("User submitted prompt (%d characters)", promptLen))
	ev.InputSummary = &model.InputSummary{
		Type:          "user_prompt",
		ContentLength: &promptLen,
	}

	session.Events = append(session.Events, ev)
	return r.finish(log, session)
}

// RecordStop appends a Stop event.
func (r *Recorder) RecordStop(in HookInput) error {
	log, err := r.st.LoadLog()
	if err != nil {
		return err
	}
	session := r.getOrCreate(log, in)

	ev := r.newEvent(model.KindStop, in)
	ev.Description = ptr("Agent stopped" + stopSuffix(in))

	session.Events = append(session.Events, ev)
	return r.finish(log, session)
}

// RecordSubagentStop appends a SubagentStop event attributed to the Task tool.
func (r *Recorder) RecordSubagentStop(in HookInput) error {
	log, err := r.st.LoadLog()
	if err != nil {
		return err
	}
	session := r.getOrCreate(log, in)

	ev := r.newEvent(model.KindSubagentStop, in)
	ev.ToolName = ptr("Task")
	ev.Description = ptr("Subagent stopped" + stopSuffix(in))

	session.Events = append(session.Events, ev)
	return r.finish(log, session)
}

// RecordSessionEnd closes the session: sets its end timestamp and total
// duration, then appends a SessionEnd event carrying that duration. An end
// for an untracked session is silently skipped.
func (r *Recorder) RecordSessionEnd(in HookInput) error {
	log, err := r.st.LoadLog()
	if err != nil {
		return err
	}
	session := log.FindSession(in.SessionID)
	if session == nil {
		fmt.Fprintf(os.Stderr, "session not found: %s\n", in.SessionID)
		return nil
	}

	reason := in.Reason
	if reason == "" {
		reason = "unknown"
	}

	end := r.now().UTC()
	total := end.Sub(session.StartedAt).Milliseconds()
	session.EndedAt = &end
	session.TotalDurationMs = &total

	eventCount := len(session.Events)

	ev := r.newEvent(model.KindSessionEnd, in)
	ev.Timestamp = end
	ev.Description = ptr(fmt.Sprintf("Session ended (reason: %s)", reason))
	ev.OutputSummary = &model.OutputSummary{
		Success:      ptr(true),
		ResultType:   "session_end",
		ResultLength: &eventCount,
	}
	ev.DurationMs = &total

	session.Events = append(session.Events, ev)
	return r.finish(log, session)
}

// newEvent builds the skeleton every kind shares; kind-specific fields are
// filled in by the caller.
func (r *Recorder) newEvent(kind model.EventKind, in HookInput) *model.Event {
	return &model.Event{
		EventID:        r.newID(),
		EventType:      kind,
		Timestamp:      r.now().UTC(),
		CWD:            in.CWD,
		PermissionMode: in.PermissionMode,
	}
}

// getOrCreate returns the session for the payload's identifier, creating and
// registering it when this is the first event that mentions it.
func (r *Recorder) getOrCreate(log *model.UsageLog, in HookInput) *model.Session {
	if session := log.FindSession(in.SessionID); session != nil {
		return session
	}
	session := model.NewSession(in.SessionID, in.CWD, in.PermissionMode, r.now().UTC())
	log.Sessions = append(log.Sessions, session)
	return session
}

// finish recomputes the touched session's stats and the aggregate block, then
// persists the whole log.
func (r *Recorder) finish(log *model.UsageLog, session *model.Session) error {
	session.SessionStats = stats.ComputeSessionStats(session)
	log.AggregateStats = stats.ComputeAggregateStats(log)
	return r.st.SaveLog(log)
}

func findLatestPre(session *model.Session, toolUseID string) *model.Event {
	if toolUseID == "" {
		return nil
	}
	for i := len(session.Events) - 1; i >= 0; i-- {
		e := session.Events[i]
		if e.EventType == model.KindPreToolUse && e.ToolUseID != nil && *e.ToolUseID == toolUseID {
			return e
		}
	}
	return nil
}

func stopSuffix(in HookInput) string {
	if in.StopHookActive {
		return " (stop hook active)"
	}
	return ""
}

func ptr[T any](v T) *T { return &v }
