package stats

import (
	"reflect"
	"testing"
	"time"

	"hooklog/internal/model"
)

func ptr[T any](v T) *T { return &v }

// toolCall builds a completed PostToolUse event.
func toolCall(tool string, durationMs *int64, success *bool) *model.Event {
	ev := &model.Event{
		EventID:    "ev-" + tool,
		EventType:  model.KindPostToolUse,
		Timestamp:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		ToolName:   &tool,
		DurationMs: durationMs,
	}
	if success != nil {
		ev.OutputSummary = &model.OutputSummary{Success: success}
	}
	return ev
}

func promptEvent() *model.Event {
	return &model.Event{
		EventID:   "ev-prompt",
		EventType: model.KindUserPromptSubmit,
		Timestamp: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestComputeSessionStats_ToolCalls(t *testing.T) {
	s := model.NewSession("s1", "/tmp/proj", "default", time.Now())
	s.Events = []*model.Event{
		toolCall("Bash", ptr(int64(1500)), ptr(true)),
		toolCall("Read", ptr(int64(200)), nil),
		toolCall("Bash", ptr(int64(500)), ptr(true)),
		promptEvent(),
	}

	ss := ComputeSessionStats(s)

	if ss.TotalEvents != 4 {
		t.Errorf("TotalEvents = %d, want 4", ss.TotalEvents)
	}
	if ss.TotalToolCalls != 3 {
		t.Errorf("TotalToolCalls = %d, want 3", ss.TotalToolCalls)
	}
	if ss.ToolUsageCounts["Bash"] != 2 {
		t.Errorf(`ToolUsageCounts["Bash"] = %d, want 2`, ss.ToolUsageCounts["Bash"])
	}
	if ss.ToolTimeSpent["Bash"] != 2000 {
		t.Errorf(`ToolTimeSpent["Bash"] = %d, want 2000`, ss.ToolTimeSpent["Bash"])
	}
	if ss.TotalProcessingTimeMs != 2200 {
		t.Errorf("TotalProcessingTimeMs = %d, want 2200", ss.TotalProcessingTimeMs)
	}
	if ss.UserPromptsCount != 1 {
		t.Errorf("UserPromptsCount = %d, want 1", ss.UserPromptsCount)
	}
	if ss.ErrorsCount != 0 {
		t.Errorf("ErrorsCount = %d, want 0", ss.ErrorsCount)
	}
	if ss.MostUsedTool == nil || *ss.MostUsedTool != "Bash" {
		t.Errorf("MostUsedTool = %v, want Bash", ss.MostUsedTool)
	}
	if ss.SlowestTool == nil || *ss.SlowestTool != "Bash" {
		t.Errorf("SlowestTool = %v, want Bash", ss.SlowestTool)
	}
}

func TestComputeSessionStats_ErrorsStillCount(t *testing.T) {
	// A failed call still contributes to usage and time counters.
	s := model.NewSession("s1", "/tmp/proj", "default", time.Now())
	s.Events = []*model.Event{
		toolCall("Bash", ptr(int64(800)), ptr(false)),
	}

	ss := ComputeSessionStats(s)

	if ss.ErrorsCount != 1 {
		t.Errorf("ErrorsCount = %d, want 1", ss.ErrorsCount)
	}
	if ss.TotalToolCalls != 1 {
		t.Errorf("TotalToolCalls = %d, want 1", ss.TotalToolCalls)
	}
	if ss.ToolTimeSpent["Bash"] != 800 {
		t.Errorf(`ToolTimeSpent["Bash"] = %d, want 800`, ss.ToolTimeSpent["Bash"])
	}
}

func TestComputeSessionStats_AbsentDuration(t *testing.T) {
	// An orphaned PostToolUse counts as a call but contributes no time.
	s := model.NewSession("s1", "/tmp/proj", "default", time.Now())
	s.Events = []*model.Event{
		toolCall("Read", nil, ptr(true)),
	}

	ss := ComputeSessionStats(s)

	if ss.TotalToolCalls != 1 {
		t.Errorf("TotalToolCalls = %d, want 1", ss.TotalToolCalls)
	}
	if ss.TotalProcessingTimeMs != 0 {
		t.Errorf("TotalProcessingTimeMs = %d, want 0", ss.TotalProcessingTimeMs)
	}
	if _, ok := ss.ToolTimeSpent["Read"]; ok {
		t.Error("ToolTimeSpent should have no entry without a duration")
	}
}

func TestComputeSessionStats_FirstSeenWinsTies(t *testing.T) {
	// Equal counts and equal times: the tool seen first takes both titles.
	s := model.NewSession("s1", "/tmp/proj", "default", time.Now())
	s.Events = []*model.Event{
		toolCall("Read", ptr(int64(100)), nil),
		toolCall("Bash", ptr(int64(100)), nil),
	}

	ss := ComputeSessionStats(s)

	if ss.MostUsedTool == nil || *ss.MostUsedTool != "Read" {
		t.Errorf("MostUsedTool = %v, want Read (first seen)", ss.MostUsedTool)
	}
	if ss.SlowestTool == nil || *ss.SlowestTool != "Read" {
		t.Errorf("SlowestTool = %v, want Read (first seen)", ss.SlowestTool)
	}
}

func TestComputeSessionStats_NoQualifyingEvents(t *testing.T) {
	s := model.NewSession("s1", "/tmp/proj", "default", time.Now())
	s.Events = []*model.Event{promptEvent()}

	ss := ComputeSessionStats(s)

	if ss.MostUsedTool != nil {
		t.Errorf("MostUsedTool = %v, want nil", *ss.MostUsedTool)
	}
	if ss.SlowestTool != nil {
		t.Errorf("SlowestTool = %v, want nil", *ss.SlowestTool)
	}
}

func TestComputeSessionStats_Idempotent(t *testing.T) {
	s := model.NewSession("s1", "/tmp/proj", "default", time.Now())
	s.Events = []*model.Event{
		toolCall("Bash", ptr(int64(1500)), ptr(true)),
		toolCall("Read", ptr(int64(200)), ptr(false)),
		promptEvent(),
	}

	first := ComputeSessionStats(s)
	second := ComputeSessionStats(s)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("recompute differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
