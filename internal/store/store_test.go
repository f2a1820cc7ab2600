package store

import (
	"os"
	"testing"
	"time"

	"hooklog/internal/model"
)

func TestLoadLog_MissingFile(t *testing.T) {
	st := New(t.TempDir())

	log, err := st.LoadLog()
	if err != nil {
		t.Fatalf("LoadLog: %v", err)
	}
	if log.Version != model.LogVersion {
		t.Errorf("Version = %q, want %q", log.Version, model.LogVersion)
	}
	if len(log.Sessions) != 0 {
		t.Errorf("Sessions = %d, want 0", len(log.Sessions))
	}
	if _, err := os.Stat(st.LogPath()); !os.IsNotExist(err) {
		t.Error("LoadLog must not create the file")
	}
}

func TestLoadLog_CorruptFile(t *testing.T) {
	st := New(t.TempDir())
	if err := os.MkdirAll(st.Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(st.LogPath(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	log, err := st.LoadLog()
	if err != nil {
		t.Fatalf("LoadLog: %v", err)
	}
	if len(log.Sessions) != 0 {
		t.Errorf("corrupt file should yield a fresh log, got %d sessions", len(log.Sessions))
	}
}

func TestSaveLog_RoundTrip(t *testing.T) {
	st := New(t.TempDir())

	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	log := model.NewUsageLog(started)
	session := model.NewSession("s1", "/tmp/proj", "default", started)
	toolName := "Bash"
	duration := int64(1500)
	session.Events = append(session.Events, &model.Event{
		EventID:    "ev1",
		EventType:  model.KindPostToolUse,
		Timestamp:  started,
		ToolName:   &toolName,
		DurationMs: &duration,
	})
	// A second event with every optional field absent: nulls must survive.
	session.Events = append(session.Events, &model.Event{
		EventID:   "ev2",
		EventType: model.KindStop,
		Timestamp: started.Add(time.Minute),
	})
	log.Sessions = append(log.Sessions, session)

	if err := st.SaveLog(log); err != nil {
		t.Fatalf("SaveLog: %v", err)
	}

	loaded, err := st.LoadLog()
	if err != nil {
		t.Fatalf("LoadLog: %v", err)
	}
	got := loaded.FindSession("s1")
	if got == nil {
		t.Fatal("session s1 missing after round trip")
	}
	if len(got.Events) != 2 {
		t.Fatalf("Events = %d, want 2", len(got.Events))
	}
	if got.Events[0].ToolName == nil || *got.Events[0].ToolName != "Bash" {
		t.Errorf("ToolName = %v, want Bash", got.Events[0].ToolName)
	}
	if got.Events[0].DurationMs == nil || *got.Events[0].DurationMs != 1500 {
		t.Errorf("DurationMs = %v, want 1500", got.Events[0].DurationMs)
	}
	if got.Events[1].ToolName != nil {
		t.Errorf("absent ToolName = %q, want nil", *got.Events[1].ToolName)
	}
	if got.Events[1].DurationMs != nil {
		t.Errorf("absent DurationMs = %d, want nil", *got.Events[1].DurationMs)
	}
	if got.EndedAt != nil {
		t.Error("active session should round-trip with nil EndedAt")
	}
	if loaded.UpdatedAt.IsZero() {
		t.Error("SaveLog should stamp UpdatedAt")
	}
}

func TestPutTakePending(t *testing.T) {
	st := New(t.TempDir())

	pe := model.PendingEvent{
		EventID:   "ev1",
		ToolUseID: "tu1",
		StartTime: 1_700_000_000_000,
		ToolName:  "Bash",
		SessionID: "s1",
	}
	if err := st.PutPending(pe); err != nil {
		t.Fatalf("PutPending: %v", err)
	}

	got, ok, err := st.TakePending("tu1")
	if err != nil {
		t.Fatalf("TakePending: %v", err)
	}
	if !ok {
		t.Fatal("TakePending: entry not found")
	}
	if got != pe {
		t.Errorf("TakePending = %+v, want %+v", got, pe)
	}

	// The take removed the entry.
	if _, ok, _ := st.TakePending("tu1"); ok {
		t.Error("second take should miss")
	}
}

func TestTakePending_Miss(t *testing.T) {
	st := New(t.TempDir())

	_, ok, err := st.TakePending("never-seen")
	if err != nil {
		t.Fatalf("TakePending miss should not error: %v", err)
	}
	if ok {
		t.Error("TakePending miss reported ok")
	}
}

func TestPutPending_OverwritesSameID(t *testing.T) {
	st := New(t.TempDir())

	first := model.PendingEvent{EventID: "ev1", ToolUseID: "tu1", StartTime: 100, ToolName: "Bash", SessionID: "s1"}
	second := model.PendingEvent{EventID: "ev2", ToolUseID: "tu1", StartTime: 200, ToolName: "Bash", SessionID: "s1"}
	if err := st.PutPending(first); err != nil {
		t.Fatal(err)
	}
	if err := st.PutPending(second); err != nil {
		t.Fatal(err)
	}

	got, ok, _ := st.TakePending("tu1")
	if !ok || got.EventID != "ev2" {
		t.Errorf("TakePending = %+v, want the newer entry ev2", got)
	}
}

func TestTakePending_CorruptFile(t *testing.T) {
	st := New(t.TempDir())
	if err := os.MkdirAll(st.Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(st.PendingPath(), []byte("]]"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := st.TakePending("tu1"); ok || err != nil {
		t.Errorf("corrupt pending file: ok=%v err=%v, want miss without error", ok, err)
	}
}

func TestTrackerConfig(t *testing.T) {
	st := New(t.TempDir())

	if st.ConfigExists() {
		t.Error("ConfigExists on empty dir")
	}

	cfg := st.LoadTrackerConfig()
	if !cfg.TrackingEnabled {
		t.Error("default config should enable tracking")
	}
	if cfg.MaxSessionsToKeep != 100 {
		t.Errorf("MaxSessionsToKeep = %d, want 100", cfg.MaxSessionsToKeep)
	}

	cfg.TrackingEnabled = false
	cfg.MaxSessionsToKeep = 25
	if err := st.SaveTrackerConfig(cfg); err != nil {
		t.Fatalf("SaveTrackerConfig: %v", err)
	}

	if !st.ConfigExists() {
		t.Error("ConfigExists should see the saved file")
	}
	got := st.LoadTrackerConfig()
	if got.TrackingEnabled {
		t.Error("TrackingEnabled should round-trip as false")
	}
	if got.MaxSessionsToKeep != 25 {
		t.Errorf("MaxSessionsToKeep = %d, want 25", got.MaxSessionsToKeep)
	}
}
