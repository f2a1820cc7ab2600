package config

import "testing"

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Report.DefaultDays != 30 {
		t.Errorf("DefaultDays = %d, want 30", cfg.Report.DefaultDays)
	}
	if cfg.Report.ToolLimit != 10 {
		t.Errorf("ToolLimit = %d, want 10", cfg.Report.ToolLimit)
	}
	if Exists() {
		t.Error("Exists should be false before any save")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/custom-history"
	cfg.Report.DefaultDays = 7

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Error("Exists should see the saved file")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DataDir != "/tmp/custom-history" {
		t.Errorf("DataDir = %q", got.General.DataDir)
	}
	if got.Report.DefaultDays != 7 {
		t.Errorf("DefaultDays = %d, want 7", got.Report.DefaultDays)
	}
}
