package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hooklog/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Exporter writes a usage log into a SQLite database so the history can be
// queried with ad-hoc SQL. The JSON file stays canonical; the database is a
// disposable projection, fully rewritten on every export.
type Exporter struct {
	db *sql.DB
}

// OpenExport opens or creates the export database at the given path.
func OpenExport(dbPath string) (*Exporter, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Exporter{db: db}, nil
}

// Close closes the export database.
func (e *Exporter) Close() error {
	return e.db.Close()
}

// ExportLog replaces the database contents with the given log in one
// transaction.
func (e *Exporter) ExportLog(log *model.UsageLog) error {
	tx, err := e.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"events", "sessions", "tool_totals", "daily_activity"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for _, s := range log.Sessions {
		if err := insertSession(tx, s); err != nil {
			return fmt.Errorf("exporting session %s: %w", s.SessionID, err)
		}
	}

	agg := log.AggregateStats
	for tool, calls := range agg.ToolUsageCounts {
		_, err := tx.Exec(`INSERT INTO tool_totals (tool, calls, time_ms) VALUES (?, ?, ?)`,
			tool, calls, agg.ToolTimeSpent[tool])
		if err != nil {
			return err
		}
	}
	for day, activity := range agg.DailyActivity {
		_, err := tx.Exec(`INSERT INTO daily_activity (day, sessions, events, time_ms) VALUES (?, ?, ?, ?)`,
			day, activity.Sessions, activity.Events, activity.TimeMs)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertSession(tx *sql.Tx, s *model.Session) error {
	var endedAt any
	if s.EndedAt != nil {
		endedAt = s.EndedAt.UTC().Format(time.RFC3339)
	}

	ss := s.SessionStats
	_, err := tx.Exec(`INSERT INTO sessions
		(session_id, project_dir, cwd, started_at, ended_at, total_duration_ms,
		 permission_mode, total_events, total_tool_calls, total_processing_time_ms,
		 user_prompts_count, errors_count, most_used_tool, slowest_tool)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.SessionID, s.ProjectDir, s.CWD, s.StartedAt.UTC().Format(time.RFC3339),
		endedAt, nullableInt64(s.TotalDurationMs), s.PermissionMode,
		ss.TotalEvents, ss.TotalToolCalls, ss.TotalProcessingTimeMs,
		ss.UserPromptsCount, ss.ErrorsCount,
		nullableString(ss.MostUsedTool), nullableString(ss.SlowestTool),
	)
	if err != nil {
		return err
	}

	for _, ev := range s.Events {
		var success any
		if ev.OutputSummary != nil && ev.OutputSummary.Success != nil {
			if *ev.OutputSummary.Success {
				success = 1
			} else {
				success = 0
			}
		}

		_, err := tx.Exec(`INSERT INTO events
			(event_id, session_id, event_type, timestamp, tool_name, tool_use_id,
			 cwd, permission_mode, description, duration_ms, success, related_event_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ev.EventID, s.SessionID, string(ev.EventType), ev.Timestamp.UTC().Format(time.RFC3339),
			nullableString(ev.ToolName), nullableString(ev.ToolUseID),
			ev.CWD, ev.PermissionMode, nullableString(ev.Description),
			nullableInt64(ev.DurationMs), success, nullableString(ev.RelatedEventID),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// SessionCount returns the number of exported sessions.
func (e *Exporter) SessionCount() (int, error) {
	var count int
	err := e.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count)
	return count, err
}

// EventCount returns the number of exported events.
func (e *Exporter) EventCount() (int, error) {
	var count int
	err := e.db.QueryRow("SELECT COUNT(*) FROM events").Scan(&count)
	return count, err
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt64(n *int64) any {
	if n == nil {
		return nil
	}
	return *n
}
