package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    session_id               TEXT PRIMARY KEY,
    project_dir              TEXT NOT NULL,
    cwd                      TEXT NOT NULL,
    started_at               TEXT NOT NULL,
    ended_at                 TEXT,
    total_duration_ms        INTEGER,
    permission_mode          TEXT NOT NULL,
    total_events             INTEGER NOT NULL,
    total_tool_calls         INTEGER NOT NULL,
    total_processing_time_ms INTEGER NOT NULL,
    user_prompts_count       INTEGER NOT NULL,
    errors_count             INTEGER NOT NULL,
    most_used_tool           TEXT,
    slowest_tool             TEXT
);

CREATE TABLE IF NOT EXISTS events (
    event_id         TEXT PRIMARY KEY,
    session_id       TEXT NOT NULL REFERENCES sessions(session_id) ON DELETE CASCADE,
    event_type       TEXT NOT NULL,
    timestamp        TEXT NOT NULL,
    tool_name        TEXT,
    tool_use_id      TEXT,
    cwd              TEXT NOT NULL,
    permission_mode  TEXT NOT NULL,
    description      TEXT,
    duration_ms      INTEGER,
    success          INTEGER,
    related_event_id TEXT
);

CREATE TABLE IF NOT EXISTS tool_totals (
    tool     TEXT PRIMARY KEY,
    calls    INTEGER NOT NULL,
    time_ms  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_activity (
    day      TEXT PRIMARY KEY,
    sessions INTEGER NOT NULL,
    events   INTEGER NOT NULL,
    time_ms  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
CREATE INDEX IF NOT EXISTS idx_events_type ON events(event_type);
CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at);
`
