// Package store persists the usage log, the pending-event map, and the
// tracker configuration as JSON files under the plugin history directory.
//
// Every operation is a whole-file read or a whole-file rewrite. There is no
// locking: concurrent drivers racing on the same file lose to the last
// writer, which is accepted given the host's effectively sequential hook
// dispatch.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hooklog/internal/model"
)

const (
	logFileName     = "usage-log.json"
	pendingFileName = "pending-events.json"
	configFileName  = "config.json"
)

// Store is a handle on one plugin history directory. It is passed explicitly
// to every operation; there is no ambient singleton.
type Store struct {
	dir string
}

// New returns a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the per-user history directory, ~/.claude/.plugin-history.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".claude", ".plugin-history")
}

// Dir returns the history directory this store reads and writes.
func (s *Store) Dir() string { return s.dir }

// LogPath returns the usage log file path.
func (s *Store) LogPath() string { return filepath.Join(s.dir, logFileName) }

// PendingPath returns the pending-events file path.
func (s *Store) PendingPath() string { return filepath.Join(s.dir, pendingFileName) }

// ConfigPath returns the tracker config file path.
func (s *Store) ConfigPath() string { return filepath.Join(s.dir, configFileName) }

// LoadLog reads the usage log from disk. A missing or corrupt file yields a
// fresh empty log rather than an error; the replacement is persisted on the
// next save, not here.
func (s *Store) LoadLog() (*model.UsageLog, error) {
	data, err := os.ReadFile(s.LogPath())
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewUsageLog(time.Now().UTC()), nil
		}
		return nil, fmt.Errorf("reading usage log: %w", err)
	}

	var log model.UsageLog
	if err := json.Unmarshal(data, &log); err != nil {
		fmt.Fprintf(os.Stderr, "usage log unreadable, starting fresh: %v\n", err)
		return model.NewUsageLog(time.Now().UTC()), nil
	}
	return &log, nil
}

// SaveLog stamps UpdatedAt and rewrites the whole log. The content is written
// to a temp file and renamed into place so a crash mid-write leaves the prior
// file intact.
func (s *Store) SaveLog(log *model.UsageLog) error {
	log.UpdatedAt = time.Now().UTC()
	return s.writeJSON(s.LogPath(), log)
}

// LoadTrackerConfig reads the plugin configuration. Missing or corrupt files
// fall back to defaults, so an uninitialized installation still tracks.
func (s *Store) LoadTrackerConfig() model.TrackerConfig {
	data, err := os.ReadFile(s.ConfigPath())
	if err != nil {
		return model.DefaultTrackerConfig(time.Now().UTC())
	}

	var cfg model.TrackerConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.DefaultTrackerConfig(time.Now().UTC())
	}
	return cfg
}

// SaveTrackerConfig rewrites the plugin configuration file.
func (s *Store) SaveTrackerConfig(cfg model.TrackerConfig) error {
	return s.writeJSON(s.ConfigPath(), cfg)
}

// ConfigExists reports whether a tracker config file is present on disk.
func (s *Store) ConfigExists() bool {
	_, err := os.Stat(s.ConfigPath())
	return err == nil
}

func (s *Store) writeJSON(path string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}
