package store

import (
	"encoding/json"
	"os"

	"hooklog/internal/model"
)

// loadPending reads the pending-events map. Missing or corrupt files are an
// empty map, never an error: losing pending entries only costs durations.
func (s *Store) loadPending() map[string]model.PendingEvent {
	data, err := os.ReadFile(s.PendingPath())
	if err != nil {
		return map[string]model.PendingEvent{}
	}

	var pending map[string]model.PendingEvent
	if err := json.Unmarshal(data, &pending); err != nil || pending == nil {
		return map[string]model.PendingEvent{}
	}
	return pending
}

// PutPending stores a pending event keyed by its tool-invocation id,
// overwriting any existing entry for that id.
func (s *Store) PutPending(pe model.PendingEvent) error {
	pending := s.loadPending()
	pending[pe.ToolUseID] = pe
	return s.writeJSON(s.PendingPath(), pending)
}

// TakePending returns and removes the entry for the given tool-invocation id.
// A miss is an expected outcome (orphaned PostToolUse), reported via ok.
func (s *Store) TakePending(toolUseID string) (pe model.PendingEvent, ok bool, err error) {
	pending := s.loadPending()
	pe, ok = pending[toolUseID]
	if !ok {
		return model.PendingEvent{}, false, nil
	}

	delete(pending, toolUseID)
	if err := s.writeJSON(s.PendingPath(), pending); err != nil {
		return model.PendingEvent{}, false, err
	}
	return pe, true, nil
}
