package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/eytandecker/at502-perf/internal/logger"
	"github.com/eytandecker/at502-perf/internal/performance"
)

// RunwayStore maps item identifiers to the runway condition last chosen for
// them. The backing file is re-read on every access and fully rewritten on
// every write.
type RunwayStore struct {
	mu   sync.Mutex
	path string
	log  logger.Logger
}

// NewRunwayStore creates a RunwayStore backed by the JSON file at path.
func NewRunwayStore(path string, log logger.Logger) *RunwayStore {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &RunwayStore{path: path, log: log}
}

// Path returns the backing file path.
func (s *RunwayStore) Path() string { return s.path }

// LoadAll returns every saved condition. A missing or corrupt file yields an
// empty map.
func (s *RunwayStore) LoadAll() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Get returns the saved condition for itemID and whether one exists.
func (s *RunwayStore) Get(itemID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cond, ok := s.loadLocked()[itemID]
	return cond, ok
}

// Set records condition for itemID and rewrites the file.
func (s *RunwayStore) Set(itemID, condition string) error {
	if strings.TrimSpace(itemID) == "" {
		return ErrEmptyItemID
	}
	if !performance.IsKnownCondition(condition) {
		return fmt.Errorf("%w: %q", ErrUnknownCondition, condition)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.loadLocked()
	data[itemID] = condition
	if err := saveJSON(s.path, data); err != nil {
		return err
	}
	s.log.Debugw("runway condition saved", map[string]any{"item": itemID, "condition": condition})
	return nil
}

// SaveAll replaces the file contents with data.
func (s *RunwayStore) SaveAll(data map[string]string) error {
	if data == nil {
		data = map[string]string{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveJSON(s.path, data)
}

func (s *RunwayStore) loadLocked() map[string]string {
	var data map[string]string
	if !loadJSON(s.path, &data, s.log) || data == nil {
		return map[string]string{}
	}
	return data
}
