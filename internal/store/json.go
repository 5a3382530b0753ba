// Package store persists the small user preferences kept alongside the
// estimator: per-item runway conditions and submitted feedback.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/eytandecker/at502-perf/internal/logger"
)

// loadJSON decodes path into out. A missing or unreadable file, or one that
// does not decode, leaves out at its default and reports false.
func loadJSON(path string, out any, log logger.Logger) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debugw("read failed, using default", map[string]any{"path": path, "error": err.Error()})
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Debugw("decode failed, using default", map[string]any{"path": path, "error": err.Error()})
		return false
	}
	return true
}

// saveJSON overwrites path with the indented encoding of v.
func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	return nil
}
