package expcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Karoll-e/career-boost/internal/ai"
)

// Store is the durable-but-ephemeral cache tier. It outlives a single
// session view but makes no durability promise: a missing partition is
// an ordinary miss. It is advisory, never authoritative.
type Store interface {
	Load(sessionID string) (map[uint]ai.Explanation, error)
	Save(sessionID string, entries map[uint]ai.Explanation) error
	Drop(sessionID string) error
}

// FileStore keeps one JSON file per session id under a cache
// directory, mirroring the explanations_<sessionId> keys the web
// client keeps in sessionStorage.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(sessionID string) string {
	return filepath.Join(f.dir, "explanations_"+sessionID+".json")
}

// Load reads the whole partition for a session. A missing file is an
// empty map, not an error.
func (f *FileStore) Load(sessionID string) (map[uint]ai.Explanation, error) {
	data, err := os.ReadFile(f.path(sessionID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[uint]ai.Explanation{}, nil
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	var entries map[uint]ai.Explanation
	if err := json.Unmarshal(data, &entries); err != nil {
		// a corrupt partition is treated as never-generated
		return map[uint]ai.Explanation{}, nil
	}
	if entries == nil {
		entries = map[uint]ai.Explanation{}
	}
	return entries, nil
}

// Save rewrites the whole partition. Write-through re-serializes the
// full per-session map on every mutation rather than patching entries
// in place.
func (f *FileStore) Save(sessionID string, entries map[uint]ai.Explanation) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal cache entries: %w", err)
	}

	tmp := f.path(sessionID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := os.Rename(tmp, f.path(sessionID)); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}

// Drop removes the partition for a session id.
func (f *FileStore) Drop(sessionID string) error {
	err := os.Remove(f.path(sessionID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("drop cache file: %w", err)
	}
	return nil
}
