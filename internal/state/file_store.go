package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// fileStore keeps the whole document in one pretty-printed JSON file.
type fileStore struct {
	path string
}

func newFileStore(path string) *fileStore {
	return &fileStore{path: path}
}

func (f *fileStore) Close() error { return nil }

// Load reads the document. A file that does not exist yet is an empty state,
// not an error; an unreadable or corrupt file is surfaced to the caller.
func (f *fileStore) Load() (State, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("read state file: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("decode state file %s: %w", f.path, err)
	}
	return st, nil
}

func (f *fileStore) Save(st State) error {
	dir := filepath.Dir(f.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
