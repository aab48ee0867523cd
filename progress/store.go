package progress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Loader reads a previously saved snapshot. A nil snapshot with a nil error
// means nothing was saved yet.
type Loader interface {
	Load() (*Snapshot, error)
}

// FileStore keeps the snapshot in a JSON file.
type FileStore struct {
	Path string
}

// DefaultSavePath returns the save file location under the user config dir.
func DefaultSavePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "aura-garden", "garden.json"), nil
}

// Load reads the save file. A missing file is not an error.
func (s *FileStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read save file: %w", err)
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return &snap, nil
}

// Save writes the snapshot through a temp file and rename so a crash never
// leaves a truncated save behind.
func (s *FileStore) Save(snap Snapshot) error {
	data, err := snap.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".garden-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replace save file: %w", err)
	}
	return nil
}
