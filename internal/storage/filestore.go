package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore persists named JSON documents under a data directory.
// It has no file locking: concurrent writers from different processes race
// and the last write wins.
type FileStore struct {
	dir      string
	readOnly bool
	log      *zap.Logger
}

func NewFileStore(dir string, readOnly bool, log *zap.Logger) *FileStore {
	return &FileStore{dir: dir, readOnly: readOnly, log: log}
}

// ReadOnly reports whether disk access is disabled.
func (s *FileStore) ReadOnly() bool {
	return s.readOnly
}

func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load decodes the named document into out. A missing document is created
// from fallback; an unreadable or corrupt one is logged and replaced in
// memory by fallback (the file itself is left untouched). In read-only mode
// the disk is never read and out always receives a copy of fallback.
func (s *FileStore) Load(name string, fallback, out any) error {
	if s.readOnly {
		return deepCopy(fallback, out)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", s.dir, err)
	}

	raw, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		s.Save(name, fallback)
		return deepCopy(fallback, out)
	}
	if err != nil {
		s.log.Error("Failed to read data file", zap.String("file", name), zap.Error(err))
		return deepCopy(fallback, out)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Error("Failed to parse data file", zap.String("file", name), zap.Error(err))
		return deepCopy(fallback, out)
	}
	return nil
}

// Save overwrites the named document with pretty-printed JSON. Failures are
// logged only; callers get no signal that the write was lost.
func (s *FileStore) Save(name string, data any) {
	if s.readOnly {
		return
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		s.log.Error("Failed to encode data file", zap.String("file", name), zap.Error(err))
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error("Failed to create data dir", zap.String("dir", s.dir), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.Path(name), raw, 0o644); err != nil {
		s.log.Error("Failed to save data file", zap.String("file", name), zap.Error(err))
	}
}

func deepCopy(src, dst any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("copy fallback: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("copy fallback: %w", err)
	}
	return nil
}
