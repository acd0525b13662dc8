package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JarodCode/gamevault/internal/logger"
)

// Error variables
var (
	// ErrVerifyMismatch is returned when the record count read back after a
	// save does not match the count that was written.
	ErrVerifyMismatch = errors.New("save verification failed: record count mismatch")
)

// Store persists named collections as JSON files inside a single data
// directory. Every save keeps a .bak copy of the previous file contents and
// writes the new contents through a temporary file with an atomic rename.
type Store struct {
	dir string
}

// New creates the data directory if needed and probes it for write access.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	// Probe write permissions up front so a read-only volume fails at
	// startup instead of on the first mutation.
	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("test"), 0o644); err != nil {
		return nil, fmt.Errorf("data directory is not writable: %w", err)
	}
	if err := os.Remove(probe); err != nil {
		logger.Log.Warnw("failed to remove write probe", "error", err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads the named collection and returns its records undecoded, so the
// caller can skip individual malformed records instead of failing the whole
// load. A missing file is an empty collection, not an error. A file that
// cannot be parsed at all is treated as empty with a warning.
func (s *Store) Load(name string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Log.Infow("collection file not found, starting empty", "collection", name)
			return nil, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", name, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Log.Warnw("collection file is not a valid record list, starting empty",
			"collection", name, "error", err)
		return nil, nil
	}

	logger.Log.Infow("collection loaded", "collection", name, "records", len(records))
	return records, nil
}

// Save serializes the full collection and overwrites the primary file.
// Sequence: best-effort .bak copy of the current file, write to a temporary
// file, fsync, atomic rename into place, then a read-back verification that
// the persisted record count matches count. A verification mismatch is
// returned as ErrVerifyMismatch so callers can fail the request instead of
// silently trusting a torn write.
func (s *Store) Save(name string, records any, count int) error {
	primary := s.path(name)

	if err := s.backup(primary); err != nil {
		// Backup failure must not abort the save.
		logger.Log.Warnw("failed to back up collection", "collection", name, "error", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize collection %s: %w", name, err)
	}

	tmp := primary + ".tmp"
	if err := writeFileSync(tmp, data); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	if err := os.Rename(tmp, primary); err != nil {
		return fmt.Errorf("replace collection %s: %w", name, err)
	}

	written, err := s.Load(name)
	if err != nil {
		return fmt.Errorf("verify collection %s: %w", name, err)
	}
	if len(written) != count {
		logger.Log.Errorw("save verification failed",
			"collection", name, "expected", count, "found", len(written))
		return fmt.Errorf("collection %s: %w", name, ErrVerifyMismatch)
	}

	logger.Log.Infow("collection saved", "collection", name, "records", count)
	return nil
}

// backup copies the current primary file to a .bak sibling if it exists.
func (s *Store) backup(primary string) error {
	src, err := os.Open(primary)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer src.Close()

	dst, err := os.Create(primary + ".bak")
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func writeFileSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
