// Package storage owns the on-disk representation of the task collection:
// loading, atomic saving, single-generation backup rotation, and corruption
// detection with backup fallback.
package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	// FileName is the primary storage file name inside the data directory.
	FileName = "tasks.json"
	// BackupSuffix is appended to the primary path for the retained backup.
	BackupSuffix = ".bak"
	// MaxFileSize is the maximum serialized document size in bytes.
	MaxFileSize = 1 << 20

	filePerm = os.FileMode(0o600)
	dirPerm  = os.FileMode(0o700)
)

// Store handles durable, corruption-resistant persistence of the storage
// document. It assumes a single process holds the file pair at a time; no
// advisory locking is taken.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a Store rooted at the given data directory. A nil logger
// disables diagnostics.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{dir: dir, logger: logger}
}

// PrimaryPath returns the path of the primary storage file.
func (s *Store) PrimaryPath() string {
	return filepath.Join(s.dir, FileName)
}

// BackupPath returns the path of the single retained backup file.
func (s *Store) BackupPath() string {
	return s.PrimaryPath() + BackupSuffix
}

// LoadResult is the outcome of a successful Load.
type LoadResult struct {
	Doc *Document
	// RecoveredFromBackup is true when the primary file failed validation
	// and the document was read from the backup instead. Callers should
	// surface this as a warning.
	RecoveredFromBackup bool
}

// Load reads the storage document. A missing primary file yields a fresh
// empty document without writing anything; a subsequent Save creates it.
// A corrupt primary falls back to the backup; if the backup also fails
// validation, Load fails with CorruptionError.
func (s *Store) Load() (LoadResult, error) {
	doc, err := s.readDocument(s.PrimaryPath())
	if os.IsNotExist(err) {
		s.logger.Debug("no storage file, starting empty", "path", FileName)
		return LoadResult{Doc: NewDocument()}, nil
	}
	if err == nil {
		return LoadResult{Doc: doc}, nil
	}

	s.logger.Warn("primary storage file failed validation, trying backup", "error", err)
	primaryErr := err

	doc, err = s.readDocument(s.BackupPath())
	if err != nil {
		return LoadResult{}, CorruptionError{
			Reason: fmt.Sprintf("primary: %v; backup: %v", sanitizeCause(primaryErr), sanitizeCause(err)),
		}
	}
	s.logger.Warn("recovered task data from backup file")
	return LoadResult{Doc: doc, RecoveredFromBackup: true}, nil
}

// readDocument reads, parses, and validates a single file. The os.IsNotExist
// sentinel is preserved so Load can distinguish absence from corruption.
func (s *Store) readDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	if doc.Metadata.TaskCount != len(doc.Tasks) {
		// The count is a redundant hint, not a source of truth.
		s.logger.Warn("task_count metadata does not match tasks array",
			"task_count", doc.Metadata.TaskCount, "actual", len(doc.Tasks))
	}
	return doc, nil
}

// Save persists the document with a backup-then-write sequence: rotate the
// current primary into the backup slot, write the new contents to a temporary
// file in the same directory, then atomically rename it over the primary.
// Any failure leaves the previous primary file untouched.
func (s *Store) Save(doc *Document) error {
	doc.Metadata.Version = SchemaVersion
	doc.Metadata.TaskCount = len(doc.Tasks)
	doc.Metadata.LastModified = time.Now().UTC()

	data, err := Serialize(doc)
	if err != nil {
		return WriteError{Op: "serialize", Err: err}
	}
	if len(data) > MaxFileSize {
		return FileTooLargeError{Size: len(data), Limit: MaxFileSize}
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return WriteError{Op: "create data directory", Err: err}
	}

	primary := s.PrimaryPath()
	if _, err := os.Stat(primary); err == nil {
		if err := s.rotateBackup(primary); err != nil {
			return WriteError{Op: "rotate backup", Err: err}
		}
	}

	if err := writeFileAtomic(primary, data); err != nil {
		return WriteError{Op: "write primary", Err: err}
	}
	s.logger.Debug("saved tasks", "count", len(doc.Tasks))
	return nil
}

// rotateBackup copies the current primary over the backup path. Retention is
// exactly one generation.
func (s *Store) rotateBackup(primary string) error {
	data, err := os.ReadFile(primary)
	if err != nil {
		return err
	}
	backup := s.BackupPath()
	if err := os.WriteFile(backup, data, filePerm); err != nil {
		return err
	}
	// WriteFile keeps the mode of a pre-existing file; force owner-only.
	return os.Chmod(backup, filePerm)
}

// writeFileAtomic writes data to a temporary file in the target directory,
// restricts permissions, syncs, and renames it over the target so a crash
// mid-write never leaves a half-written file observable.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(filePerm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
