package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// CorruptionError indicates both the primary file and its backup failed
// validation. The caller must start from an empty document; this is the
// explicit user-visible data-loss path.
type CorruptionError struct {
	Reason string
}

func (e CorruptionError) Error() string {
	return fmt.Sprintf("task data is corrupted and no valid backup exists: %s", e.Reason)
}

// WriteError indicates a save failed (disk full, permission denied, path not
// writable). The previous primary file is left untouched.
type WriteError struct {
	Op  string
	Err error
}

// Error renders a path-free message: user-visible output must not leak
// filesystem paths. The full cause stays reachable through Unwrap.
func (e WriteError) Error() string {
	return fmt.Sprintf("failed to save tasks (%s): %v", e.Op, sanitizeCause(e.Err))
}

func (e WriteError) Unwrap() error {
	return e.Err
}

// sanitizeCause strips filesystem paths from an error: *fs.PathError and
// *os.LinkError render as their underlying cause. Other errors pass through
// unchanged.
func sanitizeCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err
	}
	return err
}

// FileTooLargeError indicates the serialized document exceeds the size limit.
type FileTooLargeError struct {
	Size  int
	Limit int
}

func (e FileTooLargeError) Error() string {
	return fmt.Sprintf("serialized task file is %d bytes, maximum is %d", e.Size, e.Limit)
}
