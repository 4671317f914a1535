package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// WriteFileAtomic writes data to path by way of a uniquely named sibling
// temp file and a rename, so a reader of path sees either the old content
// or the new content in full, never a partial write. If the rename itself
// fails the temp file is left in place so the payload can be recovered or
// retried; the target is untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := fmt.Sprintf("%s.tmp-%s", path, strings.ReplaceAll(uuid.NewString(), "-", ""))
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
