package storage

import (
	"fmt"
	"io"
	"os"
)

// lockedFile is an open file holding an exclusive advisory lock. The lock
// is tracked so release happens exactly once, and only if it was actually
// acquired.
type lockedFile struct {
	f      *os.File
	locked bool
}

// openLocked opens path with flag and blocks until the exclusive lock is
// held. On any failure the file is closed and nothing is left locked.
func openLocked(path string, flag int, perm os.FileMode) (*lockedFile, error) {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	return &lockedFile{f: f, locked: true}, nil
}

// Close releases the lock if held, then closes the file. Safe to call more
// than once.
func (lf *lockedFile) Close() error {
	if lf.f == nil {
		return nil
	}
	var firstErr error
	if lf.locked {
		if err := unlockFile(lf.f); err != nil {
			firstErr = err
		}
		lf.locked = false
	}
	if err := lf.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	lf.f = nil
	return firstErr
}

// overwriteAndSync rewrites f from offset zero, truncates whatever the old
// content held beyond the new length, and forces the result to storage.
// Callers run this under the file's lock.
func overwriteAndSync(f *os.File, data []byte) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	n, err := f.Write(data)
	if err != nil {
		return err
	}
	if err := f.Truncate(int64(n)); err != nil {
		return err
	}
	return f.Sync()
}
