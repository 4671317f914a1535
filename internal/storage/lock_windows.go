//go:build windows
// +build windows

package storage

import (
	"os"

	"golang.org/x/sys/windows"
)

// lockFile blocks until an exclusive lock is held on the first byte of f.
// Locking a byte range works on zero-length files too, so empty files need
// no placeholder padding.
func lockFile(f *os.File) error {
	ol := new(windows.Overlapped)
	return windows.LockFileEx(windows.Handle(f.Fd()), windows.LOCKFILE_EXCLUSIVE_LOCK, 0, 1, 0, ol)
}

func unlockFile(f *os.File) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, 1, 0, ol)
}
