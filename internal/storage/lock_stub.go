//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

package storage

import (
	"fmt"
	"os"
	"runtime"
)

func lockFile(f *os.File) error {
	return fmt.Errorf("file locking not supported on %s", runtime.GOOS)
}

func unlockFile(f *os.File) error {
	return nil
}
