// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
)

// WriteFile writes data to path, creating any missing parent directories.
// An existing file is truncated.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
