// ABOUTME: Operating-system filesystem adapter for the FileSystem port
// ABOUTME: Treats only regular files as existing, matching the locator's checks

package osfs

import (
	"os"
)

// OSFileSystem implements the FileSystem interface using the os package
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS-backed filesystem adapter
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Exists reports whether a regular file exists at path. Directories and
// stat errors both report false.
func (f *OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile reads the entire file at path
func (f *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
