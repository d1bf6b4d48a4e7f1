// Package fileutil provides file and path utility functions.
package fileutil

import "os"

// FilePermissions for generated artifacts: rw-r--r--.
const FilePermissions = 0o644

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
