package util

import (
	"os"
	"path/filepath"
	"strings"
)

// GraphExtensions are the file extensions recognised as graph files.
var GraphExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
}

// IsGraphFile checks if path is a regular file with a graph file extension.
func IsGraphFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return GraphExtensions[strings.ToLower(filepath.Ext(path))]
}

// GetFileStem returns the filename without extension.
func GetFileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

// EnsureDirectory creates a directory if it doesn't exist.
func EnsureDirectory(path string) error {
	return os.MkdirAll(path, 0o755)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
