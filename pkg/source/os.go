package source

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// OSSource serves template lookups from the local filesystem. The zero
// value is ready to use.
type OSSource struct{}

var _ Source = OSSource{}

// IsFile reports whether path is an existing regular file.
func (OSSource) IsFile(_ context.Context, path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path is an existing directory.
func (OSSource) IsDir(_ context.Context, path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadFile returns the contents of path.
func (OSSource) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ModTime returns the modification time of path.
func (OSSource) ModTime(_ context.Context, path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Canonical resolves symlinks in path. Paths that cannot be
// canonicalized are returned unchanged.
func (OSSource) Canonical(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}
