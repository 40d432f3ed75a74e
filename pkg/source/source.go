// Package source abstracts the file services a template loader calls
// through: existence checks, byte reads and modification times.
//
// The loader itself only ever asks whether paths exist and, after a
// successful resolution, for bytes and a timestamp; it never lists or
// interprets anything. That narrow contract is what makes non-local
// backends like S3 viable template sources.
package source

import (
	"context"
	"time"
)

// Source is the file service contract.
type Source interface {
	// IsFile reports whether path exists and is a regular file.
	IsFile(ctx context.Context, path string) bool

	// IsDir reports whether path exists and is a directory (or, for
	// object stores, a non-empty prefix).
	IsDir(ctx context.Context, path string) bool

	// ReadFile returns the full contents of path.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// ModTime returns the last modification time of path.
	ModTime(ctx context.Context, path string) (time.Time, error)

	// Canonical returns the canonical form of path, best effort: when
	// canonicalization fails the input is returned unchanged.
	Canonical(path string) string
}
