package templaro

import (
	"context"
	"fmt"
	"sort"
)

// =============================================================================
// Path Registry
// =============================================================================

// SetPaths replaces the entire directory list registered under
// namespace. Every path must exist as a directory (resolved against
// the root directory when not absolute) or the call fails with
// ErrDirectoryNotFound and the previous list stays in place.
//
// The resolution cache is invalidated before validation runs, so a
// failed mutation still clears it.
func (l *Loader) SetPaths(namespace string, paths ...string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cache.invalidateAll()
	l.metrics.recordInvalidation()

	dirs := make([]string, 0, len(paths))
	for _, p := range paths {
		dir, err := l.checkDir(p)
		if err != nil {
			return err
		}
		dirs = append(dirs, dir)
	}

	l.paths[namespace] = dirs
	l.logger.Debug("template paths replaced", "namespace", namespace, "count", len(dirs))
	return nil
}

// AddPath appends one directory to namespace's list, under the same
// existence check and cache-invalidation side effect as SetPaths.
func (l *Loader) AddPath(namespace, path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cache.invalidateAll()
	l.metrics.recordInvalidation()

	dir, err := l.checkDir(path)
	if err != nil {
		return err
	}

	l.paths[namespace] = append(l.paths[namespace], dir)
	l.logger.Debug("template path added", "namespace", namespace, "dir", dir)
	return nil
}

// Paths returns a copy of the directory list registered under
// namespace, in search order.
func (l *Loader) Paths(namespace string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	dirs, ok := l.paths[namespace]
	if !ok {
		return nil
	}
	return append([]string(nil), dirs...)
}

// Namespaces returns the registered namespaces, sorted.
func (l *Loader) Namespaces() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make([]string, 0, len(l.paths))
	for ns := range l.paths {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// checkDir makes p absolute against the root directory and verifies it
// exists. Callers hold l.mu.
func (l *Loader) checkDir(p string) (string, error) {
	if !isAbsolutePath(p) {
		p = joinPath(l.rootDir, p)
	}
	if !l.src.IsDir(context.Background(), p) {
		return "", fmt.Errorf("%w: %q", ErrDirectoryNotFound, p)
	}
	return p, nil
}
