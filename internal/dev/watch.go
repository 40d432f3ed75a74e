package dev

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"
)

// Watcher polls template directories for changes by comparing per-file
// modification times between scans. The directory set is re-read on
// every scan so path registrations made after Start are picked up.
type Watcher struct {
	dirs     func() []string
	interval time.Duration
	onChange func(path string)
	logger   *slog.Logger

	mu     sync.Mutex
	mtimes map[string]time.Time
	primed bool

	stop chan struct{}
	done chan struct{}
}

// NewWatcher creates a watcher over the directories returned by dirs.
// onChange is invoked once per changed, added or removed file.
func NewWatcher(dirs func() []string, interval time.Duration, onChange func(path string), logger *slog.Logger) *Watcher {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		dirs:     dirs,
		interval: interval,
		onChange: onChange,
		logger:   logger,
		mtimes:   make(map[string]time.Time),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins polling in a background goroutine. The first scan only
// primes the modification-time index; changes are reported from the
// second scan on.
func (w *Watcher) Start() {
	go func() {
		defer close(w.done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.Scan()
		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				for _, path := range w.Scan() {
					w.onChange(path)
				}
			}
		}
	}()
}

// Stop halts polling and waits for the watch goroutine to exit.
func (w *Watcher) Stop() {
	close(w.stop)
	<-w.done
}

// Scan walks the watched directories once and returns the paths whose
// modification time changed since the previous scan, including files
// that appeared or disappeared. The first scan returns nothing.
func (w *Watcher) Scan() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	seen := make(map[string]time.Time)
	for _, dir := range w.dirs() {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				// Unreadable entries are skipped, not fatal.
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			seen[path] = info.ModTime()
			return nil
		})
		if err != nil {
			w.logger.Debug("watch scan failed", "dir", dir, "error", err)
		}
	}

	var changed []string
	if w.primed {
		for path, mtime := range seen {
			if prev, ok := w.mtimes[path]; !ok || !prev.Equal(mtime) {
				changed = append(changed, path)
			}
		}
		for path := range w.mtimes {
			if _, ok := seen[path]; !ok {
				changed = append(changed, path)
			}
		}
	}

	w.mtimes = seen
	w.primed = true
	return changed
}
