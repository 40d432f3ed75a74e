package templaro

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/templaro-dev/templaro/pkg/source"
)

// =============================================================================
// Loader Type
// =============================================================================

// Loader resolves template names to verified paths.
//
// It owns the per-namespace path registry and the resolution cache; a
// single mutex serializes both, so any registry mutation invalidates
// the cache before a concurrent lookup can observe the new paths. All
// methods are concurrent-safe.
//
// Create a Loader with templaro.New():
//
//	loader, err := templaro.New(templaro.Config{
//	    RootDir:  "views",
//	    Fallback: myFinder,
//	})
type Loader struct {
	mu    sync.Mutex
	paths map[string][]string // namespace -> ordered directory list
	cache *resolutionCache

	rootDir  string
	ext      string
	fallback Finder
	src      source.Source

	logger  *slog.Logger
	metrics *loaderMetrics
	tracer  trace.Tracer
}

// New creates a Loader with the given configuration. The root
// directory is resolved once, here: an explicit cfg.RootDir or the
// current working directory, canonicalized if possible.
func New(cfg Config) (*Loader, error) {
	root := cfg.RootDir
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("templaro: determine root directory: %w", err)
		}
		root = wd
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	if canonical, err := filepath.EvalSymlinks(root); err == nil {
		root = canonical
	}

	ext := cfg.DefaultExtension
	if ext == "" {
		ext = DefaultConfig().DefaultExtension
	}

	src := cfg.Source
	if src == nil {
		src = source.OSSource{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	l := &Loader{
		paths:    make(map[string][]string),
		cache:    newResolutionCache(),
		rootDir:  root,
		ext:      ext,
		fallback: cfg.Fallback,
		src:      src,
		logger:   logger,
	}

	if cfg.MetricsRegistry != nil {
		l.metrics = newLoaderMetrics(cfg.MetricsRegistry)
	}
	if cfg.Tracing {
		name := cfg.TracerName
		if name == "" {
			name = defaultTracerName
		}
		l.tracer = otel.Tracer(name)
	}

	return l, nil
}

// RootDir returns the base directory relative registered paths are
// resolved against.
func (l *Loader) RootDir() string {
	return l.rootDir
}

// DefaultExtension returns the extension stripped before fallback
// lookups.
func (l *Loader) DefaultExtension() string {
	return l.ext
}

// Invalidate drops every cached resolution, positive and negative.
// Registry mutations do this implicitly; callers such as file watchers
// use it when template files change underneath registered directories.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.invalidateAll()
	l.metrics.recordInvalidation()
}

// =============================================================================
// Template Access
// =============================================================================

// Load resolves name and reads the template's source bytes, returning
// them together with the resolved path and modification time as
// provenance metadata.
func (l *Loader) Load(ctx context.Context, name string) (*Template, error) {
	path, err := l.ResolveContext(ctx, name)
	if err != nil {
		return nil, err
	}

	code, err := l.src.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("templaro: read template %q: %w", name, err)
	}
	mtime, err := l.src.ModTime(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("templaro: stat template %q: %w", name, err)
	}

	return &Template{Name: name, Path: path, Code: code, ModTime: mtime}, nil
}

// IsFresh reports whether the template behind name is fresh relative to
// since: fresh iff its modification time is at or before since.
func (l *Loader) IsFresh(ctx context.Context, name string, since time.Time) (bool, error) {
	path, err := l.ResolveContext(ctx, name)
	if err != nil {
		return false, err
	}

	mtime, err := l.src.ModTime(ctx, path)
	if err != nil {
		return false, fmt.Errorf("templaro: stat template %q: %w", name, err)
	}
	return !mtime.After(since), nil
}

// Exists reports whether name resolves to an existing template. It is
// false for every failure kind, malformed names included.
func (l *Loader) Exists(name string) bool {
	_, ok := l.Probe(name)
	return ok
}
