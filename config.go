package templaro

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/templaro-dev/templaro/pkg/source"
)

// =============================================================================
// Configuration Types
// =============================================================================

// Config configures a Loader.
type Config struct {
	// RootDir is the base directory relative registered paths are
	// resolved against. It is fixed at construction: an empty value
	// means the current working directory, canonicalized if possible.
	RootDir string

	// DefaultExtension is the template file extension stripped from a
	// name before the fallback finder is consulted.
	// Default: "htm".
	DefaultExtension string

	// Fallback is consulted when a requested namespace has no
	// registered paths. Nil disables fallback lookups; unknown
	// namespaces then fail directly.
	Fallback Finder

	// Source is the file service used for existence checks, byte reads
	// and modification times. Nil means the local filesystem.
	Source source.Source

	// Logger is the structured logger for the loader.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// MetricsRegistry enables Prometheus metrics when non-nil.
	// Resolution counts, cache hits/misses and resolve durations are
	// registered against it.
	MetricsRegistry prometheus.Registerer

	// Tracing enables an OpenTelemetry span around each
	// ResolveContext call, using the global tracer provider.
	Tracing bool

	// TracerName is the tracer name used when Tracing is enabled.
	// Default: "templaro".
	TracerName string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultExtension: "htm",
		TracerName:       defaultTracerName,
	}
}
