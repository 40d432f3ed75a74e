package templaro

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for loader spans.
const defaultTracerName = "templaro"

// =============================================================================
// Resolution API
// =============================================================================

// Resolve converts a template name into a verified path, in strict
// mode: every failure kind is returned as an error.
func (l *Loader) Resolve(name string) (string, error) {
	return l.ResolveContext(context.Background(), name)
}

// ResolveContext is Resolve with a caller-supplied context. When
// tracing is enabled it wraps the resolution in a span carrying the
// template name, resolved path and error status.
func (l *Loader) ResolveContext(ctx context.Context, name string) (string, error) {
	if l.tracer == nil {
		return l.resolve(ctx, name)
	}

	ctx, span := l.tracer.Start(ctx, "templaro.resolve",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("templaro.name", name)),
	)
	defer span.End()

	path, err := l.resolve(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.String("templaro.path", path))
	span.SetStatus(codes.Ok, "")
	return path, nil
}

// Probe is the non-raising form of Resolve: every failure kind
// degrades to a false "not found" signal. Probe and Resolve share the
// identical underlying resolution and caching logic.
func (l *Loader) Probe(name string) (string, bool) {
	path, err := l.resolve(context.Background(), name)
	if err != nil {
		return "", false
	}
	return path, true
}

// =============================================================================
// Resolution Algorithm
// =============================================================================

// resolve is the single inner resolution path shared by the strict and
// probe adapters. The cache is keyed by the raw name, so a repeated
// identical call returns without validating, parsing or touching the
// file service.
func (l *Loader) resolve(ctx context.Context, name string) (string, error) {
	start := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if path, ok := l.cache.getPositive(name); ok {
		l.metrics.recordCacheHit("positive")
		return path, nil
	}
	if err, ok := l.cache.getNegative(name); ok {
		l.metrics.recordCacheHit("negative")
		return "", err
	}
	l.metrics.recordCacheMiss()

	path, namespace, err := l.find(ctx, name)
	l.metrics.recordDuration(time.Since(start))
	if err != nil {
		// Failures of every kind are cached, validation and parse
		// failures included, so retrying a bad name is O(1).
		l.cache.putNegative(name, err)
		l.metrics.recordResolution(namespace, "error")
		l.logger.Debug("template resolution failed", "name", name, "error", err)
		return "", err
	}

	l.cache.putPositive(name, path)
	l.metrics.recordResolution(namespace, "success")
	l.logger.Debug("template resolved", "name", name, "path", path)
	return path, nil
}

// find runs the uncached resolution: normalize, validate, parse, then
// search the namespace's directories in registration order. The first
// directory containing the file wins. Callers hold l.mu.
func (l *Loader) find(ctx context.Context, raw string) (path, namespace string, err error) {
	name := normalizeName(raw)
	if err := validateName(name); err != nil {
		return "", "", err
	}

	ns, shortname, err := parseName(name)
	if err != nil {
		return "", "", err
	}

	dirs, known := l.paths[ns]
	if !known {
		path, err := l.findFallback(ctx, name, ns)
		return path, ns, err
	}

	for _, dir := range dirs {
		candidate := joinPath(dir, shortname)
		if l.src.IsFile(ctx, candidate) {
			return l.src.Canonical(candidate), ns, nil
		}
	}
	return "", ns, fmt.Errorf("%w %q (looked into: %s)", ErrTemplateNotFound, raw, strings.Join(dirs, ", "))
}

// findFallback handles names whose namespace has no registered paths:
// a name that is already an existing file resolves directly to itself;
// otherwise the fallback finder is asked for the name stripped of its
// "@" prefix and default extension.
func (l *Loader) findFallback(ctx context.Context, name, namespace string) (string, error) {
	if l.src.IsFile(ctx, name) {
		return l.src.Canonical(name), nil
	}

	if l.fallback != nil {
		stem := strings.TrimPrefix(name, "@")
		stem = strings.TrimSuffix(stem, "."+l.ext)
		if path, ok := l.fallback.Find(stem); ok {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w %q", ErrNamespaceUnregistered, namespace)
}
