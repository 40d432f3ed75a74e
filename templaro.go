// Package templaro resolves symbolic, optionally namespaced template
// names into concrete, verified filesystem paths.
//
// A template name is either plain ("pages/index.htm") or namespaced
// ("@admin/form.htm"). Each namespace owns an ordered list of base
// directories; the first directory containing the requested file wins.
// Names that would traverse above the registered directories are
// rejected, and both successful and failed resolutions are memoized
// until the directory registrations change.
//
// Usage:
//
//	loader, err := templaro.New(templaro.Config{RootDir: "views"})
//	if err != nil { ... }
//	if err := loader.SetPaths("admin", "admin/templates"); err != nil { ... }
//
//	path, err := loader.Resolve("@admin/form.htm")
//	tpl, err := loader.Load(ctx, "@admin/form.htm")
//
// The loader never interprets template contents; rendering is the
// caller's concern.
package templaro

import (
	"time"
)

// DefaultNamespace is the namespace used for template names that carry
// no "@namespace/" prefix.
const DefaultNamespace = "__main__"

// Finder is the fallback lookup consulted when a requested namespace has
// no registered paths. Its search rules are opaque to the loader; it
// receives the template name with the "@" prefix and the default
// extension stripped.
type Finder interface {
	// Find returns the located path for the given stem, or false when
	// the stem is unknown.
	Find(stem string) (string, bool)
}

// FinderFunc adapts a plain function to the Finder interface.
type FinderFunc func(stem string) (string, bool)

// Find calls f.
func (f FinderFunc) Find(stem string) (string, bool) { return f(stem) }

// Template is a loaded template: its source bytes plus the provenance
// metadata callers need for freshness checks and error reporting.
type Template struct {
	// Name is the raw name the template was requested under.
	Name string

	// Path is the resolved, verified path the bytes were read from.
	Path string

	// Code is the template source text.
	Code []byte

	// ModTime is the source's last modification time.
	ModTime time.Time
}
