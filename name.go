package templaro

import (
	"fmt"
	"net/url"
	"strings"
)

// =============================================================================
// Template Name Handling
// =============================================================================

// normalizeName converts backslashes to forward slashes and collapses
// repeated slashes. The result is the canonical form names are
// validated and parsed in; cache keys stay raw.
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	for strings.Contains(name, "//") {
		name = strings.ReplaceAll(name, "//", "/")
	}
	return name
}

// validateName rejects malformed or unsafe normalized names.
//
// It walks the "/"-separated segments left to right with a depth
// counter: ".." steps up, "." and empty segments are no-ops, anything
// else steps down. A negative depth at any point means the name
// addresses a directory above the registered root.
func validateName(name string) error {
	if strings.IndexByte(name, 0) != -1 {
		return fmt.Errorf("%w: %q", ErrNulByte, name)
	}

	depth := 0
	for _, seg := range strings.Split(name, "/") {
		switch seg {
		case "", ".":
			// no-op
		case "..":
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: %q", ErrPathEscape, name)
			}
		default:
			depth++
		}
	}
	return nil
}

// parseName splits a normalized name into its namespace and the
// namespace-relative short name. Names without an "@" prefix fall into
// DefaultNamespace.
func parseName(name string) (namespace, shortname string, err error) {
	if !strings.HasPrefix(name, "@") {
		return DefaultNamespace, name, nil
	}

	i := strings.Index(name, "/")
	if i < 0 {
		return "", "", fmt.Errorf("%w %q (expecting \"@namespace/template_name\")", ErrMalformedNamespace, name)
	}
	return name[1:i], name[i+1:], nil
}

// =============================================================================
// Path Helpers
// =============================================================================

// isAbsolutePath reports whether a registered path entry is absolute:
// it starts with a path separator, matches a drive-letter pattern, or
// parses as a URI with a scheme (e.g. "s3://bucket/templates").
func isAbsolutePath(p string) bool {
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, "\\") {
		return true
	}
	if len(p) >= 3 && isAlpha(p[0]) && p[1] == ':' && (p[2] == '/' || p[2] == '\\') {
		return true
	}
	// Single-letter schemes collide with drive letters and are not
	// treated as URIs.
	if u, err := url.Parse(p); err == nil && len(u.Scheme) > 1 {
		return true
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// joinPath concatenates a directory and a relative path with a single
// separator. path.Join is deliberately avoided: it would collapse the
// "//" in URI-style entries like "s3://bucket".
func joinPath(dir, rest string) string {
	return strings.TrimSuffix(dir, "/") + "/" + rest
}
