package templaro

import "errors"

// Resolution and registration failures wrap one of these sentinel
// errors; match them with errors.Is.
var (
	// ErrNulByte reports a template name containing a NUL byte.
	ErrNulByte = errors.New("template name contains a NUL byte")

	// ErrPathEscape reports a template name whose relative segments
	// would traverse above the registered directories.
	ErrPathEscape = errors.New("template name walks above the root directory")

	// ErrMalformedNamespace reports an "@"-prefixed name with no
	// namespace/short-name separator.
	ErrMalformedNamespace = errors.New("malformed namespaced template name")

	// ErrDirectoryNotFound reports a registered directory that does not
	// exist. The mutation that produced it did not take effect.
	ErrDirectoryNotFound = errors.New("template directory does not exist")

	// ErrNamespaceUnregistered reports a lookup in a namespace with no
	// registered paths after the fallback finder also came up empty.
	ErrNamespaceUnregistered = errors.New("no registered paths for namespace")

	// ErrTemplateNotFound reports that no registered directory of a
	// known namespace contains the requested file.
	ErrTemplateNotFound = errors.New("unable to find template")
)
