// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "lifo"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, injected at link time with -ldflags "-X github.com/lifo-cli/lifo/constant.BuiltAt=...".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
