// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Vidmark is the canonical application identifier used for filesystem paths and CLI branding.
	Vidmark = "vidmark"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)
