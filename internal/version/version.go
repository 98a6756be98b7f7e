// Package version holds the application version string.
// It is set at build time via -ldflags.
package version

// Version is the application version, overridden at build time with:
//
//	go build -ldflags "-X .../internal/version.Version=v1.2.3"
var Version = "dev"
