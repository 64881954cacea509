// Package buildinfo carries the build identity stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X folio/internal/buildinfo.Version=v1.2.0 -X folio/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full build identity.
func String() string {
	return fmt.Sprintf("folio %s (commit %s, built %s)", Version, Commit, Date)
}
