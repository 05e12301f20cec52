// Package version provides version information for the relkit CLI itself.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release version, set via ldflags.
	Version = "0.0.0-dev"

	// Revision is the VCS revision the binary was built from.
	Revision = "unknown"
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, kv := range bi.Settings {
		if kv.Key == "vcs.revision" {
			Revision = kv.Value
		}
	}
}

// GetVersionString returns the version and revision in a single string.
func GetVersionString() string {
	return fmt.Sprintf("%s (%s)", Version, Revision)
}
