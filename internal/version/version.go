package version

import (
	"fmt"
	"runtime"
)

// These variables are populated at build time via -ldflags, e.g.
// -X github.com/faizmokh/ublog/internal/version.Version=v1.2.0.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-friendly version string that surfaces build metadata.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s/%s)", Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
