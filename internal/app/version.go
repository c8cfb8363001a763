package app

import "fmt"

// Set via ldflags, e.g.
// -X github.com/heartmarshall/partsdesk-backend/internal/app.Version=1.4.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported in startup logs, /health and opsctl version.
func BuildVersion() string {
	if Commit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)
}
