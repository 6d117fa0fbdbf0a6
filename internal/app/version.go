package app

import "fmt"

// Build metadata, stamped with
//
//	go build -ldflags "-X github.com/heartmarshall/projecthub-backend/internal/app.Version=1.4.0 -X ...Commit=abc123"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version reported in startup logs and by /health.
// Local builds without ldflags report just the version.
func BuildVersion() string {
	if Commit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
