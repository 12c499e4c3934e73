// Package version reports build metadata for the kanban binary.
package version

import "fmt"

// Set with ldflags, e.g.
//
//	go build -ldflags "-X github.com/pablasso/kanban/internal/version.Version=v1.0.0 \
//	  -X github.com/pablasso/kanban/internal/version.CommitSHA=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

const shortSHALen = 7

// ShortCommit returns the first seven characters of CommitSHA.
func ShortCommit() string {
	if len(CommitSHA) > shortSHALen {
		return CommitSHA[:shortSHALen]
	}
	return CommitSHA
}

// String returns the one-line description printed by `kanban version`.
func String() string {
	return fmt.Sprintf("kanban %s (commit %s, built %s)", Version, ShortCommit(), BuildDate)
}
