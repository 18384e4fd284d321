package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/shivendra100/devops-jokes-dispenser/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("devops-jokes-dispenser %s (commit=%s, date=%s)", Version, Commit, Date)
}
