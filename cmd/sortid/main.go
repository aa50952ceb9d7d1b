// sortid CLI - Command-line interface for time-ordered 128-bit identifiers
package main

import "github.com/getmockd/sortid/pkg/cli"

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	cli.Execute()
}
