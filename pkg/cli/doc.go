// Package cli provides the command-line interface for sortid.
//
// The cli package implements these commands:
//   - new: Generate IDs from the current time or a fixed timestamp
//   - parse: Decode IDs into timestamp, random suffix and UUID form
//   - validate: Check IDs from arguments or stdin, reporting each failure
//   - sort: Order IDs read from stdin by time
//   - config: Display effective configuration and the source of each value
//   - version: Show sortid version
//
// Every command accepts --json for machine-readable output. Configuration is
// layered from built-in defaults, the global config file, ./.sortid.yaml,
// SORTID_* environment variables and flags, later layers winning.
package cli
