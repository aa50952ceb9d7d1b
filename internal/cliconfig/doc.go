// Package cliconfig loads configuration for the sortid CLI.
//
// Values are layered with the following precedence (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (SORTID_* prefix)
//  3. Local config file (.sortid.yaml in the working directory)
//  4. Global config file (<user config dir>/sortid/config.yaml)
//  5. Default values
//
// An explicit --config path replaces steps 3 and 4. Config records the
// source of every value in Sources so that `sortid config` can explain where
// a setting came from.
package cliconfig
