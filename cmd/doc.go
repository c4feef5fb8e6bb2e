// Package cmd implements the command-line interface of fmtsize.
//
// The package is organized into several subpackages:
//
//   - compare: Runs the size comparison (load, serialize, gzip, report)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See fmtsize -help for a list of all commands.
package cmd
