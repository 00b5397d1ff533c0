// Package filesystem provides filesystem implementations for sortdl.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used by the CLI, and an afero-backed
// filesystem used for in-memory tests and read-only simulations.
package filesystem
