// Package testutil provides utilities for testing sortdl components.
//
// Key components:
//   - NewTestFS: in-memory afero filesystem behind the types.FS interface
//   - WriteFiles / ReadTree: declarative setup and inspection of a directory
//   - FaultyFS: a types.FS wrapper that injects failures and races
//
// Usage guidelines:
//   - Prefer the in-memory FS; use t.TempDir() only for symlink or
//     permission behaviour that afero cannot model
//   - All test data should be defined inline, not in external files
package testutil
