// Package sorter sweeps one directory and moves each top-level regular file
// into a category folder beside it.
//
// A sweep is a single linear pass:
//
//  1. list the immediate entries of the root (never recursing)
//  2. skip directories, including category folders from earlier sweeps
//  3. skip anything that is not a regular file, with a warning
//  4. classify by extension and create root/<category> if missing
//  5. copy the file to a collision-free name there, then remove the source
//
// Per-entry failures are recorded in the SortReport and the sweep moves on.
// Only a missing or unreadable root aborts the pass.
package sorter
