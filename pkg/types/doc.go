// Package types defines the core types and interfaces used throughout sortdl.
// This includes the FS abstraction the sorter works against, the closed set
// of categories, and the SortReport produced by a sweep.
package types
