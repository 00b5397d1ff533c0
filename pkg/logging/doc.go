// Package logging wires zerolog for sortdl: a console writer on stderr plus
// an optional append-only log file under the XDG state directory.
package logging
