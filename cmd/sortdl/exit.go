package sortdl

import (
	"github.com/arthur-debert/sortdl/pkg/errors"
)

// Process exit codes
const (
	ExitOK         = 0
	ExitSetup      = 1
	ExitMissingDir = 2
)

// ExitCode maps the error returned by the root command to a process exit
// code. Per-entry failures never reach here; a sweep that ran is a success.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsErrorCode(err, errors.ErrDirectoryNotFound):
		return ExitMissingDir
	default:
		return ExitSetup
	}
}
