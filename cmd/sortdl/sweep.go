package sortdl

import (
	"fmt"

	"github.com/arthur-debert/sortdl/pkg/errors"
	"github.com/arthur-debert/sortdl/pkg/lock"
	"github.com/arthur-debert/sortdl/pkg/logging"
	"github.com/arthur-debert/sortdl/pkg/paths"
	"github.com/arthur-debert/sortdl/pkg/sorter"
	"github.com/spf13/cobra"
)

// targetDir picks the directory to sort: flag or config, else the
// platform downloads folder.
func (a *app) targetDir() (string, error) {
	target := a.cfg.Sweep.Target
	if target == "" {
		var err error
		if target, err = paths.DefaultTarget(); err != nil {
			return "", err
		}
	}
	return paths.NormalizeTarget(target)
}

// runSweep sorts the target directory once and renders the report
func (a *app) runSweep(cmd *cobra.Command) error {
	logger := logging.GetLogger("cmd.sweep")

	root, err := a.targetDir()
	if err != nil {
		return fmt.Errorf(MsgErrResolveDir, err)
	}

	sweepLock, err := lock.Acquire(a.paths.LocksDir(), root)
	if err != nil {
		return err
	}
	defer func() {
		if err := sweepLock.Release(); err != nil {
			logger.Warn().Err(err).Msg(MsgLockReleaseFail)
		}
	}()

	s := sorter.New(a.fs, sorter.Options{
		DryRun:    a.cfg.Sweep.DryRun,
		Verify:    a.cfg.Relocate.Verify,
		MaxSuffix: a.cfg.Relocate.MaxSuffix,
		DirMode:   a.cfg.Relocate.DirMode.Perm(),
	})

	report, err := s.SortDirectory(root)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrDirectoryNotFound) && a.cfg.Sweep.MissingDirOK {
			logger.Warn().Str("root", root).Msg(MsgMissingDirOK)
			return nil
		}
		return err
	}

	r, err := a.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := r.RenderReport(report); err != nil {
		return fmt.Errorf(MsgErrRenderOutput, err)
	}
	return nil
}
