package sorter

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/arthur-debert/sortdl/pkg/classify"
	"github.com/arthur-debert/sortdl/pkg/destination"
	"github.com/arthur-debert/sortdl/pkg/errors"
	"github.com/arthur-debert/sortdl/pkg/logging"
	"github.com/arthur-debert/sortdl/pkg/relocate"
	"github.com/arthur-debert/sortdl/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options tunes a Sorter. The zero value is usable.
type Options struct {
	// DryRun resolves destinations without creating folders or moving files
	DryRun bool

	// Verify re-reads each copy and compares checksums before removing the source
	Verify bool

	// MaxSuffix bounds the _n disambiguation counter
	MaxSuffix int

	// DirMode is the permission of created category folders
	DirMode os.FileMode
}

// Sorter sweeps directories on an FS. It runs one sweep at a time.
type Sorter struct {
	fs        types.FS
	opts      Options
	resolver  *destination.Resolver
	relocator *relocate.Relocator
}

// New creates a Sorter over fsys
func New(fsys types.FS, opts Options) *Sorter {
	if opts.MaxSuffix <= 0 {
		opts.MaxSuffix = destination.DefaultMaxSuffix
	}
	if opts.DirMode.Perm() == 0 {
		opts.DirMode = 0755
	}
	resolver := &destination.Resolver{FS: fsys, MaxSuffix: opts.MaxSuffix}
	return &Sorter{
		fs:        fsys,
		opts:      opts,
		resolver:  resolver,
		relocator: relocate.New(fsys, resolver, opts.Verify),
	}
}

// SortDirectory runs one sweep over root. The returned error is non-nil
// only when the sweep could not start; per-entry problems are in the report.
func (s *Sorter) SortDirectory(root string) (*types.SortReport, error) {
	report := &types.SortReport{
		SweepID:   uuid.NewString(),
		Root:      root,
		DryRun:    s.opts.DryRun,
		StartedAt: time.Now(),
	}

	logger := logging.GetLogger("sorter").With().
		Str("sweep", report.SweepID).
		Logger()
	done := logging.LogOperationStart(logger, "sweep")
	defer done()

	entries, err := s.readRoot(root)
	if err != nil {
		logger.Error().Err(err).Str("root", root).Msg("Cannot sort directory")
		return nil, err
	}

	logger.Info().
		Str("root", root).
		Int("entries", len(entries)).
		Bool("dryRun", s.opts.DryRun).
		Msg("Sorting directory")

	// Destinations handed out this sweep. A dry run writes nothing, so
	// planned paths are reserved here instead.
	claimed := make(map[string]bool)
	s.resolver.Taken = func(path string) bool { return claimed[path] }
	defer func() { s.resolver.Taken = nil }()

	ensured := make(map[string]bool)
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		if entry.IsDir() {
			report.DirectoriesSkipped++
			logger.Debug().Str("path", path).Msg("Skipping directory")
			continue
		}

		res := s.sortEntry(logger, report, ensured, root, path)
		if res.Destination != "" && res.Outcome != types.OutcomeFailed {
			claimed[res.Destination] = true
		}
		report.Add(res)
	}

	report.Duration = time.Since(report.StartedAt)
	logger.Info().
		Int("moved", report.Count(types.OutcomeMoved)).
		Int("planned", report.Count(types.OutcomePlanned)).
		Int("skipped", report.Count(types.OutcomeSkipped)).
		Int("failed", report.Count(types.OutcomeFailed)).
		Int("directories", report.DirectoriesSkipped).
		Dur("duration", report.Duration).
		Msg("Sweep complete")

	return report, nil
}

// readRoot validates the root and lists it in sweep order
func (s *Sorter) readRoot(root string) ([]fs.DirEntry, error) {
	info, err := s.fs.Stat(root)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrDirectoryNotFound, "directory not found: %s", root).
				WithDetail("root", root)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", root).
			WithDetail("root", root)
	}

	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", root)
	}
	orderEntries(entries)
	return entries, nil
}

// orderEntries sorts by canonical name, putting the entry whose name is
// already canonical ahead of its case variants so it keeps the plain name.
func orderEntries(entries []fs.DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Name(), entries[j].Name()
		ca, cb := classify.CanonicalName(a), classify.CanonicalName(b)
		if ca != cb {
			return ca < cb
		}
		return a == ca && b != cb
	})
}

// sortEntry takes one non-directory entry through validate, classify,
// ensure folder and relocate.
func (s *Sorter) sortEntry(logger zerolog.Logger, report *types.SortReport, ensured map[string]bool, root, path string) types.EntryResult {
	res := types.EntryResult{
		Name:   filepath.Base(path),
		Source: path,
	}

	entry, err := s.inspect(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Skipping invalid entry")
		res.Outcome = types.OutcomeSkipped
		res.Error = err
		return res
	}

	res.Size = entry.Size
	res.Category = classify.Classify(entry.Extension)
	folder := filepath.Join(root, res.Category.String())

	if s.opts.DryRun {
		dest, err := s.relocator.Plan(path, folder)
		if err != nil {
			return s.fail(logger, res, err)
		}
		res.Destination = dest
		res.Outcome = types.OutcomePlanned
		logger.Info().
			Str("source", path).
			Str("destination", dest).
			Str("category", res.Category.String()).
			Msg("Would move file")
		return res
	}

	if !ensured[folder] {
		created, err := s.ensureFolder(folder)
		if err != nil {
			return s.fail(logger, res, err)
		}
		ensured[folder] = true
		if created {
			report.FoldersCreated = append(report.FoldersCreated, folder)
			logger.Info().Str("folder", folder).Msg("Created folder")
		}
	}

	dest, err := s.relocator.Move(path, folder)
	res.Destination = dest
	if err != nil {
		return s.fail(logger, res, err)
	}

	res.Outcome = types.OutcomeMoved
	logger.Info().
		Str("source", path).
		Str("destination", dest).
		Str("category", res.Category.String()).
		Msg("Moved file")
	return res
}

// inspect confirms path is a regular file right now
func (s *Sorter) inspect(path string) (types.FileEntry, error) {
	info, err := s.fs.Lstat(path)
	if err != nil {
		return types.FileEntry{}, errors.Wrapf(err, errors.ErrInvalidEntry, "cannot stat %s", path)
	}
	if !info.Mode().IsRegular() {
		return types.FileEntry{}, errors.Newf(errors.ErrInvalidEntry, "%s is not a regular file", path).
			WithDetail("mode", info.Mode().String())
	}
	return types.FileEntry{
		Path:      path,
		Extension: classify.Extension(info.Name()),
		Size:      info.Size(),
	}, nil
}

// ensureFolder creates a single-level category folder. An existing
// directory is a no-op; anything else at that path, a symlink to a
// directory included, is an error.
func (s *Sorter) ensureFolder(folder string) (bool, error) {
	info, err := s.fs.Lstat(folder)
	if err == nil {
		if info.Mode()&fs.ModeSymlink != 0 {
			return false, errors.Newf(errors.ErrDirCreate, "%s is a symlink", folder).
				WithDetail("folder", folder)
		}
		if info.IsDir() {
			return false, nil
		}
		return false, errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", folder)
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot stat %s", folder)
	}

	if err := s.fs.Mkdir(folder, s.opts.DirMode.Perm()); err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", folder)
	}
	return true, nil
}

func (s *Sorter) fail(logger zerolog.Logger, res types.EntryResult, err error) types.EntryResult {
	logger.Error().Err(err).Str("path", res.Source).Msg("Could not move file")
	res.Outcome = types.OutcomeFailed
	res.Error = err
	return res
}
