package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sortdl/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvUserProfile is the Windows home directory variable
	EnvUserProfile = "USERPROFILE"

	// EnvConfigDir overrides the XDG config directory for sortdl
	EnvConfigDir = "SORTDL_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for sortdl
	EnvStateDir = "SORTDL_STATE_DIR"
)

// Fixed names. These are not user-configurable.
const (
	// AppDirName is the directory name for sortdl-specific files
	AppDirName = "sortdl"

	// DownloadsDirName is appended to the home directory
	DownloadsDirName = "Downloads"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "sortdl.log"

	// LocksDirName is the subdirectory of the state dir holding sweep locks
	LocksDirName = "locks"
)

// Paths holds the resolved XDG locations
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves config and state directories, honouring the SORTDL_*
// overrides before the XDG defaults.
func New() *Paths {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// ConfigDir returns the sortdl config directory
func (p *Paths) ConfigDir() string { return p.configDir }

// StateDir returns the sortdl state directory
func (p *Paths) StateDir() string { return p.stateDir }

// ConfigFilePath returns the default user config file
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// LogFilePath returns the log file path
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// LocksDir returns the directory holding per-target sweep locks
func (p *Paths) LocksDir() string {
	return filepath.Join(p.stateDir, LocksDirName)
}

// DefaultTarget returns $HOME/Downloads, or $USERPROFILE/Downloads when
// HOME is unset. Neither set is a setup error.
func DefaultTarget() (string, error) {
	return DefaultTargetFrom(os.Getenv)
}

// DefaultTargetFrom is DefaultTarget with an injectable environment lookup
func DefaultTargetFrom(getenv func(string) string) (string, error) {
	home := getenv(EnvHome)
	if home == "" {
		home = getenv(EnvUserProfile)
	}
	if home == "" {
		return "", errors.Newf(errors.ErrSetup,
			"cannot determine home directory: %s and %s are both unset", EnvHome, EnvUserProfile)
	}
	return filepath.Join(home, DownloadsDirName), nil
}

// NormalizeTarget expands ~ and makes the target absolute
func NormalizeTarget(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrSetup, "failed to get absolute path for %s", path)
	}
	return abs, nil
}

// ExpandHome expands a leading ~ to the user's home directory.
// Paths it cannot expand are returned as-is.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not supported
	return path
}
