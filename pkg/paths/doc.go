// Package paths provides centralized path handling for sortdl.
//
// It resolves the directory a sweep runs against and the XDG locations
// sortdl writes its own files to:
//
//   - Target: $HOME/Downloads, falling back to $USERPROFILE/Downloads
//   - Config: $XDG_CONFIG_HOME/sortdl/config.toml
//   - State:  $XDG_STATE_HOME/sortdl (log file, sweep locks)
//
// # Environment Variables
//
//   - SORTDL_CONFIG_DIR: Override the config directory
//   - SORTDL_STATE_DIR: Override the state directory
//
// # Usage
//
//	p := paths.New()
//	target, err := paths.DefaultTarget()   // /home/user/Downloads
//	logFile := p.LogFilePath()             // ~/.local/state/sortdl/sortdl.log
package paths
