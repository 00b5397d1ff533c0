package sortdl

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Sort a downloads folder into category subfolders"
	MsgCategoriesShort = "List the category folders and the extensions routed to them"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat   = "sortdl version %s\n"
	MsgCommitFormat    = "  commit: %s\n"
	MsgBuiltFormat     = "  built:  %s\n"
	MsgMissingDirOK    = "Target directory does not exist, nothing to sort"
	MsgLockReleaseFail = "Failed to release sweep lock"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrResolveDir   = "failed to resolve target directory: %w"
	MsgErrRenderOutput = "failed to render output: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v DEBUG, -vv TRACE)"
	MsgFlagDryRun   = "Show where files would go without moving anything"
	MsgFlagDir      = "Directory to sort (default $HOME/Downloads)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/sortdl/config.toml)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagDefaults = "Print the commented built-in defaults instead, as a config.toml template"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
