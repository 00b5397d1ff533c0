package sortdl

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/sortdl/internal/version"
	"github.com/arthur-debert/sortdl/pkg/config"
	"github.com/arthur-debert/sortdl/pkg/filesystem"
	"github.com/arthur-debert/sortdl/pkg/logging"
	"github.com/arthur-debert/sortdl/pkg/paths"
	"github.com/arthur-debert/sortdl/pkg/types"
	"github.com/arthur-debert/sortdl/pkg/ui"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app is the state shared by the commands of one invocation
type app struct {
	fs    types.FS
	paths *paths.Paths
	cfg   *config.Config

	verbosity  int
	configFile string
	format     string
	dir        string
	dryRun     bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.NewOS())
}

func newRootCmd(fsys types.FS) *cobra.Command {
	initTemplateFormatting()

	a := &app{fs: fsys}

	rootCmd := &cobra.Command{
		Use:     "sortdl",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSweep(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)

	// Sweep flags
	rootCmd.Flags().StringVarP(&a.dir, "dir", "d", "", MsgFlagDir)
	rootCmd.Flags().BoolVarP(&a.dryRun, "dry-run", "n", false, MsgFlagDryRun)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCategoriesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads configuration and configures logging. Flags that were set
// explicitly override every other source.
func (a *app) setup(cmd *cobra.Command) error {
	a.paths = paths.New()

	overrides := make(map[string]interface{})
	if cmd.Flags().Changed("dir") {
		overrides["sweep.target"] = a.dir
	}
	if cmd.Flags().Changed("dry-run") {
		overrides["sweep.dry_run"] = a.dryRun
	}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = a.format
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile:        a.configFile,
		DefaultConfigFile: a.paths.ConfigFilePath(),
		Overrides:         overrides,
	})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg

	logFile := ""
	if cfg.Logging.File {
		logFile = a.paths.LogFilePath()
	}
	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: a.verbosity,
		Out:       cmd.ErrOrStderr(),
		LogFile:   logFile,
		NoColor:   !isStderrTerminal(cmd.ErrOrStderr()),
	})
	return nil
}

// renderer builds the output renderer for w from the configured format
func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

func isStderrTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
