package cli

import (
	"fmt"

	"github.com/kcaldas/termblog/pkg/config"
	"github.com/kcaldas/termblog/pkg/logging"
	"github.com/kcaldas/termblog/pkg/version"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// rootOptions holds the global flags and the configuration they resolve to.
type rootOptions struct {
	contentDir string
	theme      string
	verbose    bool
	quiet      bool

	config config.TerminalConfig
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCommand()

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "termblog",
		Short: "Browse a blog from a terminal",
		Long: `termblog serves a directory of posts as a small shell: move around with
cd and ls, read posts with cat, and page through long ones.

With no subcommand it starts the full-screen terminal. When stdin is not a
terminal, each input line is run as a command and the output is printed.`,
		Version:      version.GetVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if hasStdinInput() {
				lines, err := readStdinLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				return runScript(cmd.OutOrStdout(), opts.config, lines)
			}
			return runTUI(opts.config)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.contentDir, "content", "", "directory of posts to serve (default $"+config.KeyContentDir+" or ./content)")
	cmd.PersistentFlags().StringVar(&opts.theme, "theme", "", "color theme (default, mono, dracula, nord)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug level)")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "quiet output (errors only)")

	cmd.AddCommand(
		newRunCommand(opts),
		newTreeCommand(opts),
	)
	return cmd
}

// load configures logging and resolves the terminal configuration from
// .env, the environment and the flags, in increasing priority.
func (o *rootOptions) load() error {
	var logger logging.Logger
	if o.quiet {
		logger = logging.NewQuietLogger()
	} else if o.verbose {
		logger = logging.NewVerboseLogger()
	} else {
		logger = logging.NewDefaultLogger()
	}
	logging.SetGlobalLogger(logger)

	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	o.config = config.NewConfigManager().GetTerminalConfig()
	if o.contentDir != "" {
		dir, err := homedir.Expand(o.contentDir)
		if err != nil {
			return fmt.Errorf("invalid content directory: %w", err)
		}
		o.config.ContentDir = dir
	}
	if o.theme != "" {
		o.config.Theme = o.theme
	}
	return nil
}
