package cli

import (
	"fmt"
	"io"

	"github.com/kcaldas/termblog/internal/di"
	"github.com/kcaldas/termblog/pkg/config"
	"github.com/kcaldas/termblog/pkg/events"
	"github.com/kcaldas/termblog/pkg/output"
	"github.com/kcaldas/termblog/pkg/theme"
	"github.com/spf13/cobra"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [commands...]",
		Short: "Run shell commands and print their output",
		Long: `Run each argument as one shell command line, in order, and print the
output. With no arguments the command lines are read from stdin.`,
		Example: `  termblog run ls "cd posts" "cat hello.md"
  printf 'ls\ncat about.txt\n' | termblog run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				var err error
				if lines, err = readStdinLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			return runScript(cmd.OutOrStdout(), opts.config, lines)
		},
	}
}

// runScript runs lines through a headless shell. Paged results have no
// pager to open, so they land in the output like everything else.
func runScript(w io.Writer, cfg config.TerminalConfig, lines []string) error {
	sh, err := di.InitializeShell(cfg, di.Host{})
	if err != nil {
		return err
	}
	defer sh.Close()

	p := &printer{w: w, formatter: theme.NewFormatter(sh.Styles()), lastID: -1}
	unsubscribe := events.Subscribe(sh.Bus(), output.Changed, p.print)
	defer unsubscribe()

	for _, line := range lines {
		sh.ExecuteCommand(line)
		sh.Wait()
	}
	return p.err
}

// printer writes each output item once. Item ids only grow, clears included,
// so the newest printed id is all it has to remember.
type printer struct {
	w         io.Writer
	formatter *theme.Formatter
	lastID    int
	err       error
}

func (p *printer) print(items []output.Item) {
	for _, item := range items {
		if item.ID <= p.lastID {
			continue
		}
		p.lastID = item.ID
		if _, err := fmt.Fprintln(p.w, p.formatter.Format(item)); err != nil && p.err == nil {
			p.err = fmt.Errorf("failed to write output: %w", err)
		}
	}
}
