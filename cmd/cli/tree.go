package cli

import (
	"fmt"

	"github.com/kcaldas/termblog/internal/di"
	"github.com/kcaldas/termblog/pkg/vfs"
	"github.com/spf13/cobra"
)

func newTreeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the content tree the shell would serve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := di.InitializeFileSystem(opts.config)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), vfs.Tree(fs))
			return nil
		},
	}
}
