package cli

import (
	"os"

	"github.com/kcaldas/termblog/pkg/version"
)

// Execute runs the CLI with all commands
func Execute() {
	RootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")
	if err := RootCmd.Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(1)
	}
}
