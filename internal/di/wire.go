//go:build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/kcaldas/termblog/pkg/config"
	"github.com/kcaldas/termblog/pkg/shell"
	"github.com/kcaldas/termblog/pkg/vfs"
)

// InitializeShell builds a shell over the configured content directory.
func InitializeShell(cfg config.TerminalConfig, host Host) (*shell.Shell, error) {
	wire.Build(ShellSet)
	return nil, nil
}

// InitializeFileSystem builds only the content tree.
func InitializeFileSystem(cfg config.TerminalConfig) (*vfs.FileSystem, error) {
	wire.Build(FileSystemSet)
	return nil, nil
}
