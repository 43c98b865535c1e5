package commands

import (
	"context"

	"github.com/kcaldas/termblog/pkg/vfs"
)

// Command is a shell command. Execute returns nil when it has nothing to show.
type Command interface {
	GetName() string
	GetDescription() string
	GetUsage() string
	Execute(ctx context.Context, args []string, env Env) *Result
}

// BaseCommand carries command metadata.
type BaseCommand struct {
	Name        string
	Description string
	Usage       string
}

func (c *BaseCommand) GetName() string        { return c.Name }
func (c *BaseCommand) GetDescription() string { return c.Description }
func (c *BaseCommand) GetUsage() string       { return c.Usage }

// Env is what a running command may see and change in the shell.
type Env interface {
	FileSystem() *vfs.FileSystem
	CurrentDirectory() string
	// ChangeDirectory moves to an existing directory and remembers the old one.
	ChangeDirectory(dir string)
	// PreviousDirectory is the last directory left by cd, or "".
	PreviousDirectory() string
	History() []string
	Commands() []Command
	Clear()
	// LastOutput is the newest visible command result.
	LastOutput() (string, bool)
	Clipboard() Clipboard
}

// Clipboard is the system clipboard.
type Clipboard interface {
	Copy(text string) error
	IsAvailable() bool
}
