package commands

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/kcaldas/termblog/pkg/vfs"
)

type LsCommand struct {
	BaseCommand
}

func NewLsCommand() *LsCommand {
	return &LsCommand{BaseCommand{
		Name:        "ls",
		Description: "List files and directories",
		Usage:       "ls [directory]",
	}}
}

func (c *LsCommand) Execute(_ context.Context, args []string, env Env) *Result {
	fs := env.FileSystem()
	dir := env.CurrentDirectory()
	if len(args) > 0 {
		dir = vfs.AbsolutePath(fs, dir, args[0])
	}

	if !fs.IsValidPath(dir) {
		return Error(fmt.Sprintf("ls: %s: No such file or directory", displayArg(args, dir)))
	}
	if !fs.IsDirectory(dir) {
		return Text(path.Base(dir))
	}

	var names []string
	for _, child := range fs.Children(dir) {
		name := child.Name
		if child.IsDirectory() {
			name += "/"
		}
		names = append(names, name)
	}
	return Text(strings.Join(names, "  "))
}

type CdCommand struct {
	BaseCommand
}

func NewCdCommand() *CdCommand {
	return &CdCommand{BaseCommand{
		Name:        "cd",
		Description: "Change directory",
		Usage:       "cd [directory | .. | . | -]",
	}}
}

func (c *CdCommand) Execute(_ context.Context, args []string, env Env) *Result {
	target := "/"
	if len(args) > 0 {
		target = args[len(args)-1]
	}

	cwd := env.CurrentDirectory()
	switch target {
	case ".":
		return nil
	case "..":
		env.ChangeDirectory(path.Dir(cwd))
		return nil
	case "-":
		prev := env.PreviousDirectory()
		if prev == "" {
			return Error("cd: no previous directory")
		}
		env.ChangeDirectory(prev)
		return nil
	}

	fs := env.FileSystem()
	dir := vfs.AbsolutePath(fs, cwd, target)
	if !fs.IsValidPath(dir) {
		return Error(fmt.Sprintf("cd: %s: No such file or directory", target))
	}
	if !fs.IsDirectory(dir) {
		return Error(fmt.Sprintf("cd: %s: Not a directory", target))
	}

	env.ChangeDirectory(dir)
	return nil
}

type CatCommand struct {
	BaseCommand
}

func NewCatCommand() *CatCommand {
	return &CatCommand{BaseCommand{
		Name:        "cat",
		Description: "Display file contents",
		Usage:       "cat <file>",
	}}
}

// Execute returns the file's rendered content as a raw result. Rendered
// markdown is tagged so the session shows it as pre-rendered markup.
func (c *CatCommand) Execute(_ context.Context, args []string, env Env) *Result {
	if len(args) == 0 {
		return Error("cat: missing file operand")
	}

	name := args[0]
	fs := env.FileSystem()
	p := vfs.AbsolutePath(fs, env.CurrentDirectory(), name)

	node, ok := fs.Node(p)
	if !ok {
		return Error(fmt.Sprintf("cat: %s: No such file or directory", name))
	}
	if !node.IsFile() {
		return Error(fmt.Sprintf("cat: %s: Is a directory", name))
	}

	contentType := "text"
	if node.Rendered.Kind == vfs.KindHTML {
		contentType = "markdown"
	}

	title := node.Meta.Title
	if title == "" {
		title = node.Name
	}
	return Raw(node.Rendered.Content, Meta{
		RequiresPaging: true,
		ContentType:    contentType,
		Title:          title,
	})
}

type PwdCommand struct {
	BaseCommand
}

func NewPwdCommand() *PwdCommand {
	return &PwdCommand{BaseCommand{
		Name:        "pwd",
		Description: "Print working directory",
		Usage:       "pwd",
	}}
}

func (c *PwdCommand) Execute(_ context.Context, _ []string, env Env) *Result {
	return Text(env.CurrentDirectory())
}

func displayArg(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}
