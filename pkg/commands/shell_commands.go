package commands

import (
	"context"
	"fmt"
	"strings"
)

type ClearCommand struct {
	BaseCommand
}

func NewClearCommand() *ClearCommand {
	return &ClearCommand{BaseCommand{
		Name:        "clear",
		Description: "Clear the terminal screen",
		Usage:       "clear",
	}}
}

func (c *ClearCommand) Execute(_ context.Context, _ []string, env Env) *Result {
	env.Clear()
	return nil
}

type HistoryCommand struct {
	BaseCommand
}

func NewHistoryCommand() *HistoryCommand {
	return &HistoryCommand{BaseCommand{
		Name:        "history",
		Description: "Display command history",
		Usage:       "history",
	}}
}

func (c *HistoryCommand) Execute(_ context.Context, _ []string, env Env) *Result {
	entries := env.History()
	if len(entries) == 0 {
		return Error("history: no commands yet")
	}

	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("%4d  %s", i+1, entry)
	}
	return Text(strings.Join(lines, "\n"))
}

// KeyHelp is one line of the key binding reference shown by help.
type KeyHelp struct {
	Keys        string
	Description string
}

var DefaultKeyHelp = []KeyHelp{
	{Keys: "Tab", Description: "complete command or file name"},
	{Keys: "Up / Down", Description: "browse history"},
	{Keys: "Ctrl-A / Ctrl-E", Description: "start / end of line"},
	{Keys: "Ctrl-W", Description: "delete word before cursor"},
	{Keys: "Ctrl-U", Description: "discard line"},
	{Keys: "Ctrl-K", Description: "delete to end of line"},
	{Keys: "Ctrl-L", Description: "clear screen"},
	{Keys: "Ctrl-C", Description: "abandon line"},
	{Keys: "j / k, g / G, q", Description: "pager: down / up, top / bottom, quit"},
}

type HelpCommand struct {
	BaseCommand
	keys []KeyHelp
}

func NewHelpCommand(keys []KeyHelp) *HelpCommand {
	return &HelpCommand{
		BaseCommand: BaseCommand{
			Name:        "help",
			Description: "Show commands and key bindings",
			Usage:       "help",
		},
		keys: keys,
	}
}

func (c *HelpCommand) Execute(_ context.Context, _ []string, env Env) *Result {
	var sb strings.Builder
	sb.WriteString("Commands:\n")

	width := 0
	cmds := env.Commands()
	for _, cmd := range cmds {
		width = max(width, len(cmd.GetUsage()))
	}
	for _, cmd := range cmds {
		fmt.Fprintf(&sb, "  %-*s  %s\n", width, cmd.GetUsage(), cmd.GetDescription())
	}

	if len(c.keys) > 0 {
		sb.WriteString("\nKeys:\n")
		width = 0
		for _, k := range c.keys {
			width = max(width, len(k.Keys))
		}
		for _, k := range c.keys {
			fmt.Fprintf(&sb, "  %-*s  %s\n", width, k.Keys, k.Description)
		}
	}

	return Text(strings.TrimRight(sb.String(), "\n"))
}

type YankCommand struct {
	BaseCommand
}

func NewYankCommand() *YankCommand {
	return &YankCommand{BaseCommand{
		Name:        "yank",
		Description: "Copy the last output to the clipboard",
		Usage:       "yank",
	}}
}

func (c *YankCommand) Execute(_ context.Context, _ []string, env Env) *Result {
	clip := env.Clipboard()
	if clip == nil || !clip.IsAvailable() {
		return Error("yank: clipboard not available")
	}

	text, ok := env.LastOutput()
	if !ok {
		return Error("yank: nothing to copy")
	}

	if err := clip.Copy(text); err != nil {
		return Error(fmt.Sprintf("yank: %v", err))
	}

	lines := strings.Count(text, "\n") + 1
	if lines == 1 {
		return Text("Copied 1 line to clipboard")
	}
	return Text(fmt.Sprintf("Copied %d lines to clipboard", lines))
}

// AliasCommand runs another command under a second name.
type AliasCommand struct {
	BaseCommand
	target Command
}

func NewAliasCommand(name string, target Command) *AliasCommand {
	return &AliasCommand{
		BaseCommand: BaseCommand{
			Name:        name,
			Description: "Same as " + target.GetName(),
			Usage:       name,
		},
		target: target,
	}
}

func (c *AliasCommand) Target() Command {
	return c.target
}

func (c *AliasCommand) Execute(ctx context.Context, args []string, env Env) *Result {
	return c.target.Execute(ctx, args, env)
}

// Builtins returns the default command set in display order.
func Builtins() []Command {
	help := NewHelpCommand(DefaultKeyHelp)
	return []Command{
		NewLsCommand(),
		NewCdCommand(),
		NewCatCommand(),
		NewPwdCommand(),
		NewClearCommand(),
		NewHistoryCommand(),
		help,
		NewAliasCommand("/?", help),
		NewYankCommand(),
	}
}
