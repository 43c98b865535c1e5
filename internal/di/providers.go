package di

import (
	"fmt"

	"github.com/google/wire"
	"github.com/kcaldas/termblog/pkg/commands"
	"github.com/kcaldas/termblog/pkg/config"
	"github.com/kcaldas/termblog/pkg/events"
	"github.com/kcaldas/termblog/pkg/logging"
	"github.com/kcaldas/termblog/pkg/pager"
	"github.com/kcaldas/termblog/pkg/shell"
	"github.com/kcaldas/termblog/pkg/theme"
	"github.com/kcaldas/termblog/pkg/vfs"
)

// Host is what the front end lends the shell: its UI thread, clipboard and
// scroll animation. Zero values are valid for headless use.
type Host struct {
	Post      func(fn func())
	Clipboard commands.Clipboard
	Animator  pager.Animator
}

func ProvideRenderer(cfg config.TerminalConfig) (vfs.Renderer, error) {
	return vfs.NewGlamourRenderer(cfg.GlamourStyle, cfg.WrapWidth)
}

// ProvideFileSystem builds the tree the shell browses from the content
// directory.
func ProvideFileSystem(cfg config.TerminalConfig, renderer vfs.Renderer) (*vfs.FileSystem, error) {
	fs, err := vfs.NewBuilder(renderer).BuildDir(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return fs, nil
}

func ProvideStyles(cfg config.TerminalConfig) *theme.Styles {
	return theme.NewStyles(theme.GetTheme(cfg.Theme), nil)
}

// ProvideRegistry registers the builtins, then the user's template commands.
// A template never replaces a builtin.
func ProvideRegistry(cfg config.TerminalConfig, renderer vfs.Renderer) (*commands.Registry, error) {
	registry := commands.NewRegistry(commands.Builtins()...)

	templates, err := commands.DiscoverTemplateCommands(cfg.CommandsDir, renderer)
	if err != nil {
		return nil, err
	}

	logger := logging.NewComponentLogger("di")
	for _, cmd := range templates {
		if registry.Has(cmd.GetName()) {
			logger.Warn("template command shadows a builtin, skipping", "command", cmd.GetName())
			continue
		}
		registry.Register(cmd)
	}
	return registry, nil
}

func ProvidePolicies() *commands.PolicyProvider {
	return commands.NewPolicyProvider()
}

func ProvideEventBus() *events.Bus {
	return events.NewBus()
}

func ProvideShellOptions(
	cfg config.TerminalConfig,
	fs *vfs.FileSystem,
	registry *commands.Registry,
	policies *commands.PolicyProvider,
	styles *theme.Styles,
	bus *events.Bus,
	host Host,
) shell.Options {
	return shell.Options{
		FileSystem:      fs,
		Commands:        registry,
		Policies:        policies,
		Styles:          styles,
		Bus:             bus,
		Clipboard:       host.Clipboard,
		HistoryCapacity: cfg.HistoryCapacity,
		FileCommands:    cfg.FileCommands,
		PromptPrefix:    cfg.PromptPrefix,
		DateFormat:      cfg.DateFormat,
		ScrollRatio:     cfg.ScrollRatio,
		Async:           cfg.AsyncCommands,
		Post:            host.Post,
		Animator:        host.Animator,
	}
}

var FileSystemSet = wire.NewSet(
	ProvideRenderer,
	ProvideFileSystem,
)

var ShellSet = wire.NewSet(
	FileSystemSet,
	ProvideStyles,
	ProvideRegistry,
	ProvidePolicies,
	ProvideEventBus,
	ProvideShellOptions,
	shell.New,
)
