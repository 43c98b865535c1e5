package completion

import (
	"strings"

	"github.com/kcaldas/termblog/pkg/vfs"
)

// DefaultFileCommands are the commands whose arguments complete to paths.
var DefaultFileCommands = []string{"ls", "cd", "cat"}

// Suggester produces candidates for one kind of cursor context.
type Suggester interface {
	// ShouldSuggest reports whether this suggester owns the context.
	ShouldSuggest(ctx Context) bool
	// Suggest returns prefix-filtered candidates, or nil.
	Suggest(ctx Context) []string
}

// Provider asks its suggesters in registration order; the first one that
// claims the context answers.
type Provider struct {
	suggesters []Suggester
}

func NewProvider(suggesters ...Suggester) *Provider {
	return &Provider{suggesters: suggesters}
}

// RegisterSuggester adds a suggester after the existing ones.
func (p *Provider) RegisterSuggester(s Suggester) {
	p.suggesters = append(p.suggesters, s)
}

// Complete returns the candidates for line at cursor.
func (p *Provider) Complete(line string, cursor int) []string {
	ctx, ok := ContextAt(line, cursor)
	if !ok {
		return nil
	}

	for _, s := range p.suggesters {
		if s.ShouldSuggest(ctx) {
			return s.Suggest(ctx)
		}
	}
	return nil
}

// Complete is the stateless form: command names complete in command
// position, working-directory entries complete for file commands.
func Complete(line string, cursor int, cwd string, fs *vfs.FileSystem, commandNames, fileCommands []string) []string {
	names := func() []string { return commandNames }
	dir := func() string { return cwd }
	return NewProvider(
		NewCommandSuggester(names),
		NewFileSuggester(fs, dir, fileCommands),
	).Complete(line, cursor)
}

// CommandSuggester completes registered command names.
type CommandSuggester struct {
	names func() []string
}

// NewCommandSuggester takes a function so newly registered commands show up.
func NewCommandSuggester(names func() []string) *CommandSuggester {
	return &CommandSuggester{names: names}
}

func (s *CommandSuggester) ShouldSuggest(ctx Context) bool {
	return ctx.InCommandPosition()
}

func (s *CommandSuggester) Suggest(ctx Context) []string {
	return filterPrefix(s.names(), ctx.CurrentWord)
}

// FileSuggester completes entries of the working directory for commands on
// its allow-list.
type FileSuggester struct {
	fs       *vfs.FileSystem
	cwd      func() string
	commands map[string]bool
}

// NewFileSuggester builds a file suggester; a nil command list means
// DefaultFileCommands.
func NewFileSuggester(fs *vfs.FileSystem, cwd func() string, commands []string) *FileSuggester {
	if commands == nil {
		commands = DefaultFileCommands
	}
	allowed := make(map[string]bool, len(commands))
	for _, c := range commands {
		allowed[c] = true
	}
	return &FileSuggester{fs: fs, cwd: cwd, commands: allowed}
}

func (s *FileSuggester) ShouldSuggest(ctx Context) bool {
	return !ctx.InCommandPosition() && s.commands[ctx.CommandToken]
}

func (s *FileSuggester) Suggest(ctx Context) []string {
	if s.fs == nil {
		return nil
	}

	var entries []string
	for _, child := range s.fs.Children(s.cwd()) {
		name := child.Name
		if child.IsDirectory() {
			name += "/"
		}
		entries = append(entries, name)
	}
	return filterPrefix(entries, ctx.CurrentWord)
}

func filterPrefix(candidates []string, prefix string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
