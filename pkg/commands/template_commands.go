package commands

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kcaldas/termblog/pkg/vfs"
)

var argumentsPattern = regexp.MustCompile(`\$ARGUMENTS`)

const maxTemplateDescription = 60

// ExpandArguments fills $ARGUMENTS placeholders. Every placeholder but the
// last takes one argument; the last takes all remaining ones.
func ExpandArguments(template string, args []string) string {
	matches := argumentsPattern.FindAllStringIndex(template, -1)
	if len(matches) == 0 {
		return template
	}

	var sb strings.Builder
	last, next := 0, 0
	for i, match := range matches {
		sb.WriteString(template[last:match[0]])
		if i == len(matches)-1 {
			sb.WriteString(strings.Join(args[min(next, len(args)):], " "))
		} else if next < len(args) {
			sb.WriteString(args[next])
			next++
		}
		last = match[1]
	}
	sb.WriteString(template[last:])
	return sb.String()
}

// TemplateCommand prints a text file with $ARGUMENTS filled in. Markdown
// templates go through the renderer when one is set.
type TemplateCommand struct {
	BaseCommand
	template string
	markdown bool
	renderer vfs.Renderer
}

func NewTemplateCommand(name, template string, markdown bool, renderer vfs.Renderer) *TemplateCommand {
	usage := name
	if argumentsPattern.MatchString(template) {
		usage += " [args...]"
	}

	return &TemplateCommand{
		BaseCommand: BaseCommand{
			Name:        name,
			Description: describeTemplate(template),
			Usage:       usage,
		},
		template: template,
		markdown: markdown,
		renderer: renderer,
	}
}

func (c *TemplateCommand) Execute(_ context.Context, args []string, _ Env) *Result {
	text := ExpandArguments(c.template, args)
	if !c.markdown || c.renderer == nil {
		return Text(text)
	}

	rendered, err := c.renderer.Render(text)
	if err != nil {
		return Error(fmt.Sprintf("%s: %v", c.Name, err))
	}
	return HTML(rendered)
}

// describeTemplate uses the first non-blank line, without markdown heading
// marks, as the help text.
func describeTemplate(template string) string {
	for _, line := range strings.Split(template, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "# "))
		if line == "" {
			continue
		}
		if len(line) > maxTemplateDescription {
			line = line[:maxTemplateDescription] + "..."
		}
		return line
	}
	return ""
}

// DiscoverTemplateCommands loads every .md and .txt file under dir as a
// command named after its path, subdirectories joined with ":". A missing
// dir has no commands.
func DiscoverTemplateCommands(dir string, renderer vfs.Renderer) ([]Command, error) {
	var cmds []Command
	err := filepath.WalkDir(dir, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := filepath.Ext(d.Name())
		if d.IsDir() || (ext != ".md" && ext != ".txt") {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		name := strings.ReplaceAll(strings.TrimSuffix(rel, ext), string(filepath.Separator), ":")

		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read command file %s: %w", p, err)
		}
		cmds = append(cmds, NewTemplateCommand(name, strings.TrimSpace(string(data)), ext == ".md", renderer))
		return nil
	})
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return nil, fmt.Errorf("error walking path %s: %w", dir, err)
	}
	return cmds, nil
}
