package shell

import (
	"strings"

	"github.com/kcaldas/termblog/pkg/commands"
	"github.com/kcaldas/termblog/pkg/output"
)

// ExecuteCommand echoes line at the prompt and runs it. An empty line only
// echoes the prompt. Unknown commands print a not-found line and are not
// recorded in history.
func (s *Shell) ExecuteCommand(line string) {
	line = strings.TrimSpace(line)
	s.echo(line)

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	name, args := fields[0], fields[1:]
	cmd, ok := s.cmds.Get(name)
	if !ok {
		s.logger.Debug("command not found", "command", name)
		s.apply(s.nextGeneration(), name, commands.NotFound(name))
		return
	}

	s.history.Push(line)
	gen := s.nextGeneration()
	s.logger.Debug("executing command", "command", name, "args", args, "generation", gen)

	if !s.async {
		s.apply(gen, name, cmd.Execute(s.ctx, args, s))
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		res := cmd.Execute(s.ctx, args, s)
		s.post(func() { s.apply(gen, name, res) })
	}()
}

func (s *Shell) echo(line string) {
	content := s.prefix
	if line != "" {
		content += " " + line
	}
	s.output.Add(output.Item{
		Content: content,
		Kind:    output.KindText,
		Style:   &output.Style{Foreground: s.styles.Theme.Command, Bold: true},
	})
}

func (s *Shell) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// accept reports whether the result of generation gen may still be shown.
// Results issued before the last clear, or older than a result already shown,
// are stale.
func (s *Shell) accept(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.barrier || gen < s.applied {
		return false
	}
	s.applied = gen
	return true
}

// apply shows a command result. It runs on the UI goroutine.
func (s *Shell) apply(gen uint64, name string, res *commands.Result) {
	if !s.accept(gen) {
		if res != nil {
			s.logger.Debug("dropping stale result", "command", name, "generation", gen)
		}
		return
	}
	if res == nil {
		return
	}

	s.setLastOutput(res.Content)

	if s.executor.Route(name, res, s.session) {
		if !s.pager.Active() {
			s.session.ExitRawMode()
		}
		return
	}

	item := output.Item{Content: res.Content, Kind: output.KindText}
	switch res.Type {
	case commands.TypeHTML:
		item.Kind = output.KindHTML
	case commands.TypeRaw:
		if res.Meta != nil && res.Meta.ContentType == "markdown" {
			item.Kind = output.KindHTML
		}
	case commands.TypeError:
		item.Style = &output.Style{Foreground: s.styles.Theme.Error}
	}
	s.output.Add(item)
}

func (s *Shell) setLastOutput(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOutput = content
	s.hasOutput = content != ""
}

// Clear drops every result still in flight, then empties the scrollback and
// closes the pager on the UI goroutine.
func (s *Shell) Clear() {
	s.mu.Lock()
	s.barrier = s.generation
	s.lastOutput, s.hasOutput = "", false
	s.mu.Unlock()

	s.post(s.clearScreen)
}

func (s *Shell) clearScreen() {
	if s.pager.Active() {
		s.pager.Dispose()
		s.pagingStopped()
	}
	s.output.Clear()
	s.emitPrompt()
}
