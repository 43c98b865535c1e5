package shell

import (
	"github.com/kcaldas/termblog/pkg/commands"
	"github.com/kcaldas/termblog/pkg/vfs"
)

func (s *Shell) FileSystem() *vfs.FileSystem   { return s.fs }
func (s *Shell) History() []string             { return s.history.Entries() }
func (s *Shell) Commands() []commands.Command  { return s.cmds.All() }
func (s *Shell) Clipboard() commands.Clipboard { return s.clipboard }

func (s *Shell) CurrentDirectory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cwd
}

func (s *Shell) PreviousDirectory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prevDir
}

// ChangeDirectory moves to dir and remembers the directory it left for
// "cd -". The prompt refresh is posted to the UI goroutine.
func (s *Shell) ChangeDirectory(dir string) {
	s.mu.Lock()
	if dir == s.cwd {
		s.mu.Unlock()
		return
	}
	s.prevDir, s.cwd = s.cwd, dir
	s.mu.Unlock()

	s.logger.Debug("directory changed", "cwd", dir)
	s.post(s.emitPrompt)
}

// LastOutput is the content of the newest shown result. Prompt echoes do not
// count.
func (s *Shell) LastOutput() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOutput, s.hasOutput
}
