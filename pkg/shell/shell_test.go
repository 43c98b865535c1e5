package shell

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kcaldas/termblog/pkg/commands"
	"github.com/kcaldas/termblog/pkg/events"
	"github.com/kcaldas/termblog/pkg/keys"
	"github.com/kcaldas/termblog/pkg/output"
	"github.com/kcaldas/termblog/pkg/pager"
	"github.com/kcaldas/termblog/pkg/session"
	"github.com/kcaldas/termblog/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func longPost() string {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(lines, "\n")
}

func testFS() *vfs.FileSystem {
	fs := vfs.New("blog")
	fs.AddDirectory("/posts")
	fs.AddFile("/posts/hello.md", "# Hello", vfs.Rendered{Kind: vfs.KindHTML, Content: longPost()})
	fs.AddFile("/about.txt", "about", vfs.Rendered{Kind: vfs.KindText, Content: "about"})
	return fs
}

func newTestShell(t *testing.T, opts Options) *Shell {
	t.Helper()
	if opts.FileSystem == nil {
		opts.FileSystem = testFS()
	}
	opts.Now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }
	s := New(opts)
	t.Cleanup(s.Close)
	return s
}

func contents(items []output.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Content
	}
	return out
}

type fakeSurface struct {
	mu       sync.Mutex
	content  string
	height   int
	viewport int
	rows     []int
}

func (f *fakeSurface) ContentHeight() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.height
}

func (f *fakeSurface) ScrollTo(row int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, row)
}

func (f *fakeSurface) SetContent(content string, _ pager.ContentType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = content
	f.height = strings.Count(content, "\n") + 1
}

func (f *fakeSurface) ViewportHeight() int { return f.viewport }

type stubCommand struct {
	commands.BaseCommand
	run func(args []string, env commands.Env) *commands.Result
}

func (c *stubCommand) Execute(_ context.Context, args []string, env commands.Env) *commands.Result {
	if c.run == nil {
		return nil
	}
	return c.run(args, env)
}

func stub(name string, run func([]string, commands.Env) *commands.Result) *stubCommand {
	return &stubCommand{BaseCommand: commands.BaseCommand{Name: name}, run: run}
}

func TestShell_BrowseScenario(t *testing.T) {
	t.Run("paged with a surface", func(t *testing.T) {
		s := newTestShell(t, Options{})
		surface := &fakeSurface{viewport: 20}
		s.AttachSurface(surface)

		var enabled []Paging
		var disabled int
		var modes []session.ModeChange
		events.Subscribe(s.Bus(), PagingEnabled, func(p Paging) { enabled = append(enabled, p) })
		events.Subscribe(s.Bus(), PagingDisabled, func(struct{}) { disabled++ })
		events.Subscribe(s.Bus(), session.ModeChanged, func(c session.ModeChange) { modes = append(modes, c) })

		s.ExecuteCommand("cd posts")
		s.ExecuteCommand("cat hello.md")

		assert.Equal(t, "/posts", s.CurrentDirectory())
		assert.Equal(t, []string{"> cd posts", "> cat hello.md"}, contents(s.Output().Items()))
		assert.True(t, s.Session().IsRaw())
		require.Len(t, enabled, 1)
		assert.Equal(t, pager.Markdown, enabled[0].ContentType)
		assert.Equal(t, "hello.md", enabled[0].Title)
		assert.Equal(t, longPost(), surface.content)

		assert.True(t, s.HandleKey(keys.Event{Key: "j"}))
		assert.Equal(t, 16, s.Pager().State().CurrentPosition)

		assert.True(t, s.HandleKey(keys.Event{Key: "q"}))
		assert.False(t, s.Pager().Active())
		assert.Equal(t, 1, disabled)
		assert.False(t, s.Session().IsRaw())
		assert.Equal(t, []session.ModeChange{
			{Mode: session.Raw, PreviousMode: session.Canonical},
			{Mode: session.Canonical, PreviousMode: session.Raw},
		}, modes)
		assert.Equal(t, []string{"cd posts", "cat hello.md"}, s.History())
	})

	t.Run("appended without a surface", func(t *testing.T) {
		s := newTestShell(t, Options{})
		modeChanges := 0
		events.Subscribe(s.Bus(), session.ModeChanged, func(session.ModeChange) { modeChanges++ })

		s.ExecuteCommand("cd posts")
		s.ExecuteCommand("cat hello.md")

		items := s.Output().Items()
		require.Len(t, items, 3)
		assert.Equal(t, "> cat hello.md", items[1].Content)
		assert.Equal(t, longPost(), items[2].Content)
		assert.Equal(t, output.KindHTML, items[2].Kind)
		assert.False(t, s.Session().IsRaw())
		assert.Equal(t, 2, modeChanges)
	})
}

func TestShell_TabCompletion(t *testing.T) {
	registry := commands.NewRegistry(stub("ls", nil), stub("ls-long", nil), stub("cd", nil))
	s := newTestShell(t, Options{Commands: registry})

	var strip []Suggestions
	events.Subscribe(s.Bus(), SuggestionsChanged, func(sg Suggestions) { strip = append(strip, sg) })

	pos := 1
	s.HandleTextInput("l", &pos, &pos)

	tab := keys.Event{Key: keys.Tab}
	require.True(t, s.HandleKey(tab))
	assert.Equal(t, "ls", s.Editor().Input())
	assert.Equal(t, []string{"ls", "ls-long"}, s.Editor().Completion().Suggestions)

	s.HandleKey(tab)
	assert.Equal(t, "ls-long", s.Editor().Input())

	s.HandleKey(tab)
	assert.Equal(t, "ls", s.Editor().Input())

	require.Len(t, strip, 3)
	assert.Equal(t, 0, strip[2].Selected)
}

func TestShell_FileCompletion(t *testing.T) {
	s := newTestShell(t, Options{})

	line := "cat p"
	pos := len(line)
	s.HandleTextInput(line, &pos, &pos)
	s.HandleKey(keys.Event{Key: keys.Tab})

	assert.Equal(t, "cat posts/", s.Editor().Input())
}

type mockCommandSet struct {
	mock.Mock
}

func (m *mockCommandSet) Get(name string) (commands.Command, bool) {
	args := m.Called(name)
	cmd, _ := args.Get(0).(commands.Command)
	return cmd, args.Bool(1)
}

func (m *mockCommandSet) Names() []string {
	return m.Called().Get(0).([]string)
}

func (m *mockCommandSet) All() []commands.Command {
	return m.Called().Get(0).([]commands.Command)
}

func TestShell_EmptyEnter(t *testing.T) {
	set := &mockCommandSet{}
	s := newTestShell(t, Options{Commands: set})

	assert.True(t, s.HandleKey(keys.Event{Key: keys.Enter}))

	assert.Equal(t, []string{">"}, contents(s.Output().Items()))
	assert.Empty(t, s.History())
	set.AssertNotCalled(t, "Get", mock.Anything)
}

func TestShell_UnknownCommand(t *testing.T) {
	s := newTestShell(t, Options{})

	s.ExecuteCommand("rm -rf /")

	assert.Equal(t, []string{"> rm -rf /", "rm: command not found"}, contents(s.Output().Items()))
	assert.Empty(t, s.History())
}

func TestShell_HelpAlias(t *testing.T) {
	s := newTestShell(t, Options{})

	s.ExecuteCommand("/?")

	items := s.Output().Items()
	require.Len(t, items, 2)
	assert.Equal(t, "> /?", items[0].Content)
	assert.Contains(t, items[1].Content, "Commands:")
	assert.Equal(t, []string{"/?"}, s.HistoryManager().Entries())
}

func TestShell_ErrorResultsUseErrorStyle(t *testing.T) {
	s := newTestShell(t, Options{})

	s.ExecuteCommand("cd nowhere")

	items := s.Output().Items()
	require.Len(t, items, 2)
	assert.Equal(t, "cd: nowhere: No such file or directory", items[1].Content)
	require.NotNil(t, items[1].Style)
	assert.Equal(t, s.Styles().Theme.Error, items[1].Style.Foreground)
	assert.Equal(t, "/", s.CurrentDirectory())
}

func TestShell_HistoryNavigation(t *testing.T) {
	s := newTestShell(t, Options{})
	s.ExecuteCommand("ls")
	s.ExecuteCommand("pwd")

	up := keys.Event{Key: keys.ArrowUp}
	down := keys.Event{Key: keys.ArrowDown}

	s.HandleKey(up)
	assert.Equal(t, "pwd", s.Editor().Input())
	s.HandleKey(up)
	assert.Equal(t, "ls", s.Editor().Input())
	s.HandleKey(up)
	assert.Equal(t, "ls", s.Editor().Input())
	s.HandleKey(down)
	assert.Equal(t, "pwd", s.Editor().Input())
	s.HandleKey(down)
	assert.Equal(t, "", s.Editor().Input())
}

func TestShell_PromptAndPreviousDirectory(t *testing.T) {
	s := newTestShell(t, Options{PromptPrefix: "$"})

	var prompts []Prompt
	events.Subscribe(s.Bus(), PromptChanged, func(p Prompt) { prompts = append(prompts, p) })

	assert.Equal(t, Prompt{Directory: "/", Prefix: "$", Date: "09:30:00"}, s.Prompt())

	s.ExecuteCommand("cd posts")
	s.ExecuteCommand("cd -")

	assert.Equal(t, "/", s.CurrentDirectory())
	assert.Equal(t, "/posts", s.PreviousDirectory())
	require.Len(t, prompts, 2)
	assert.Equal(t, "/posts", prompts[0].Directory)
	assert.Equal(t, "/", prompts[1].Directory)
}

func TestShell_Interrupt(t *testing.T) {
	s := newTestShell(t, Options{})
	pos := 2
	s.HandleTextInput("ca", &pos, &pos)

	assert.True(t, s.HandleKey(keys.Parse("<C-c>")))

	assert.Equal(t, []string{"> ca^C"}, contents(s.Output().Items()))
	assert.Equal(t, "", s.Editor().Input())
}

func TestShell_Clear(t *testing.T) {
	t.Run("ctrl-l empties the scrollback", func(t *testing.T) {
		s := newTestShell(t, Options{})
		s.ExecuteCommand("pwd")

		s.HandleKey(keys.Parse("<C-l>"))

		assert.Zero(t, s.Output().Len())
		_, ok := s.LastOutput()
		assert.False(t, ok)
	})

	t.Run("clear closes the pager", func(t *testing.T) {
		s := newTestShell(t, Options{})
		s.AttachSurface(&fakeSurface{viewport: 20})
		disabled := 0
		events.Subscribe(s.Bus(), PagingDisabled, func(struct{}) { disabled++ })

		s.ExecuteCommand("cat posts/hello.md")
		require.True(t, s.Pager().Active())

		s.Clear()

		assert.False(t, s.Pager().Active())
		assert.False(t, s.Session().IsRaw())
		assert.Equal(t, 1, disabled)
	})
}

func TestShell_StaleResults(t *testing.T) {
	newAsync := func(t *testing.T, release chan struct{}) *Shell {
		registry := commands.NewRegistry(commands.Builtins()...)
		registry.Register(stub("slow", func([]string, commands.Env) *commands.Result {
			<-release
			return commands.Text("slow result")
		}))
		registry.Register(stub("fast", func([]string, commands.Env) *commands.Result {
			return commands.Text("fast result")
		}))
		return newTestShell(t, Options{Commands: registry, Async: true})
	}

	t.Run("dropped after clear", func(t *testing.T) {
		release := make(chan struct{})
		s := newAsync(t, release)

		s.ExecuteCommand("slow")
		s.Clear()
		close(release)
		s.Wait()

		assert.Empty(t, s.Output().Items())
	})

	t.Run("dropped when a newer result was shown", func(t *testing.T) {
		release := make(chan struct{})
		s := newAsync(t, release)

		s.ExecuteCommand("slow")
		s.ExecuteCommand("fast")
		require.Eventually(t, func() bool {
			return s.Output().Len() == 3
		}, time.Second, time.Millisecond)

		close(release)
		s.Wait()

		assert.Equal(t, []string{"> slow", "> fast", "fast result"}, contents(s.Output().Items()))
	})

	t.Run("results after a clear are shown", func(t *testing.T) {
		release := make(chan struct{})
		close(release)
		s := newAsync(t, release)

		s.Clear()
		s.ExecuteCommand("slow")
		s.Wait()

		assert.Equal(t, []string{"> slow", "slow result"}, contents(s.Output().Items()))
	})
}

type fakeClipboard struct {
	copied []string
}

func (c *fakeClipboard) Copy(text string) error {
	c.copied = append(c.copied, text)
	return nil
}

func (c *fakeClipboard) IsAvailable() bool { return true }

func TestShell_Yank(t *testing.T) {
	clip := &fakeClipboard{}
	s := newTestShell(t, Options{Clipboard: clip})

	s.ExecuteCommand("cd posts")
	s.ExecuteCommand("pwd")
	s.ExecuteCommand("yank")

	assert.Equal(t, []string{"/posts"}, clip.copied)
	last, ok := s.LastOutput()
	assert.True(t, ok)
	assert.Equal(t, "Copied 1 line to clipboard", last)
}

func TestShell_KeysWhilePaging(t *testing.T) {
	s := newTestShell(t, Options{})
	s.AttachSurface(&fakeSurface{viewport: 20})
	s.ExecuteCommand("cat posts/hello.md")

	assert.False(t, s.HandleKey(keys.Event{Key: "x"}))
	pos := 1
	s.HandleTextInput("x", &pos, &pos)
	assert.Equal(t, "", s.Editor().Input())

	s.DetachSurface()
	assert.False(t, s.Pager().Active())
	assert.False(t, s.Session().IsRaw())
}
