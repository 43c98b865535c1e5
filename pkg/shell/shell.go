package shell

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kcaldas/termblog/pkg/commands"
	"github.com/kcaldas/termblog/pkg/completion"
	"github.com/kcaldas/termblog/pkg/editor"
	"github.com/kcaldas/termblog/pkg/events"
	"github.com/kcaldas/termblog/pkg/history"
	"github.com/kcaldas/termblog/pkg/keys"
	"github.com/kcaldas/termblog/pkg/logging"
	"github.com/kcaldas/termblog/pkg/output"
	"github.com/kcaldas/termblog/pkg/pager"
	"github.com/kcaldas/termblog/pkg/session"
	"github.com/kcaldas/termblog/pkg/theme"
	"github.com/kcaldas/termblog/pkg/vfs"
)

const (
	DefaultPromptPrefix = ">"
	DefaultDateFormat   = "15:04:05"
)

// CommandSet is the lookup side of the command registry.
type CommandSet interface {
	Get(name string) (commands.Command, bool)
	Names() []string
	All() []commands.Command
}

type Options struct {
	FileSystem *vfs.FileSystem
	// Commands defaults to a registry of the builtins.
	Commands CommandSet
	// Policies defaults to commands.NewPolicyProvider().
	Policies *commands.PolicyProvider
	Styles   *theme.Styles
	Bus      *events.Bus
	// Clipboard backs the yank command. Nil reports it unavailable.
	Clipboard commands.Clipboard

	HistoryCapacity int
	FileCommands    []string
	PromptPrefix    string
	// DateFormat is a time layout for the prompt clock.
	DateFormat  string
	ScrollRatio float64

	// Async runs commands off the UI goroutine and delivers results via Post.
	Async bool
	// Post runs fn on the UI goroutine. Nil runs it inline.
	Post     func(fn func())
	Animator pager.Animator
	Now      func() time.Time
	Context  context.Context
}

// Shell ties the editor, history, completion, session, pager and output
// together. It implements editor.Callbacks and commands.Env.
type Shell struct {
	id  string
	ctx context.Context

	bus        *events.Bus
	fs         *vfs.FileSystem
	cmds       CommandSet
	executor   *commands.Executor
	editor     *editor.Editor
	history    *history.Manager
	completion *completion.Provider
	output     *output.Buffer
	session    *session.Session
	pager      *pager.Pager
	styles     *theme.Styles
	clipboard  commands.Clipboard

	prefix     string
	dateFormat string
	now        func() time.Time
	async      bool
	post       func(fn func())

	mu         sync.Mutex
	cwd        string
	prevDir    string
	surface    Surface
	lastOutput string
	hasOutput  bool
	generation uint64
	barrier    uint64
	applied    uint64
	pending    sync.WaitGroup

	logger logging.Logger
}

func New(opts Options) *Shell {
	if opts.FileSystem == nil {
		opts.FileSystem = vfs.New("")
	}
	if opts.Commands == nil {
		opts.Commands = commands.NewRegistry(commands.Builtins()...)
	}
	if opts.Bus == nil {
		opts.Bus = events.NewBus()
	}
	if opts.Styles == nil {
		opts.Styles = theme.NewStyles(nil, nil)
	}
	if opts.PromptPrefix == "" {
		opts.PromptPrefix = DefaultPromptPrefix
	}
	if opts.DateFormat == "" {
		opts.DateFormat = DefaultDateFormat
	}
	if opts.Post == nil {
		opts.Post = func(fn func()) { fn() }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	id := uuid.New().String()
	s := &Shell{
		id:         id,
		ctx:        opts.Context,
		bus:        opts.Bus,
		fs:         opts.FileSystem,
		cmds:       opts.Commands,
		executor:   commands.NewExecutor(opts.Policies),
		history:    history.NewManager(opts.HistoryCapacity),
		styles:     opts.Styles,
		clipboard:  opts.Clipboard,
		prefix:     opts.PromptPrefix,
		dateFormat: opts.DateFormat,
		now:        opts.Now,
		async:      opts.Async,
		post:       opts.Post,
		cwd:        "/",
		logger:     logging.NewSessionLogger("shell", id),
	}

	s.output = output.NewBuffer(s.bus)
	s.session = session.New(s.bus, s.output)
	s.pager = pager.New(pager.Options{
		ScrollRatio: opts.ScrollRatio,
		Post:        opts.Post,
		Animator:    opts.Animator,
	})
	s.completion = completion.NewProvider(
		completion.NewCommandSuggester(s.cmds.Names),
		completion.NewFileSuggester(s.fs, s.CurrentDirectory, opts.FileCommands),
	)
	s.editor = editor.New(s)

	events.Subscribe(s.bus, session.RawOutputRequested, s.handleRawOutput)
	s.pager.OnQuit(s.handlePagerQuit)

	s.logger.Debug("shell created", "root", s.fs.Root)
	return s
}

func (s *Shell) ID() string                       { return s.id }
func (s *Shell) Bus() *events.Bus                 { return s.bus }
func (s *Shell) Editor() *editor.Editor           { return s.editor }
func (s *Shell) HistoryManager() *history.Manager { return s.history }
func (s *Shell) Completion() *completion.Provider { return s.completion }
func (s *Shell) Output() *output.Buffer           { return s.output }
func (s *Shell) Session() *session.Session        { return s.session }
func (s *Shell) Pager() *pager.Pager              { return s.pager }
func (s *Shell) Styles() *theme.Styles            { return s.styles }
func (s *Shell) Executor() *commands.Executor     { return s.executor }
func (s *Shell) CommandSet() CommandSet           { return s.cmds }

// Prompt returns the current prompt state.
func (s *Shell) Prompt() Prompt {
	return Prompt{
		Directory: s.CurrentDirectory(),
		Prefix:    s.prefix,
		Date:      s.now().Format(s.dateFormat),
	}
}

// HandleKey routes a key to the pager while it is active, otherwise to the
// editor. It reports whether the key was consumed.
func (s *Shell) HandleKey(ev keys.Event) bool {
	if s.pager.Active() {
		return s.pager.HandleKey(ev)
	}
	return s.editor.HandleKeyDown(ev)
}

// HandleTextInput forwards a host text change to the editor. It is ignored
// while paging.
func (s *Shell) HandleTextInput(value string, selStart, selEnd *int) {
	if s.pager.Active() {
		return
	}
	s.editor.HandleTextInput(value, selStart, selEnd)
}

// Resize records the terminal size and re-measures an open pager.
func (s *Shell) Resize(width, height int) {
	s.session.SetViewport(width, height)

	if surface := s.attachedSurface(); surface != nil && s.pager.Active() {
		s.pager.RequestViewport(surface.ViewportHeight())
	}
}

// Wait blocks until every asynchronous command has delivered its result.
func (s *Shell) Wait() {
	s.pending.Wait()
}

// Close stops the pager and waits for pending commands.
func (s *Shell) Close() {
	s.Wait()
	s.pager.Dispose()
}

func (s *Shell) emitPrompt() {
	events.Emit(s.bus, PromptChanged, s.Prompt())
}
