package tui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termblog/pkg/events"
	"github.com/kcaldas/termblog/pkg/keys"
	"github.com/kcaldas/termblog/pkg/logging"
	"github.com/kcaldas/termblog/pkg/output"
	"github.com/kcaldas/termblog/pkg/shell"
	"github.com/kcaldas/termblog/pkg/theme"
)

type Config struct {
	// OutputMode is the gocui color mode: "true", "256", "normal" or
	// "simulator".
	OutputMode string
}

// App hosts a shell in a gocui screen.
type App struct {
	gui       *gocui.Gui
	ui        *UIThread
	shell     *shell.Shell
	styles    *theme.Styles
	formatter *theme.Formatter
	editor    *promptEditor

	output  *pane
	surface *pagerSurface

	outputDrawn int
	pagerDrawn  int
	focused     bool
	width       int
	height      int

	follow      bool
	paging      bool
	prompt      shell.Prompt
	suggestions shell.Suggestions

	unsubscribe []func()
	closeOnce   sync.Once
	logger      logging.Logger
}

// NewApp creates the screen and attaches it to sh. ui must be the UIThread
// whose Post the shell was built with.
func NewApp(ui *UIThread, sh *shell.Shell, cfg Config) (*App, error) {
	g, err := gocui.NewGui(OutputMode(cfg.OutputMode), true)
	if err != nil {
		return nil, fmt.Errorf("failed to create gui: %w", err)
	}

	app := newApp(ui, sh)
	app.gui = g

	g.Cursor = true
	g.SetManagerFunc(app.layout)
	if err := app.setupKeybindings(); err != nil {
		g.Close()
		return nil, err
	}

	sh.AttachSurface(app.surface)
	ui.Attach(g)
	return app, nil
}

func newApp(ui *UIThread, sh *shell.Shell) *App {
	app := &App{
		ui:        ui,
		shell:     sh,
		styles:    sh.Styles(),
		formatter: theme.NewFormatter(sh.Styles()),
		output:    &pane{},
		surface:   newPagerSurface(),
		follow:    true,
		prompt:    sh.Prompt(),
		logger:    logging.NewComponentLogger("tui"),
	}
	app.editor = &promptEditor{app: app}
	app.subscribe()
	return app
}

func (a *App) subscribe() {
	bus := a.shell.Bus()
	a.unsubscribe = append(a.unsubscribe,
		events.Subscribe(bus, output.Changed, func(items []output.Item) {
			a.output.SetText(a.formatter.FormatAll(items))
		}),
		events.Subscribe(bus, output.Cleared, func(struct{}) {
			a.follow = true
		}),
		events.Subscribe(bus, shell.PromptChanged, func(p shell.Prompt) {
			a.prompt = p
		}),
		events.Subscribe(bus, shell.SuggestionsChanged, func(s shell.Suggestions) {
			a.suggestions = s
		}),
		events.Subscribe(bus, shell.PagingEnabled, func(p shell.Paging) {
			a.logger.Debug("pager opened", "title", p.Title, "rows", a.surface.ContentHeight())
			a.paging = true
		}),
		events.Subscribe(bus, shell.PagingDisabled, func(struct{}) {
			a.paging = false
		}),
	)
}

func (a *App) setupKeybindings() error {
	if err := a.gui.SetKeybinding("", gocui.KeyCtrlQ, gocui.ModNone, a.quit); err != nil {
		return err
	}
	return nil
}

func (a *App) quit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}

// Run blocks in the gocui main loop until the user quits.
func (a *App) Run() error {
	defer a.Close()

	if err := a.gui.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// Close detaches from the shell and restores the terminal. It is safe to
// call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.shell.DetachSurface()
		for _, unsubscribe := range a.unsubscribe {
			unsubscribe()
		}
		a.ui.Detach()
		if a.gui != nil {
			a.gui.Close()
		}
	})
}

// handleKey is the prompt's key path: shell bindings first, then output
// scrolling, then plain text editing.
func (a *App) handleKey(ev keys.Event) {
	if a.shell.HandleKey(ev) || a.shell.Pager().Active() {
		return
	}

	switch ev.Key {
	case keys.PageUp:
		a.scrollOutput(-a.output.ViewportHeight())
		return
	case keys.PageDown:
		a.scrollOutput(a.output.ViewportHeight())
		return
	}

	st := a.shell.Editor().State()
	tc := textControl{value: st.Input, start: st.CursorStart, end: st.CursorEnd}
	if tc.apply(ev) {
		a.shell.HandleTextInput(tc.value, &tc.start, &tc.end)
	}
}

func (a *App) scrollOutput(delta int) {
	a.follow = a.output.ScrollBy(delta)
}

// OutputMode maps a config value onto a gocui color mode. Unknown values get
// 24-bit color.
func OutputMode(name string) gocui.OutputMode {
	switch name {
	case "normal":
		return gocui.OutputNormal
	case "256":
		return gocui.Output256
	case "simulator":
		return gocui.OutputSimulator
	default:
		return gocui.OutputTrue
	}
}

// promptEditor feeds gocui key presses on the prompt view to the app.
type promptEditor struct {
	app *App
}

func (e *promptEditor) Edit(_ *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	ev, ok := toEvent(key, ch, mod)
	if !ok {
		return
	}
	e.app.handleKey(ev)
}
