package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/awesome-gocui/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/mattn/go-runewidth"
)

const (
	windowMain = "main"
	tabWidth   = 4

	viewOutput      = "output"
	viewPager       = "pager"
	viewSuggestions = "suggestions"
	viewInfo        = "info"
	viewPrompt      = "prompt"
	viewStatus      = "status"
)

func layoutTree() *boxlayout.Box {
	return &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children: []*boxlayout.Box{
			{Window: windowMain, Weight: 1},
			{Window: viewSuggestions, Size: 1},
			{Window: viewInfo, Size: 1},
			{Window: viewPrompt, Size: 1},
			{Window: viewStatus, Size: 1},
		},
	}
}

// layout is the gocui manager. It runs after every event, so all drawing
// happens here from shell state.
func (a *App) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	dims := boxlayout.ArrangeWindows(layoutTree(), 0, 0, maxX, maxY)
	main := dims[windowMain]
	a.resize(maxX, maxY, main.X1-main.X0+1, main.Y1-main.Y0+1)

	outputView, err := setView(g, viewOutput, main)
	if err != nil {
		return err
	}
	if a.follow {
		a.output.ScrollToBottom()
	}
	if err := drawPane(outputView, a.output, &a.outputDrawn); err != nil {
		return err
	}

	pagerView, err := setView(g, viewPager, main)
	if err != nil {
		return err
	}
	if err := drawPane(pagerView, &a.surface.pane, &a.pagerDrawn); err != nil {
		return err
	}
	top := viewOutput
	if a.paging {
		top = viewPager
	}
	if _, err := g.SetViewOnTop(top); err != nil {
		return err
	}

	if err := a.drawLine(g, viewSuggestions, dims[viewSuggestions], a.styles.Muted.Render(suggestionStrip(a.suggestions))); err != nil {
		return err
	}
	info := a.styles.Directory.Render(a.prompt.Directory) + "  " + a.styles.Status.Render(a.prompt.Date)
	if err := a.drawLine(g, viewInfo, dims[viewInfo], info); err != nil {
		return err
	}
	status := statusLine(a.prompt, a.shell.Session().Mode(), a.paging, a.shell.Pager().State())
	if err := a.drawLine(g, viewStatus, dims[viewStatus], a.styles.Status.Render(status)); err != nil {
		return err
	}
	return a.drawPrompt(g, dims[viewPrompt])
}

// resize re-wraps the panes and tells the shell when the terminal size
// changed.
func (a *App) resize(width, height, mainWidth, mainHeight int) {
	a.output.SetSize(mainWidth, mainHeight)
	a.surface.SetSize(mainWidth, mainHeight)

	if a.width == width && a.height == height {
		return
	}
	a.width, a.height = width, height
	a.shell.Resize(width, height)
}

func (a *App) drawLine(g *gocui.Gui, name string, d boxlayout.Dimensions, text string) error {
	v, err := setView(g, name, d)
	if err != nil {
		return err
	}
	v.Clear()
	fmt.Fprint(v, text)
	return nil
}

func (a *App) drawPrompt(g *gocui.Gui, d boxlayout.Dimensions) error {
	v, err := setView(g, viewPrompt, d)
	if err != nil {
		return err
	}
	v.Editable = true
	v.Editor = a.editor

	st := a.shell.Editor().State()
	input, cursor := displayInput(st.Input, st.CursorEnd)
	v.Clear()
	fmt.Fprintf(v, "%s %s", a.styles.PromptPrefix.Render(a.prompt.Prefix), input)

	col := runewidth.StringWidth(a.prompt.Prefix) + 1 + cursor
	width := d.X1 - d.X0 + 1
	ox := max(0, col-width+1)
	if err := v.SetOrigin(ox, 0); err != nil {
		return err
	}
	if err := v.SetCursor(col-ox, 0); err != nil {
		return err
	}

	g.Cursor = !a.paging
	if !a.focused {
		if _, err := g.SetCurrentView(viewPrompt); err != nil {
			return err
		}
		a.focused = true
	}
	return nil
}

// displayInput expands tabs to spaces, with stops every tabWidth columns
// from the start of the input, and returns the cell column of the byte
// offset cursor in the expanded text.
func displayInput(input string, cursor int) (string, int) {
	cursor = clampOffset(cursor, input)

	var sb strings.Builder
	col, cursorCol := 0, -1
	for i, r := range input {
		if i == cursor {
			cursorCol = col
		}
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	if cursorCol < 0 {
		cursorCol = col
	}
	return sb.String(), cursorCol
}

// setView places a frameless view so its content fills d exactly.
func setView(g *gocui.Gui, name string, d boxlayout.Dimensions) (*gocui.View, error) {
	v, err := g.SetView(name, d.X0-1, d.Y0-1, d.X1+1, d.Y1+1, 0)
	if err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return nil, err
		}
		v.Frame = false
		v.Wrap = false
	}
	return v, nil
}

func drawPane(v *gocui.View, p *pane, drawn *int) error {
	text, version := p.Snapshot()
	if version != *drawn {
		v.Clear()
		fmt.Fprint(v, text)
		*drawn = version
	}
	return v.SetOrigin(0, p.Origin())
}
