package main

import (
	"fmt"

	"github.com/odvcencio/tilemux/pkg/mux"
	"github.com/odvcencio/tilemux/pkg/ui/runtime"
	"github.com/odvcencio/tilemux/pkg/ui/terminal"
	"github.com/odvcencio/tilemux/pkg/ui/theme"
	"github.com/odvcencio/tilemux/pkg/ui/widgets"
)

const helpText = "ctrl+n split  ctrl+b below  ctrl+w close  ctrl+s swap  ctrl+x zoom  ctrl+q quit"

// shell stacks the mux above a status bar and owns the keys that change
// the pane tree.
type shell struct {
	mux    *mux.Mux
	status *widgets.Label
	badge  *widgets.Label
	root   *runtime.Flex

	created  int
	previous mux.ID
}

func newShell(m *mux.Mux, th *theme.Theme) *shell {
	s := &shell{
		mux:     m,
		status:  widgets.NewLabel(""),
		badge:   widgets.NewLabel(""),
		created: m.Len(),
	}
	s.setTheme(th)
	s.root = runtime.VBox(
		runtime.Expanded(m),
		runtime.Fixed(statusBar{runtime.HBox(
			runtime.Expanded(s.status),
			runtime.Fixed(s.badge),
		)}),
	)
	s.updateStatus()
	return s
}

// statusBar is a single row.
type statusBar struct{ *runtime.Flex }

func (b statusBar) Measure(c runtime.Constraints) runtime.Size {
	return c.Constrain(runtime.Size{Width: c.MaxSize().Width, Height: 1})
}

func (s *shell) setTheme(th *theme.Theme) {
	if th != nil {
		s.badge.WithStyle(th.ZoomBadge)
	}
}

func (s *shell) Measure(c runtime.Constraints) runtime.Size { return s.root.Measure(c) }

func (s *shell) Layout(bounds runtime.Rect) { s.root.Layout(bounds) }

func (s *shell) Render(ctx runtime.RenderContext) {
	s.updateStatus()
	s.root.Layout(ctx.Bounds)
	s.root.Render(ctx)
}

func (s *shell) HandleMessage(msg runtime.Message) runtime.HandleResult {
	before := s.mux.FocusedID()
	result := s.handle(msg)
	if after := s.mux.FocusedID(); after != before && s.mux.Contains(before) {
		s.previous = before
	}
	return result
}

func (s *shell) handle(msg runtime.Message) runtime.HandleResult {
	if key, ok := msg.(runtime.KeyMsg); ok && key.Ctrl && key.Key == terminal.KeyRune {
		switch key.Rune {
		case 'q', 'c':
			return runtime.WithCommand(runtime.Quit{})
		case 'n':
			return s.split(mux.Horizontal)
		case 'b':
			return s.split(mux.Vertical)
		case 'w':
			return s.close()
		case 's':
			return s.swap()
		}
	}
	return s.root.HandleMessage(msg)
}

func (s *shell) split(o mux.Orientation) runtime.HandleResult {
	s.created++
	pane := widgets.NewTextPane(fmt.Sprintf("pane %d", s.created))
	anchor := s.mux.FocusedID()
	if !anchor.Valid() {
		anchor = s.mux.Root()
	}
	if _, err := s.mux.Insert(pane, o, anchor, mux.After); err != nil {
		return runtime.Unhandled()
	}
	return runtime.Handled()
}

// close removes the focused pane. Closing the last pane quits.
func (s *shell) close() runtime.HandleResult {
	if s.mux.Len() <= 1 {
		return runtime.WithCommand(runtime.Quit{})
	}
	if _, err := s.mux.Remove(s.mux.FocusedID()); err != nil {
		return runtime.Unhandled()
	}
	return runtime.Handled()
}

func (s *shell) swap() runtime.HandleResult {
	if !s.mux.Contains(s.previous) {
		return runtime.Unhandled()
	}
	if err := s.mux.Switch(s.mux.FocusedID(), s.previous); err != nil {
		return runtime.Unhandled()
	}
	return runtime.Handled()
}

func (s *shell) updateStatus() {
	s.status.SetText(fmt.Sprintf(" %d panes  focus %s  %s", s.mux.Len(), s.mux.FocusedID(), helpText))
	if s.mux.Zoomed() {
		s.badge.SetText(" ZOOM ")
	} else {
		s.badge.SetText("")
	}
}

func (s *shell) CanFocus() bool  { return true }
func (s *shell) Focus()          { s.mux.Focus() }
func (s *shell) Blur()           { s.mux.Blur() }
func (s *shell) IsFocused() bool { return s.mux.IsFocused() }

var _ runtime.Focusable = (*shell)(nil)
