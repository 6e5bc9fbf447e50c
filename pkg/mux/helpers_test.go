package mux

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odvcencio/tilemux/pkg/ui/runtime"
	"github.com/odvcencio/tilemux/pkg/ui/theme"
)

// fakePane fills its region with a rune and records what it receives.
type fakePane struct {
	name     string
	fill     rune
	refuse   bool
	focused  bool
	consume  bool
	bounds   runtime.Rect
	layouts  int
	received []runtime.Message
}

func newFakePane(name string) *fakePane {
	fill := '.'
	if name != "" {
		fill = rune(name[0])
	}
	return &fakePane{name: name, fill: fill}
}

func (p *fakePane) Measure(c runtime.Constraints) runtime.Size { return c.MaxSize() }

func (p *fakePane) Layout(bounds runtime.Rect) {
	p.bounds = bounds
	p.layouts++
}

func (p *fakePane) Render(ctx runtime.RenderContext) {
	ctx.Buffer.Fill(ctx.Bounds, p.fill, ctx.Theme.PaneText)
}

func (p *fakePane) HandleMessage(msg runtime.Message) runtime.HandleResult {
	p.received = append(p.received, msg)
	if p.consume {
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func (p *fakePane) CanFocus() bool  { return !p.refuse }
func (p *fakePane) Focus()          { p.focused = true }
func (p *fakePane) Blur()           { p.focused = false }
func (p *fakePane) IsFocused() bool { return p.focused }

// mustInsert inserts a named pane and fails the test on error.
func mustInsert(t *testing.T, insert func(Pane, ID) (ID, error), name string, anchor ID) ID {
	t.Helper()
	id, err := insert(newFakePane(name), anchor)
	require.NoError(t, err, "insert %s", name)
	return id
}

// render lays m out over w×h cells and returns the buffer contents.
func render(m *Mux, w, h int) string {
	return renderBuffer(m, w, h).String()
}

func renderBuffer(m *Mux, w, h int) *runtime.Buffer {
	buf := runtime.NewBuffer(w, h)
	bounds := runtime.NewRect(0, 0, w, h)
	m.Layout(bounds)
	m.Render(runtime.RenderContext{Buffer: buf, Theme: theme.DefaultTheme(), Focused: true, Bounds: bounds})
	return buf
}

func paneOf(t *testing.T, m *Mux, id ID) *fakePane {
	t.Helper()
	p, ok := m.Pane(id)
	require.True(t, ok, "pane %s", id)
	return p.(*fakePane)
}
