package mux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/odvcencio/tilemux/pkg/ui/runtime"
	"github.com/odvcencio/tilemux/pkg/ui/terminal"
)

func altKey(k terminal.Key) runtime.KeyMsg  { return runtime.KeyMsg{Key: k, Alt: true} }
func ctrlKey(k terminal.Key) runtime.KeyMsg { return runtime.KeyMsg{Key: k, Ctrl: true} }

func leftClick(x, y int) runtime.MouseMsg {
	return runtime.MouseMsg{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MousePress}
}

func TestHandleKeyGoesToFocusedPaneFirst(t *testing.T) {
	m, a := NewWithPane(newFakePane("a"))
	b := mustInsert(t, m.InsertRightOf, "b", a)
	pb := paneOf(t, m, b)
	pb.consume = true

	result := m.HandleMessage(altKey(terminal.KeyLeft))
	assert.True(t, result.Handled)
	assert.Equal(t, b, m.FocusedID(), "a pane that consumes the key keeps focus")
	assert.Len(t, pb.received, 1)
	assert.Empty(t, paneOf(t, m, a).received)
}

func TestHandleKeyFallsBackToBindings(t *testing.T) {
	m, a := NewWithPane(newFakePane("a"))
	mustInsert(t, m.InsertRightOf, "b", a)
	m.Layout(screen80x24)

	assert.True(t, m.HandleMessage(altKey(terminal.KeyLeft)).Handled)
	assert.Equal(t, a, m.FocusedID())
	assert.False(t, m.HandleMessage(altKey(terminal.KeyLeft)).Handled)

	assert.True(t, m.HandleMessage(ctrlKey(terminal.KeyRight)).Handled)
	offset, _ := m.Offset(m.Root())
	assert.Equal(t, 1, offset)

	assert.True(t, m.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'x', Ctrl: true}).Handled)
	assert.True(t, m.Zoomed())

	assert.False(t, m.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'q'}).Handled)
	assert.Len(t, paneOf(t, m, a).received, 4)
}

func TestHandleKeyWithCustomBindings(t *testing.T) {
	b := Bindings{ActionFocusRight: {Key: terminal.KeyRune, Rune: 'l', Ctrl: true}}
	m, a := NewWithPane(newFakePane("a"), WithBindings(b))
	right := mustInsert(t, m.InsertRightOf, "r", a)
	m.SetFocus(a)

	assert.False(t, m.HandleMessage(altKey(terminal.KeyRight)).Handled, "defaults are replaced")
	assert.True(t, m.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'l', Ctrl: true}).Handled)
	assert.Equal(t, right, m.FocusedID())
}

func TestHandlePasteGoesToFocusedPane(t *testing.T) {
	m, a := NewWithPane(newFakePane("a"))
	mustInsert(t, m.InsertRightOf, "b", a)
	m.SetFocus(a)

	m.HandleMessage(runtime.PasteMsg{Text: "hi"})
	require.Len(t, paneOf(t, m, a).received, 1)
	assert.Equal(t, runtime.PasteMsg{Text: "hi"}, paneOf(t, m, a).received[0])
}

func TestClickFocusesPane(t *testing.T) {
	m, a := NewWithPane(newFakePane("a"))
	b := mustInsert(t, m.InsertRightOf, "b", a)
	m.Layout(screen80x24)
	require.Equal(t, b, m.FocusedID())

	result := m.HandleMessage(leftClick(10, 5))
	assert.True(t, result.Handled)
	assert.Equal(t, a, m.FocusedID())
	assert.Len(t, paneOf(t, m, a).received, 1, "the click is forwarded to the pane")

	assert.False(t, m.HandleMessage(leftClick(40, 5)).Handled, "separator column belongs to no pane")
	assert.Equal(t, a, m.FocusedID())
}

func TestClickOnRefusingPaneKeepsFocus(t *testing.T) {
	m, a := NewWithPane(newFakePane("a"))
	shy := newFakePane("b")
	shy.refuse = true
	_, err := m.InsertRightOf(shy, a)
	require.NoError(t, err)
	m.Layout(screen80x24)

	m.HandleMessage(leftClick(60, 5))
	assert.Equal(t, a, m.FocusedID())
	assert.Len(t, shy.received, 1)
}

func TestClickedPaneExcludesOriginCell(t *testing.T) {
	m, a := NewWithPane(newFakePane("a"))
	b := mustInsert(t, m.InsertRightOf, "b", a)
	m.Layout(screen80x24)

	_, ok := m.ClickedPane(0, 0)
	assert.False(t, ok)
	id, ok := m.ClickedPane(1, 0)
	require.True(t, ok)
	assert.Equal(t, a, id)

	_, ok = m.ClickedPane(41, 0)
	assert.False(t, ok)
	id, ok = m.ClickedPane(41, 1)
	require.True(t, ok)
	assert.Equal(t, b, id)

	_, ok = m.ClickedPane(80, 1)
	assert.False(t, ok)
}

func TestClickedPaneBeforeLayout(t *testing.T) {
	m, _ := NewWithPane(newFakePane("a"))
	_, ok := m.ClickedPane(3, 3)
	assert.False(t, ok)
}

func TestZoomShowsOnlyFocusedPane(t *testing.T) {
	m, a := NewWithPane(newFakePane("a"))
	mustInsert(t, m.InsertRightOf, "b", a)
	m.SetFocus(a)

	assert.True(t, m.ToggleZoom())
	assert.Equal(t, "aaaaaaaaaaa\naaaaaaaaaaa", render(m, 11, 2))
	_, ok := m.ClickedPane(5, 1)
	assert.False(t, ok, "hit testing is off while zoomed")

	assert.False(t, m.ToggleZoom())
	assert.Equal(t, "aaaaa│bbbbb\naaaaa│bbbbb", render(m, 11, 2))
}

func TestZoomFollowsFocus(t *testing.T) {
	m, a := NewWithPane(newFakePane("a"))
	mustInsert(t, m.InsertRightOf, "b", a)
	m.ToggleZoom()
	assert.Equal(t, "bbb", render(m, 3, 1))

	require.Equal(t, Handled, m.MoveFocus(Left))
	assert.Equal(t, "aaa", render(m, 3, 1))
}

func TestZoomedMouseGoesToFocusedPane(t *testing.T) {
	m, a := NewWithPane(newFakePane("a"))
	b := mustInsert(t, m.InsertRightOf, "b", a)
	m.Layout(screen80x24)
	m.ToggleZoom()

	m.HandleMessage(leftClick(5, 5))
	assert.Equal(t, b, m.FocusedID())
	assert.Len(t, paneOf(t, m, b).received, 1)
	assert.Empty(t, paneOf(t, m, a).received)
}

func TestZoomEmptyMux(t *testing.T) {
	m := New()
	assert.False(t, m.ToggleZoom())
	assert.False(t, m.Zoomed())
	assert.Equal(t, Ignored, m.Do(ActionZoom))
}

func TestZoomNotifiesObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := NewMockObserver(ctrl)
	obs.EXPECT().TreeChanged(OpInsert, 1)
	gomock.InOrder(
		obs.EXPECT().ZoomToggled(true),
		obs.EXPECT().ZoomToggled(false),
	)

	m, _ := NewWithPane(newFakePane("a"), WithObserver(obs))
	assert.Equal(t, Handled, m.Do(ActionZoom))
	assert.Equal(t, Handled, m.Do(ActionZoom))
}

func TestMuxAsFocusable(t *testing.T) {
	var f runtime.Focusable = New()
	assert.True(t, f.CanFocus())
	assert.False(t, f.IsFocused())
	f.Focus()
	assert.True(t, f.IsFocused())
	f.Blur()
	assert.False(t, f.IsFocused())
}

func TestRenderMarksOnlyFocusedPane(t *testing.T) {
	ctrl := gomock.NewController(t)
	left := NewMockPane(ctrl)
	right := NewMockPane(ctrl)
	for _, p := range []*MockPane{left, right} {
		p.EXPECT().CanFocus().Return(true).AnyTimes()
		p.EXPECT().Measure(gomock.Any()).DoAndReturn(func(c runtime.Constraints) runtime.Size { return c.MaxSize() }).AnyTimes()
		p.EXPECT().Layout(gomock.Any()).AnyTimes()
	}
	left.EXPECT().Render(gomock.Any()).Do(func(ctx runtime.RenderContext) {
		assert.False(t, ctx.Focused)
		assert.Equal(t, runtime.NewRect(0, 0, 5, 1), ctx.Bounds)
	})
	right.EXPECT().Render(gomock.Any()).Do(func(ctx runtime.RenderContext) {
		assert.True(t, ctx.Focused)
		assert.Equal(t, runtime.NewRect(6, 0, 5, 1), ctx.Bounds)
	})

	m, l := NewWithPane(left)
	_, err := m.InsertRightOf(right, l)
	require.NoError(t, err)
	render(m, 11, 1)
}

func TestVisitChildren(t *testing.T) {
	m, center, right, bottom := threePanes(t)
	var seen []Pane
	m.VisitChildren(func(p Pane) { seen = append(seen, p) })
	require.Len(t, seen, 3)
	for i, id := range []ID{center, right, bottom} {
		p, _ := m.Pane(id)
		assert.Same(t, p, seen[i])
	}
}
