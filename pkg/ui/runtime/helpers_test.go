package runtime

// testWidget is a simple widget for testing layout.
type testWidget struct {
	preferredSize Size
	bounds        Rect
	fill          rune
	handles       map[rune]HandleResult
	received      []Message
}

func newTestWidget(w, h int) *testWidget {
	return &testWidget{preferredSize: Size{Width: w, Height: h}}
}

func (t *testWidget) Measure(constraints Constraints) Size {
	return constraints.Constrain(t.preferredSize)
}

func (t *testWidget) Layout(bounds Rect) { t.bounds = bounds }

func (t *testWidget) Render(ctx RenderContext) {
	if t.fill != 0 {
		ctx.Buffer.Fill(ctx.Bounds, t.fill, ctx.Theme.PaneText)
	}
}

func (t *testWidget) HandleMessage(msg Message) HandleResult {
	t.received = append(t.received, msg)
	if key, ok := msg.(KeyMsg); ok {
		if r, ok := t.handles[key.Rune]; ok {
			return r
		}
	}
	if _, ok := msg.(MouseMsg); ok && t.handles != nil {
		return Handled()
	}
	return Unhandled()
}

// focusableWidget is a test widget that can receive focus.
type focusableWidget struct {
	testWidget
	canFocus bool
	focused  bool
}

func newFocusable() *focusableWidget    { return &focusableWidget{canFocus: true} }
func newNonFocusable() *focusableWidget { return &focusableWidget{} }

func (f *focusableWidget) CanFocus() bool  { return f.canFocus }
func (f *focusableWidget) Focus()          { f.focused = true }
func (f *focusableWidget) Blur()           { f.focused = false }
func (f *focusableWidget) IsFocused() bool { return f.focused }
