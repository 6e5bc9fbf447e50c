package runtime

import "github.com/odvcencio/tilemux/pkg/ui/theme"

// Screen owns the root widget, its focus scope and the render buffer.
type Screen struct {
	width, height int
	root          Widget
	scope         *FocusScope
	buffer        *Buffer
	theme         *theme.Theme
}

// NewScreen creates a screen with the given dimensions.
func NewScreen(w, h int, th *theme.Theme) *Screen {
	if th == nil {
		th = theme.DefaultTheme()
	}
	return &Screen{
		width:  w,
		height: h,
		scope:  NewFocusScope(),
		buffer: NewBuffer(w, h),
		theme:  th,
	}
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Bounds returns the full screen rect.
func (s *Screen) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Resize changes the screen dimensions and lays the root out again.
func (s *Screen) Resize(w, h int) {
	s.width, s.height = w, h
	s.buffer.Resize(w, h)
	s.Relayout()
}

// Relayout lays the root out over the full screen.
func (s *Screen) Relayout() {
	if s.root != nil {
		s.root.Layout(s.Bounds())
	}
}

// Buffer returns the render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// Theme returns the current theme.
func (s *Screen) Theme() *theme.Theme {
	return s.theme
}

// SetTheme changes the theme.
func (s *Screen) SetTheme(th *theme.Theme) {
	if th != nil {
		s.theme = th
	}
}

// FocusScope returns the screen's focus scope.
func (s *Screen) FocusScope() *FocusScope {
	return s.scope
}

// SetRoot sets the root widget and lays it out. A focusable root is
// registered with the focus scope.
func (s *Screen) SetRoot(root Widget) {
	if prev, ok := s.root.(Focusable); ok {
		s.scope.Unregister(prev)
	}
	s.root = root
	if f, ok := root.(Focusable); ok {
		s.scope.Register(f)
	}
	s.Relayout()
}

// Root returns the root widget.
func (s *Screen) Root() Widget {
	return s.root
}

// Render draws the root widget to the buffer.
func (s *Screen) Render() {
	s.buffer.Clear()
	if s.root == nil {
		return
	}
	s.root.Render(RenderContext{
		Buffer:  s.buffer,
		Theme:   s.theme,
		Focused: true,
		Bounds:  s.Bounds(),
	})
}

// HandleMessage dispatches a message to the root widget and applies focus
// commands. Remaining commands are returned to the caller.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	if s.root == nil {
		return Unhandled()
	}
	result := s.root.HandleMessage(msg)
	rest := result.Commands[:0:0]
	for _, cmd := range result.Commands {
		switch cmd.(type) {
		case FocusNext:
			s.scope.FocusNext()
		case FocusPrev:
			s.scope.FocusPrev()
		default:
			rest = append(rest, cmd)
		}
	}
	result.Commands = rest
	return result
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer  *Buffer
	Theme   *theme.Theme
	Focused bool // Does the widget's subtree hold focus?
	Bounds  Rect // Widget's allocated bounds
}

// Sub creates a context for a child widget with adjusted bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	ctx.Bounds = bounds
	return ctx
}

// WithFocus returns a copy of ctx with the focus flag replaced.
func (ctx RenderContext) WithFocus(focused bool) RenderContext {
	ctx.Focused = focused
	return ctx
}
