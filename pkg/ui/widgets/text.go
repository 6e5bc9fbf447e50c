package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tilemux/pkg/ui/backend"
	"github.com/odvcencio/tilemux/pkg/ui/runtime"
	"github.com/odvcencio/tilemux/pkg/ui/terminal"
)

// Alignment specifies text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Label is a single-line text widget, used for the status bar.
type Label struct {
	Base
	text      string
	style     *backend.Style
	alignment Alignment
}

// NewLabel creates a new label widget. Without an explicit style the label
// draws with the theme's status bar style.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// SetText updates the label text.
func (l *Label) SetText(text string) {
	if l.text != text {
		l.text = text
		l.Invalidate()
	}
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// WithStyle sets the style and returns for chaining.
func (l *Label) WithStyle(style backend.Style) *Label {
	l.style = &style
	return l
}

// WithAlignment sets alignment and returns for chaining.
func (l *Label) WithAlignment(align Alignment) *Label {
	l.alignment = align
	return l
}

// Measure returns one row as wide as the text.
func (l *Label) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(l.text),
		Height: 1,
	})
}

// Render draws the label across its full row.
func (l *Label) Render(ctx runtime.RenderContext) {
	bounds := l.bounds
	if bounds.Empty() {
		return
	}
	style := ctx.Theme.StatusBar
	if l.style != nil {
		style = *l.style
	}
	row := runtime.NewRect(bounds.X, bounds.Y, bounds.Width, 1)
	ctx.Buffer.Fill(row, ' ', style)

	text := truncate(l.text, bounds.Width)
	w := runewidth.StringWidth(text)
	x := bounds.X
	switch l.alignment {
	case AlignCenter:
		x += (bounds.Width - w) / 2
	case AlignRight:
		x += bounds.Width - w
	}
	ctx.Buffer.SetString(x, bounds.Y, text, style, row)
	l.ClearInvalidation()
}

// TextPane is a focusable pane showing a title row and scrolling text.
// Typed runes and pastes are appended to its body.
type TextPane struct {
	FocusableBase
	title     string
	lines     []string
	focusable bool
	preferred *runtime.Size
	clicks    int
}

// NewTextPane creates a pane with the given title.
func NewTextPane(title string) *TextPane {
	return &TextPane{title: title, lines: []string{""}, focusable: true}
}

// WithFocusable controls whether the pane accepts focus.
func (p *TextPane) WithFocusable(ok bool) *TextPane {
	p.focusable = ok
	return p
}

// WithPreferredSize caps the size the pane asks for during measure.
func (p *TextPane) WithPreferredSize(w, h int) *TextPane {
	p.preferred = &runtime.Size{Width: w, Height: h}
	return p
}

// CanFocus reports whether the pane currently accepts focus.
func (p *TextPane) CanFocus() bool {
	return p.focusable
}

// Title returns the pane title.
func (p *TextPane) Title() string {
	return p.title
}

// Body returns the pane text.
func (p *TextPane) Body() string {
	return strings.Join(p.lines, "\n")
}

// Clicks returns how many mouse presses the pane has received.
func (p *TextPane) Clicks() int {
	return p.clicks
}

// Append adds text to the body. Newlines start new rows.
func (p *TextPane) Append(s string) {
	parts := strings.Split(s, "\n")
	p.lines[len(p.lines)-1] += parts[0]
	p.lines = append(p.lines, parts[1:]...)
	p.Invalidate()
}

// Measure fills the constraints unless a preferred size was set.
func (p *TextPane) Measure(constraints runtime.Constraints) runtime.Size {
	if p.preferred != nil {
		return constraints.Constrain(*p.preferred)
	}
	return constraints.MaxSize()
}

// Render draws the title row and the tail of the body.
func (p *TextPane) Render(ctx runtime.RenderContext) {
	bounds := p.bounds
	if bounds.Empty() {
		return
	}
	th := ctx.Theme
	titleStyle := th.PaneTextDim
	if p.IsFocused() {
		titleStyle = th.PaneTitle
	}
	ctx.Buffer.SetString(bounds.X, bounds.Y, truncate(p.title, bounds.Width), titleStyle, bounds)

	body := bounds.Inset(1, 0, 0, 0)
	start := max(0, len(p.lines)-body.Height)
	for i, line := range p.lines[start:] {
		ctx.Buffer.SetString(body.X, body.Y+i, truncate(line, body.Width), th.PaneText, body)
	}
	p.ClearInvalidation()
}

// HandleMessage appends typed text and counts mouse presses.
func (p *TextPane) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.KeyMsg:
		if m.Ctrl || m.Alt {
			return runtime.Unhandled()
		}
		switch m.Key {
		case terminal.KeyRune:
			p.Append(string(m.Rune))
			return runtime.Handled()
		case terminal.KeyEnter:
			p.Append("\n")
			return runtime.Handled()
		}
	case runtime.PasteMsg:
		p.Append(m.Text)
		return runtime.Handled()
	case runtime.MouseMsg:
		if m.Action == terminal.MousePress {
			p.clicks++
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}
