// Package sim provides a simulation backend for golden-frame tests.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/tilemux/pkg/ui/backend"
	"github.com/odvcencio/tilemux/pkg/ui/backend/tcell"
	"github.com/odvcencio/tilemux/pkg/ui/terminal"
)

// Backend is a testable backend using tcell's simulation screen.
type Backend struct {
	*tcell.Backend
	screen        tcellv2.SimulationScreen
	width, height int
	mu            sync.Mutex
}

// New creates a simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
		width:   width,
		height:  height,
	}
}

// Init initializes the simulation screen at the requested size.
func (s *Backend) Init() error {
	if err := s.Backend.Init(); err != nil {
		return err
	}
	s.mu.Lock()
	s.screen.SetSize(s.width, s.height)
	s.mu.Unlock()
	return nil
}

// Resize changes the simulation screen size without posting an event.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
	s.screen.SetSize(width, height)
}

// InjectKey injects a key event.
func (s *Backend) InjectKey(ev terminal.KeyEvent) error {
	return s.PostEvent(ev)
}

// InjectKeyRune injects a plain character keypress.
func (s *Backend) InjectKeyRune(r rune) error {
	return s.InjectKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: r})
}

// InjectMouse injects a mouse event.
func (s *Backend) InjectMouse(ev terminal.MouseEvent) error {
	return s.PostEvent(ev)
}

// InjectResize resizes the screen and posts the matching event.
func (s *Backend) InjectResize(width, height int) error {
	s.Resize(width, height)
	return s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// Capture returns the screen content, one line per row.
func (s *Backend) Capture() string {
	s.mu.Lock()
	w, h := s.screen.Size()
	s.mu.Unlock()
	return s.CaptureRegion(0, 0, w, h)
}

// CaptureRegion captures a rectangular region of the screen.
func (s *Backend) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, 0, h)
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			mainc, comb, _, _ := s.screen.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// CaptureCell returns the content and style of a single cell.
func (s *Backend) CaptureCell(x, y int) (rune, backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, ts, _ := s.screen.GetContent(x, y)
	return m, convertTcellStyle(ts)
}

// FindText returns the position of the first occurrence of text, or -1, -1.
func (s *Backend) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return col, row
		}
	}
	return -1, -1
}

// ContainsText reports whether text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, _ := s.FindText(text)
	return x >= 0
}

var attrPairs = []struct {
	tc tcellv2.AttrMask
	be backend.AttrMask
}{
	{tcellv2.AttrBold, backend.AttrBold},
	{tcellv2.AttrDim, backend.AttrDim},
	{tcellv2.AttrItalic, backend.AttrItalic},
	{tcellv2.AttrUnderline, backend.AttrUnderline},
	{tcellv2.AttrReverse, backend.AttrReverse},
	{tcellv2.AttrBlink, backend.AttrBlink},
	{tcellv2.AttrStrikeThrough, backend.AttrStrikeThrough},
}

func convertTcellStyle(ts tcellv2.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().
		Foreground(convertTcellColor(fg)).
		Background(convertTcellColor(bg))
	for _, p := range attrPairs {
		if attrs&p.tc != 0 {
			style = style.With(p.be)
		}
	}
	return style
}

func convertTcellColor(tc tcellv2.Color) backend.Color {
	if tc == tcellv2.ColorDefault {
		return backend.ColorDefault
	}
	if tc&tcellv2.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	return backend.Color(tc & 0xFF)
}

var _ backend.Backend = (*Backend)(nil)
