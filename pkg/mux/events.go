package mux

import (
	"github.com/odvcencio/tilemux/pkg/ui/runtime"
	"github.com/odvcencio/tilemux/pkg/ui/terminal"
)

// HandleMessage routes input. Keys and pastes go to the focused pane first;
// keys it leaves unhandled are matched against the bindings. A left click
// focuses the pane under the pointer and is then forwarded to it.
func (m *Mux) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch msg := msg.(type) {
	case runtime.KeyMsg:
		if result := m.forward(m.focus, msg); result.Handled {
			return result
		}
		return m.apply(m.bindings.Lookup(msg))
	case runtime.MouseMsg:
		return m.handleMouse(msg)
	default:
		return m.forward(m.focus, msg)
	}
}

// Do performs a bound action as if its key had been pressed.
func (m *Mux) Do(a Action) Outcome {
	if m.apply(a).Handled {
		return Handled
	}
	return Ignored
}

func (m *Mux) apply(a Action) runtime.HandleResult {
	if a == ActionZoom {
		if !m.isLeaf(m.focus) {
			return runtime.Unhandled()
		}
		m.ToggleZoom()
		return runtime.Handled()
	}
	d, ok := a.direction()
	if !ok {
		return runtime.Unhandled()
	}
	var outcome Outcome
	if a == focusAction(d) {
		outcome = m.MoveFocus(d)
	} else {
		outcome = m.Resize(d)
	}
	if outcome == Handled {
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func (m *Mux) handleMouse(msg runtime.MouseMsg) runtime.HandleResult {
	if m.zoomed {
		return m.forward(m.focus, msg)
	}
	id, ok := m.ClickedPane(msg.X, msg.Y)
	if !ok {
		return runtime.Unhandled()
	}
	result := runtime.Unhandled()
	if msg.Button == terminal.MouseLeft && msg.Action == terminal.MousePress {
		if p, _ := m.Pane(id); p.CanFocus() && m.SetFocus(id) {
			result = runtime.Handled()
		}
	}
	return result.Merge(m.forward(id, msg))
}

func (m *Mux) forward(id ID, msg runtime.Message) runtime.HandleResult {
	p, ok := m.Pane(id)
	if !ok {
		return runtime.Unhandled()
	}
	return p.HandleMessage(msg)
}

// CanFocus reports that the Mux takes focus as a single widget.
func (m *Mux) CanFocus() bool { return true }

// Focus marks the Mux focused. The focused pane renders as focused only
// while the Mux itself is.
func (m *Mux) Focus() {
	m.focused = true
}

// Blur clears the Mux's focus.
func (m *Mux) Blur() {
	m.focused = false
}

// IsFocused reports whether the Mux has focus.
func (m *Mux) IsFocused() bool { return m.focused }

// VisitChildren calls fn for every pane in pre-order.
func (m *Mux) VisitChildren(fn func(Pane)) {
	for _, id := range m.Leaves() {
		fn(m.nodes.get(id).pane)
	}
}

var _ runtime.Focusable = (*Mux)(nil)
