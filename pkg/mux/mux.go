package mux

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/odvcencio/tilemux/pkg/ui/runtime"
)

// Mux is a tiling pane multiplexer. The zero value is not usable; create
// one with New or NewWithPane.
type Mux struct {
	nodes store
	root  ID
	focus ID

	zoomed      bool
	invalidated bool
	bounds      runtime.Rect
	laidOut     bool
	focused     bool

	history   *history
	bindings  Bindings
	minExtent int
	ratio     float64
	logger    *slog.Logger
	observer  Observer
}

// New creates an empty Mux. Its root is a placeholder split that the first
// inserted pane replaces.
func New(opts ...Option) *Mux {
	m := &Mux{
		history:     newHistory(DefaultHistoryCapacity),
		bindings:    DefaultBindings(),
		minExtent:   DefaultMinExtent,
		ratio:       DefaultSplitRatio,
		logger:      discardLogger(),
		observer:    nopObserver{},
		invalidated: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.root = m.nodes.newSplit(Horizontal, m.ratio)
	return m
}

// NewWithPane creates a Mux holding p as its only pane and returns the
// pane's ID. A nil pane leaves the Mux empty and returns NoID.
func NewWithPane(p Pane, opts ...Option) (*Mux, ID) {
	m := New(opts...)
	id, err := m.Insert(p, Horizontal, m.root, After)
	if err != nil {
		return m, NoID
	}
	return m, id
}

// Root returns the root node. For an empty Mux this is the placeholder split.
func (m *Mux) Root() ID {
	return m.root
}

// FocusedID returns the focused leaf, or NoID for an empty Mux.
func (m *Mux) FocusedID() ID {
	return m.focus
}

// FocusedPane returns the pane of the focused leaf.
func (m *Mux) FocusedPane() (Pane, bool) {
	return m.Pane(m.focus)
}

// SetFocus focuses an attached leaf. Other IDs are ignored. Returns true if
// focus changed.
func (m *Mux) SetFocus(id ID) bool {
	if !m.isLeaf(id) || id == m.focus {
		return false
	}
	m.setFocus(id)
	return true
}

// Contains reports whether id is attached under the root.
func (m *Mux) Contains(id ID) bool {
	if m.nodes.get(id) == nil {
		return false
	}
	return id == m.root || m.nodes.isAncestor(m.root, id)
}

// Pane returns the pane of an attached leaf.
func (m *Mux) Pane(id ID) (Pane, bool) {
	if !m.isLeaf(id) {
		return nil, false
	}
	return m.nodes.get(id).pane, true
}

// Kind reports whether id is a split or a leaf.
func (m *Mux) Kind(id ID) (NodeKind, bool) {
	if !m.Contains(id) {
		return 0, false
	}
	if m.nodes.get(id).isLeaf() {
		return KindLeaf, true
	}
	return KindSplit, true
}

// Orientation returns the orientation of an attached split.
func (m *Mux) Orientation(id ID) (Orientation, bool) {
	n := m.nodes.get(id)
	if n == nil || !n.isSplit() || !m.Contains(id) {
		return 0, false
	}
	return n.orientation, true
}

// Parent returns the parent of an attached node. The root has none.
func (m *Mux) Parent(id ID) (ID, bool) {
	if !m.Contains(id) || id == m.root {
		return NoID, false
	}
	return m.nodes.parentOf(id), true
}

// Children returns the children of an attached node in order.
func (m *Mux) Children(id ID) []ID {
	if !m.Contains(id) {
		return nil
	}
	return m.nodes.childrenOf(id)
}

// Leaves returns the attached leaves in pre-order, left/top first.
func (m *Mux) Leaves() []ID {
	var out []ID
	for _, id := range m.nodes.descendantsOf(m.root) {
		if m.nodes.get(id).isLeaf() {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of panes.
func (m *Mux) Len() int {
	return len(m.Leaves())
}

// Bindings returns a copy of the active key bindings.
func (m *Mux) Bindings() Bindings {
	return m.bindings.Clone()
}

// SetBindings replaces the key bindings.
func (m *Mux) SetBindings(b Bindings) {
	m.bindings = b.Clone()
}

// Invalidate forces the next Layout to recompute geometry.
func (m *Mux) Invalidate() {
	m.invalidated = true
}

// NeedsRelayout reports whether tree, focus, zoom or offsets changed since
// the last layout.
func (m *Mux) NeedsRelayout() bool {
	return m.invalidated
}

// String renders the tree shape, e.g. "H(#1 V(#2 #3))".
func (m *Mux) String() string {
	var sb strings.Builder
	m.writeShape(&sb, m.root)
	return sb.String()
}

func (m *Mux) writeShape(sb *strings.Builder, id ID) {
	n := m.nodes.get(id)
	if n == nil {
		return
	}
	if n.isLeaf() {
		sb.WriteString(id.String())
		return
	}
	if n.orientation == Vertical {
		sb.WriteString("V(")
	} else {
		sb.WriteString("H(")
	}
	for i, c := range m.nodes.childrenOf(id) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		m.writeShape(sb, c)
	}
	sb.WriteByte(')')
}

func (m *Mux) isLeaf(id ID) bool {
	n := m.nodes.get(id)
	return n != nil && n.isLeaf() && m.Contains(id)
}

// setFocus moves focus to a leaf, notifying focusable panes.
func (m *Mux) setFocus(id ID) {
	if id == m.focus {
		return
	}
	if prev := m.nodes.get(m.focus); prev != nil && prev.isLeaf() {
		if f, ok := prev.pane.(runtime.Focusable); ok {
			f.Blur()
		}
	}
	m.focus = id
	if next, ok := m.Pane(id); ok {
		if f, ok := next.(runtime.Focusable); ok {
			f.Focus()
		}
	}
	m.invalidated = true
	m.logger.Debug("focus changed", "focus", id.String())
}

// firstLeaf returns the first leaf under id in pre-order that accepts focus,
// or the first leaf at all when none does.
func (m *Mux) firstLeaf(id ID) ID {
	fallback := NoID
	for _, d := range m.nodes.descendantsOf(id) {
		n := m.nodes.get(d)
		if !n.isLeaf() {
			continue
		}
		if n.pane.CanFocus() {
			return d
		}
		if fallback == NoID {
			fallback = d
		}
	}
	return fallback
}

// checkInvariants verifies split arity and focus.
func (m *Mux) checkInvariants() error {
	for _, id := range m.nodes.descendantsOf(m.root) {
		n := m.nodes.get(id)
		count := m.nodes.childCount(id)
		switch {
		case n.isLeaf() && count != 0:
			return fmt.Errorf("%w: leaf %s has %d children", ErrInternal, id, count)
		case n.isSplit() && count != 0 && count != 2:
			return fmt.Errorf("%w: split %s has %d children", ErrInternal, id, count)
		case n.isSplit() && count == 0 && id != m.root:
			return fmt.Errorf("%w: empty split %s below the root", ErrInternal, id)
		}
	}
	if m.nodes.get(m.root).empty() {
		if m.focus != NoID {
			return fmt.Errorf("%w: empty mux focuses %s", ErrInternal, m.focus)
		}
		return nil
	}
	if !m.isLeaf(m.focus) {
		return fmt.Errorf("%w: focus %s is not an attached leaf", ErrInternal, m.focus)
	}
	return nil
}
