package mux

import (
	"time"

	"github.com/odvcencio/tilemux/pkg/ui/runtime"
)

// Measure claims all the space offered.
func (m *Mux) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.MaxSize()
}

// Layout distributes bounds over the tree. It is skipped when nothing
// changed since the last layout over the same bounds.
func (m *Mux) Layout(bounds runtime.Rect) {
	if m.laidOut && !m.invalidated && bounds == m.bounds {
		return
	}
	start := time.Now()
	if m.zoomed && m.isLeaf(m.focus) {
		m.layoutLeaf(m.nodes.get(m.focus), bounds)
	} else {
		m.layoutNode(m.root, bounds)
	}
	m.bounds = bounds
	m.laidOut = true
	m.invalidated = false
	m.observer.LaidOut(time.Since(start))
}

func (m *Mux) layoutNode(id ID, r runtime.Rect) {
	n := m.nodes.get(id)
	if n == nil {
		return
	}
	if n.isLeaf() {
		m.layoutLeaf(n, r)
		return
	}
	n.bounds = r
	switch count := m.nodes.childCount(id); count {
	case 0:
		return
	case 2:
	default:
		m.logger.Warn("split has wrong child count, skipping", "id", id.String(), "children", count)
		return
	}

	extent := axisExtent(r, n.orientation)
	m.clampOffset(n, extent)
	first := min(max(m.base(n, extent)+n.offset, 0), extent)
	second := extent - first
	n.total = extent
	n.extents = [2]int{first, second}

	sep := separatorWidth(extent)
	r1, r2 := r, r
	if n.orientation == Horizontal {
		r1.Width = first
		r2.X = r.X + first + sep
		r2.Width = max(0, second-sep)
	} else {
		r1.Height = first
		r2.Y = r.Y + first + sep
		r2.Height = max(0, second-sep)
	}
	m.layoutNode(n.first, r1)
	m.layoutNode(n.last, r2)
}

func (m *Mux) layoutLeaf(n *node, r runtime.Rect) {
	size := n.pane.Measure(runtime.Loose(max(0, r.Width), max(0, r.Height))).Min(r.Size())
	size.Width, size.Height = max(0, size.Width), max(0, size.Height)
	n.pane.Layout(runtime.NewRect(r.X, r.Y, size.Width, size.Height))
	n.bounds = r
	n.size = size
	n.laidOut = true
}

// base is the first child's extent before the offset is applied.
func (m *Mux) base(n *node, extent int) int {
	return int(float64(extent) * n.ratio)
}

// fits reports whether both sides of n stay at or above the minimum extent
// with the given offset over extent cells.
func (m *Mux) fits(n *node, extent, offset int) bool {
	first := m.base(n, extent) + offset
	second := extent - first - separatorWidth(extent)
	return first >= m.minExtent && second >= m.minExtent
}

// clampOffset walks the offset back toward the center until both sides fit.
func (m *Mux) clampOffset(n *node, extent int) {
	for n.offset != 0 && !m.fits(n, extent, n.offset) {
		if n.offset > 0 {
			n.offset--
		} else {
			n.offset++
		}
	}
}

func axisExtent(r runtime.Rect, o Orientation) int {
	if o == Horizontal {
		return r.Width
	}
	return r.Height
}

// separatorWidth is one cell when the split has room to draw a divider.
func separatorWidth(extent int) int {
	if extent > 1 {
		return 1
	}
	return 0
}

// Bounds returns the region allotted to an attached node at the last layout.
func (m *Mux) Bounds(id ID) (runtime.Rect, bool) {
	n := m.nodes.get(id)
	if n == nil || !m.Contains(id) || (n.isLeaf() && !n.laidOut) || (n.isSplit() && n.total == 0) {
		return runtime.Rect{}, false
	}
	return n.bounds, true
}

// SplitExtents returns the extents of a split's two sides along its axis at
// the last layout. The second side includes the separator, so the two
// always sum to the split's extent.
func (m *Mux) SplitExtents(id ID) (first, second int, ok bool) {
	n := m.nodes.get(id)
	if n == nil || !n.isSplit() || n.total == 0 || !m.Contains(id) {
		return 0, 0, false
	}
	return n.extents[0], n.extents[1], true
}

// Offset returns the resize offset of an attached split.
func (m *Mux) Offset(id ID) (int, bool) {
	n := m.nodes.get(id)
	if n == nil || !n.isSplit() || !m.Contains(id) {
		return 0, false
	}
	return n.offset, true
}
