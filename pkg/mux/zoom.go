package mux

// ToggleZoom switches between the tiled view and showing only the focused
// pane over the whole area. An empty Mux cannot zoom.
func (m *Mux) ToggleZoom() bool {
	if !m.isLeaf(m.focus) {
		return false
	}
	m.zoomed = !m.zoomed
	m.invalidated = true
	m.logger.Debug("zoom toggled", "zoomed", m.zoomed, "focus", m.focus.String())
	m.observer.ZoomToggled(m.zoomed)
	return m.zoomed
}

// Zoomed reports whether the focused pane fills the whole area.
func (m *Mux) Zoomed() bool {
	return m.zoomed
}

// ClickedPane returns the leaf whose region contains (x, y) at the last
// layout. The region's origin cell never matches. Hit testing is off while
// zoomed.
func (m *Mux) ClickedPane(x, y int) (ID, bool) {
	if m.zoomed {
		return NoID, false
	}
	for _, id := range m.Leaves() {
		n := m.nodes.get(id)
		if !n.laidOut || !n.bounds.Contains(x, y) {
			continue
		}
		if x == n.bounds.X && y == n.bounds.Y {
			continue
		}
		return id, true
	}
	return NoID, false
}
