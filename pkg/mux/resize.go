package mux

// Resize moves the divider of the nearest split along d's axis above the
// focused pane by one cell. Right and Down grow the first side.
//
// Moving toward the center is always allowed. Moving away is refused when
// either side would drop below the minimum extent at the last laid out size.
func (m *Mux) Resize(d Direction) Outcome {
	outcome := m.resize(d)
	m.logger.Debug("resize", "direction", d.String(), "outcome", outcome.String())
	m.observer.Resized(d, outcome)
	return outcome
}

func (m *Mux) resize(d Direction) Outcome {
	if !m.isLeaf(m.focus) {
		return Ignored
	}
	for _, a := range m.nodes.ancestorsOf(m.focus) {
		n := m.nodes.get(a)
		if n.orientation != d.Orientation() {
			continue
		}
		next := n.offset - 1
		if d.forward() {
			next = n.offset + 1
		}
		if abs(next) >= abs(n.offset) && (n.total == 0 || !m.fits(n, n.total, next)) {
			return Ignored
		}
		n.offset = next
		m.invalidated = true
		return Handled
	}
	return Ignored
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
