package mux

// step records one hop of the ascent: the split's orientation and whether we
// arrived from its second child.
type step struct {
	orientation Orientation
	second      bool
}

// MoveFocus moves focus to the neighbouring pane in direction d. A pane that
// refuses focus is skipped and the search continues beyond it.
func (m *Mux) MoveFocus(d Direction) Outcome {
	origin := m.focus
	if !m.isLeaf(origin) {
		return m.focusMoved(d, Ignored, false)
	}

	tried := map[ID]bool{origin: true}
	viaHistory := false
	for cur := origin; ; {
		dest, fromHistory, ok := m.neighbour(cur, origin, d, tried)
		if !ok || tried[dest] {
			return m.focusMoved(d, Ignored, viaHistory)
		}
		tried[dest] = true
		viaHistory = viaHistory || fromHistory

		if m.nodes.get(dest).pane.CanFocus() {
			m.setFocus(dest)
			m.history.push(move{from: origin, to: dest, direction: d})
			return m.focusMoved(d, Handled, viaHistory)
		}
		m.logger.Debug("pane refused focus", "id", dest.String(), "direction", d.String())
		cur = dest
	}
}

func (m *Mux) focusMoved(d Direction, outcome Outcome, viaHistory bool) Outcome {
	m.logger.Debug("focus move", "direction", d.String(), "outcome", outcome.String(), "history", viaHistory)
	m.observer.FocusMoved(d, outcome, viaHistory)
	return outcome
}

// neighbour finds the leaf next to from in direction d. A recorded move
// into origin from the opposite direction wins over the geometric choice.
func (m *Mux) neighbour(from, origin ID, d Direction, tried map[ID]bool) (ID, bool, bool) {
	path, turn, ok := m.ascend(from, d)
	if !ok {
		return NoID, false, false
	}
	skip := func(id ID) bool { return tried[id] || !m.isLeaf(id) }
	if id, ok := m.history.reverse(origin, d, skip); ok {
		return id, true, true
	}
	id, ok := m.descend(path, turn, d)
	return id, false, ok
}

// ascend climbs from id until a split along d's axis has room on the far
// side. It returns the hops taken and that split.
func (m *Mux) ascend(id ID, d Direction) ([]step, ID, bool) {
	var path []step
	child := id
	for p := m.nodes.parentOf(id); p != NoID; child, p = p, m.nodes.parentOf(p) {
		n := m.nodes.get(p)
		second := n.last == child
		path = append(path, step{orientation: n.orientation, second: second})
		if n.orientation == d.Orientation() && second != d.forward() {
			return path, p, true
		}
	}
	return nil, NoID, false
}

// descend replays path from the turn point, mirrored across the turn
// point's axis, then walks down to the leaf nearest the edge we crossed.
func (m *Mux) descend(path []step, turn ID, d Direction) (ID, bool) {
	axis := m.nodes.get(turn).orientation
	cur := turn
	for i := len(path) - 1; i >= 0; i-- {
		st := path[i]
		n := m.nodes.get(cur)
		if n == nil || !n.isSplit() || n.orientation != st.orientation {
			break
		}
		second := st.second
		if st.orientation == axis {
			second = !second
		}
		next := n.first
		if second {
			next = n.last
		}
		if next == NoID {
			break
		}
		cur = next
	}

	for {
		n := m.nodes.get(cur)
		if n == nil {
			return NoID, false
		}
		if n.isLeaf() {
			return cur, true
		}
		next := n.first
		if n.orientation == d.Orientation() && !d.forward() {
			next = n.last
		}
		if next == NoID {
			return NoID, false
		}
		cur = next
	}
}
