package mux

// Insert adds p next to anchor and returns the new leaf.
//
// When anchor is the placeholder root of an empty Mux, p becomes the root.
// Otherwise anchor is wrapped in a new split of orientation o that takes
// anchor's place, with p placed before or after it. The new leaf takes
// focus if it accepts focus, or if nothing was focused yet.
func (m *Mux) Insert(p Pane, o Orientation, anchor ID, side Side) (ID, error) {
	if p == nil {
		return NoID, &InsertError{Anchor: anchor, Err: ErrNilPane}
	}
	if !m.Contains(anchor) {
		return NoID, &InsertError{Anchor: anchor, Err: ErrInvalidID}
	}

	var id ID
	if m.nodes.get(anchor).empty() {
		if anchor != m.root {
			return NoID, &InsertError{Anchor: anchor, Err: ErrInternal}
		}
		id = m.nodes.newLeaf(p)
		m.nodes.release(m.root)
		m.root = id
	} else {
		id = m.wrap(p, o, anchor, side)
	}

	if p.CanFocus() || m.focus == NoID {
		m.setFocus(id)
	}
	m.invalidated = true
	if err := m.checkInvariants(); err != nil {
		return NoID, &InsertError{Anchor: anchor, Err: err}
	}
	leaves := m.Len()
	m.logger.Debug("pane inserted",
		"id", id.String(),
		"anchor", anchor.String(),
		"orientation", o.String(),
		"side", side.String(),
		"panes", leaves,
	)
	m.observer.TreeChanged(OpInsert, leaves)
	return id, nil
}

// wrap replaces anchor with a new split holding anchor and a new leaf.
func (m *Mux) wrap(p Pane, o Orientation, anchor ID, side Side) ID {
	parent := m.nodes.parentOf(anchor)
	idx := m.nodes.indexOf(anchor)
	m.nodes.detach(anchor)

	split := m.nodes.newSplit(o, m.ratio)
	leaf := m.nodes.newLeaf(p)
	if parent == NoID {
		m.root = split
	} else {
		m.nodes.attachAt(parent, split, idx)
	}
	if side == Before {
		m.nodes.attachLast(split, leaf)
		m.nodes.attachLast(split, anchor)
	} else {
		m.nodes.attachLast(split, anchor)
		m.nodes.attachLast(split, leaf)
	}
	return leaf
}

// InsertLeftOf places p left of anchor.
func (m *Mux) InsertLeftOf(p Pane, anchor ID) (ID, error) {
	return m.Insert(p, Horizontal, anchor, Before)
}

// InsertRightOf places p right of anchor.
func (m *Mux) InsertRightOf(p Pane, anchor ID) (ID, error) {
	return m.Insert(p, Horizontal, anchor, After)
}

// InsertAbove places p above anchor.
func (m *Mux) InsertAbove(p Pane, anchor ID) (ID, error) {
	return m.Insert(p, Vertical, anchor, Before)
}

// InsertBelow places p below anchor.
func (m *Mux) InsertBelow(p Pane, anchor ID) (ID, error) {
	return m.Insert(p, Vertical, anchor, After)
}
