package mux

// Remove detaches id and its subtree. The sibling of id takes the place of
// their parent split, and focus moves into the sibling. Removing the last
// pane fails with ErrNoSibling.
func (m *Mux) Remove(id ID) (ID, error) {
	if !m.Contains(id) {
		return NoID, &RemoveError{ID: id, Err: ErrInvalidID}
	}
	parent := m.nodes.parentOf(id)
	sibling := m.nodes.siblingOf(id)
	if parent == NoID || sibling == NoID {
		return NoID, &RemoveError{ID: id, Err: ErrNoSibling}
	}

	grand := m.nodes.parentOf(parent)
	slot := m.nodes.indexOf(parent)
	gone := m.nodes.descendantsOf(id)

	m.nodes.detach(id)
	m.nodes.detach(sibling)
	if grand == NoID {
		m.root = sibling
	} else {
		m.nodes.detach(parent)
		m.nodes.attachAt(grand, sibling, slot)
	}

	m.setFocus(m.firstLeaf(sibling))
	for _, g := range gone {
		m.history.forget(g)
		m.nodes.release(g)
	}
	m.nodes.release(parent)
	m.invalidated = true

	leaves := m.Len()
	m.logger.Debug("pane removed",
		"id", id.String(),
		"promoted", sibling.String(),
		"focus", m.focus.String(),
		"panes", leaves,
	)
	m.observer.TreeChanged(OpRemove, leaves)
	return id, nil
}

// Switch exchanges the positions of a and b. Each takes the slot the other
// held in its parent; the parents keep their orientation and offsets.
// Switching a node with itself does nothing.
func (m *Mux) Switch(a, b ID) error {
	if !m.Contains(a) || !m.Contains(b) {
		return &SwitchError{A: a, B: b, Err: ErrInvalidID}
	}
	if a == b {
		return nil
	}
	pa, pb := m.nodes.parentOf(a), m.nodes.parentOf(b)
	if pa == NoID || pb == NoID {
		return &SwitchError{A: a, B: b, Err: ErrNoParent}
	}
	if m.nodes.isAncestor(a, b) || m.nodes.isAncestor(b, a) {
		return &SwitchError{A: a, B: b, Err: ErrNested}
	}

	ia, ib := m.nodes.indexOf(a), m.nodes.indexOf(b)
	m.nodes.detach(a)
	m.nodes.detach(b)
	if pa == pb {
		if ia < ib {
			m.nodes.attachLast(pa, b)
			m.nodes.attachLast(pa, a)
		} else {
			m.nodes.attachLast(pa, a)
			m.nodes.attachLast(pa, b)
		}
	} else {
		m.nodes.attachAt(pa, b, ia)
		m.nodes.attachAt(pb, a, ib)
	}
	m.invalidated = true

	m.logger.Debug("panes switched", "a", a.String(), "b", b.String())
	m.observer.TreeChanged(OpSwitch, m.Len())
	return nil
}
