package mux

// store is an append-only arena of nodes. The node for id lives at
// nodes[id-1]; removed nodes stay in place so their IDs are never reissued.
type store struct {
	nodes []*node
}

func (s *store) add(n *node) ID {
	s.nodes = append(s.nodes, n)
	return ID(len(s.nodes))
}

func (s *store) newLeaf(p Pane) ID {
	return s.add(&node{pane: p})
}

func (s *store) newSplit(o Orientation, ratio float64) ID {
	return s.add(&node{orientation: o, ratio: ratio})
}

// get returns the live node for id, or nil.
func (s *store) get(id ID) *node {
	if id == NoID || int(id) > len(s.nodes) {
		return nil
	}
	n := s.nodes[id-1]
	if n.removed {
		return nil
	}
	return n
}

// release drops a detached node. Its ID stays reserved.
func (s *store) release(id ID) {
	if n := s.get(id); n != nil {
		*n = node{removed: true}
	}
}

func (s *store) parentOf(id ID) ID {
	if n := s.get(id); n != nil {
		return n.parent
	}
	return NoID
}

// childrenOf returns the children of id in order.
func (s *store) childrenOf(id ID) []ID {
	n := s.get(id)
	if n == nil {
		return nil
	}
	var out []ID
	for c := n.first; c != NoID; c = s.nodes[c-1].next {
		out = append(out, c)
	}
	return out
}

func (s *store) childCount(id ID) int {
	return len(s.childrenOf(id))
}

// indexOf returns the position of id among its siblings, or -1 for a root.
func (s *store) indexOf(id ID) int {
	n := s.get(id)
	if n == nil || n.parent == NoID {
		return -1
	}
	i := 0
	for p := n.prev; p != NoID; p = s.nodes[p-1].prev {
		i++
	}
	return i
}

// siblingOf returns the other child of id's parent.
func (s *store) siblingOf(id ID) ID {
	n := s.get(id)
	if n == nil {
		return NoID
	}
	if n.prev != NoID {
		return n.prev
	}
	return n.next
}

// ancestorsOf returns the ancestors of id, nearest first. id is excluded.
func (s *store) ancestorsOf(id ID) []ID {
	var out []ID
	for p := s.parentOf(id); p != NoID; p = s.parentOf(p) {
		out = append(out, p)
	}
	return out
}

// descendantsOf returns id and everything below it in pre-order.
func (s *store) descendantsOf(id ID) []ID {
	if s.get(id) == nil {
		return nil
	}
	out := []ID{id}
	for _, c := range s.childrenOf(id) {
		out = append(out, s.descendantsOf(c)...)
	}
	return out
}

// isAncestor reports whether a is a proper ancestor of b.
func (s *store) isAncestor(a, b ID) bool {
	for p := s.parentOf(b); p != NoID; p = s.parentOf(p) {
		if p == a {
			return true
		}
	}
	return false
}

func (s *store) attachFirst(parent, child ID) {
	s.attachAt(parent, child, 0)
}

func (s *store) attachLast(parent, child ID) {
	s.attachAt(parent, child, -1)
}

// attachAt links a detached child under parent at position idx. A negative
// or out of range idx appends.
func (s *store) attachAt(parent, child ID, idx int) {
	p, c := s.get(parent), s.get(child)
	if p == nil || c == nil {
		return
	}
	after := NoID // insert after this sibling, NoID means at the front
	if idx < 0 {
		after = p.last
	} else {
		for cur := p.first; cur != NoID && idx > 0; cur = s.nodes[cur-1].next {
			after = cur
			idx--
		}
	}

	c.parent = parent
	c.prev = after
	if after == NoID {
		c.next = p.first
		p.first = child
	} else {
		a := s.nodes[after-1]
		c.next = a.next
		a.next = child
	}
	if c.next == NoID {
		p.last = child
	} else {
		s.nodes[c.next-1].prev = child
	}
}

// detach unlinks id from its parent and siblings. Its subtree stays intact.
func (s *store) detach(id ID) {
	n := s.get(id)
	if n == nil || n.parent == NoID {
		return
	}
	p := s.nodes[n.parent-1]
	if n.prev == NoID {
		p.first = n.next
	} else {
		s.nodes[n.prev-1].next = n.next
	}
	if n.next == NoID {
		p.last = n.prev
	} else {
		s.nodes[n.next-1].prev = n.prev
	}
	n.parent, n.prev, n.next = NoID, NoID, NoID
}
