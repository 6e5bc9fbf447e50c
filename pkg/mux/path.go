package mux

import (
	"fmt"
	"strings"
)

// Step picks a child of a split: the first (left or top) or the second
// (right or bottom).
type Step uint8

const (
	LeftOrUp Step = iota
	RightOrDown
)

// Path is a sequence of steps from the root.
type Path []Step

func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	parts := make([]string, len(p))
	for i, s := range p {
		if s == LeftOrUp {
			parts[i] = "first"
		} else {
			parts[i] = "second"
		}
	}
	return strings.Join(parts, "/")
}

// ParsePath parses slash-separated steps. "left", "up" and "first" select
// the first child; "right", "down" and "second" the second. An empty string
// or "/" is the root.
func ParsePath(s string) (Path, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return Path{}, nil
	}
	var path Path
	for _, part := range strings.Split(s, "/") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "left", "up", "first":
			path = append(path, LeftOrUp)
		case "right", "down", "second":
			path = append(path, RightOrDown)
		default:
			return nil, fmt.Errorf("path %q: unknown step %q", s, part)
		}
	}
	return path, nil
}

// child returns the child of id selected by step.
func (m *Mux) child(id ID, step Step) ID {
	n := m.nodes.get(id)
	if n == nil {
		return NoID
	}
	if step == LeftOrUp {
		return n.first
	}
	return n.last
}

// Resolve returns the node at path. It fails if the path runs past a leaf.
func (m *Mux) Resolve(path Path) (ID, bool) {
	cur := m.root
	for _, step := range path {
		next := m.child(cur, step)
		if next == NoID {
			return NoID, false
		}
		cur = next
	}
	return cur, true
}

// InsertAtPath follows path from the root and splits the leaf it ends on,
// placing p after it along o. Steps past a leaf are ignored. A path that
// stops on a split fails with ErrInvalidPath. In an empty Mux p becomes the
// root regardless of path.
func (m *Mux) InsertAtPath(p Pane, o Orientation, path Path) (ID, error) {
	cur := m.root
	if m.nodes.get(cur).empty() {
		return m.Insert(p, o, cur, After)
	}
	for _, step := range path {
		if m.nodes.get(cur).isLeaf() {
			break
		}
		next := m.child(cur, step)
		if next == NoID {
			return NoID, &InsertError{Anchor: cur, Err: ErrInternal}
		}
		cur = next
	}
	if !m.nodes.get(cur).isLeaf() {
		return NoID, &InsertError{Anchor: cur, Err: ErrInvalidPath}
	}
	return m.Insert(p, o, cur, After)
}

// PathBuilder accumulates steps from the root of a Mux.
type PathBuilder struct {
	m    *Mux
	path Path
}

// RootPath starts a path at the root.
func (m *Mux) RootPath() *PathBuilder {
	return &PathBuilder{m: m}
}

func (b *PathBuilder) Left() *PathBuilder  { return b.step(LeftOrUp) }
func (b *PathBuilder) Up() *PathBuilder    { return b.step(LeftOrUp) }
func (b *PathBuilder) Right() *PathBuilder { return b.step(RightOrDown) }
func (b *PathBuilder) Down() *PathBuilder  { return b.step(RightOrDown) }

func (b *PathBuilder) step(s Step) *PathBuilder {
	b.path = append(b.path, s)
	return b
}

// Path returns a copy of the steps so far.
func (b *PathBuilder) Path() Path {
	return append(Path(nil), b.path...)
}

// Build resolves the path to a node.
func (b *PathBuilder) Build() (ID, bool) {
	return b.m.Resolve(b.path)
}
