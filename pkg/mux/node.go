package mux

import "github.com/odvcencio/tilemux/pkg/ui/runtime"

// node is either a split (pane == nil) or a leaf. Tree links are IDs into
// the owning store.
type node struct {
	parent, first, last, prev, next ID
	removed                         bool

	pane Pane

	orientation Orientation
	ratio       float64
	offset      int
	total       int    // extent along the axis at the last layout, 0 if never laid out
	extents     [2]int // child extents along the axis at the last layout

	bounds  runtime.Rect // region allotted at the last layout
	size    runtime.Size // size the pane was laid out at
	laidOut bool
}

func (n *node) isLeaf() bool {
	return n.pane != nil
}

func (n *node) isSplit() bool {
	return n.pane == nil
}

// empty reports a split with no children, the placeholder root of a new Mux.
func (n *node) empty() bool {
	return n.pane == nil && n.first == NoID
}

// NodeKind distinguishes splits from leaves in snapshots.
type NodeKind uint8

const (
	KindSplit NodeKind = iota
	KindLeaf
)

func (k NodeKind) String() string {
	if k == KindLeaf {
		return "leaf"
	}
	return "split"
}
