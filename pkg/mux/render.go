package mux

import "github.com/odvcencio/tilemux/pkg/ui/runtime"

// Render draws the panes and the separators between them. A pending
// relayout is applied first.
func (m *Mux) Render(ctx runtime.RenderContext) {
	if !m.laidOut || m.invalidated || ctx.Bounds != m.bounds {
		m.Layout(ctx.Bounds)
	}
	if m.zoomed && m.isLeaf(m.focus) {
		m.renderLeaf(m.focus, ctx)
		return
	}
	m.renderNode(m.root, ctx)
}

func (m *Mux) renderNode(id ID, ctx runtime.RenderContext) {
	n := m.nodes.get(id)
	if n == nil {
		return
	}
	if n.isLeaf() {
		m.renderLeaf(id, ctx)
		return
	}
	if m.nodes.childCount(id) != 2 {
		return
	}
	m.renderNode(n.first, ctx)
	m.renderSeparator(id, n, ctx)
	m.renderNode(n.last, ctx)
}

func (m *Mux) renderLeaf(id ID, ctx runtime.RenderContext) {
	n := m.nodes.get(id)
	if !n.laidOut {
		return
	}
	r := runtime.NewRect(n.bounds.X, n.bounds.Y, n.size.Width, n.size.Height)
	n.pane.Render(ctx.Sub(r).WithFocus(ctx.Focused && id == m.focus))
}

func (m *Mux) renderSeparator(id ID, n *node, ctx runtime.RenderContext) {
	first, second := n.extents[0], n.extents[1]
	if n.total <= 1 || second < 1 {
		return
	}
	style := ctx.Theme.Separator
	if id == m.focus || m.nodes.isAncestor(id, m.focus) {
		style = ctx.Theme.SeparatorFocus
	}
	r := n.bounds
	if n.orientation == Horizontal {
		ctx.Buffer.DrawVLine(r.X+first, r.Y, r.Height, style)
	} else {
		ctx.Buffer.DrawHLine(r.X, r.Y+first, r.Width, style)
	}
}
