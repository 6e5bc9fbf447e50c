// Package mux implements a tiling pane multiplexer for the runtime widget
// tree.
//
// A Mux owns a binary tree of regions. Every internal node is a split that
// divides its rectangle in two along one axis, every leaf hosts a Pane.
// Panes are inserted next to an existing pane (or by path from the root),
// removed with sibling promotion, and swapped in place. Focus moves between
// panes by direction; reversing a move returns to the exact pane focus came
// from, using a bounded history of recent moves.
//
// The Mux itself is a runtime.Focusable widget, so a host lays it out and
// renders it like any other widget. It is not safe for concurrent use;
// hosts drive it from their event loop.
package mux
