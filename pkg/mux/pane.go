package mux

import "github.com/odvcencio/tilemux/pkg/ui/runtime"

// Pane is the content hosted by a leaf. Panes that also implement
// runtime.Focusable are told through Focus and Blur when they gain or lose
// the mux focus.
type Pane interface {
	runtime.Widget

	// CanFocus reports whether the pane currently accepts focus.
	CanFocus() bool
}

//go:generate mockgen -package=mux -destination=mock_pane_test.go github.com/odvcencio/tilemux/pkg/mux Pane
