// Package theme provides the named styles used to draw panes and chrome.
package theme

import "github.com/odvcencio/tilemux/pkg/ui/backend"

// Theme defines the visual language for the multiplexer.
type Theme struct {
	// Pane content
	PaneText    backend.Style
	PaneTextDim backend.Style
	PaneTitle   backend.Style

	// Separators between sibling panes
	Separator      backend.Style
	SeparatorFocus backend.Style

	// Chrome
	StatusBar backend.Style
	ZoomBadge backend.Style
	Error     backend.Style
}

// DefaultTheme returns the default dark theme.
func DefaultTheme() *Theme {
	base := backend.DefaultStyle()
	return &Theme{
		PaneText:    base.Foreground(backend.ColorRGB(240, 238, 232)),
		PaneTextDim: base.Foreground(backend.ColorRGB(100, 98, 92)),
		PaneTitle:   base.Foreground(backend.ColorRGB(255, 183, 77)).Bold(true),

		Separator:      base.Foreground(backend.ColorRGB(50, 50, 60)),
		SeparatorFocus: base.Foreground(backend.ColorRGB(255, 183, 77)),

		StatusBar: base.Foreground(backend.ColorRGB(160, 158, 150)).Background(backend.ColorRGB(22, 22, 28)),
		ZoomBadge: base.Foreground(backend.ColorRGB(12, 12, 16)).Background(backend.ColorRGB(255, 183, 77)).Bold(true),
		Error:     base.Foreground(backend.ColorRGB(255, 110, 90)),
	}
}

// Monochrome returns a theme that relies on attributes only, for terminals
// without color.
func Monochrome() *Theme {
	base := backend.DefaultStyle()
	return &Theme{
		PaneText:       base,
		PaneTextDim:    base.Dim(true),
		PaneTitle:      base.Bold(true),
		Separator:      base.Dim(true),
		SeparatorFocus: base.Bold(true),
		StatusBar:      base.Reverse(true),
		ZoomBadge:      base.Reverse(true).Bold(true),
		Error:          base.Bold(true),
	}
}

// ByName returns a built-in theme. Unknown names yield false.
func ByName(name string) (*Theme, bool) {
	switch name {
	case "", "default", "dark":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return Monochrome(), true
	default:
		return nil, false
	}
}
