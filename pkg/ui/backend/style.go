package backend

// Color is a terminal color. 0-255 are palette entries; RGB colors carry
// the rgbFlag bit.
type Color int32

const rgbFlag Color = 0x01000000

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7
	ColorGray    Color = 8
)

// ColorRGB creates a true color.
func ColorRGB(r, g, b uint8) Color {
	return Color(int32(r)<<16|int32(g)<<8|int32(b)) | rgbFlag
}

// IsRGB reports whether c is a true color.
func (c Color) IsRGB() bool {
	return c != ColorDefault && c&rgbFlag != 0
}

// RGB returns the components of a true color, or zeros for palette colors.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// AttrMask is a set of text attributes.
type AttrMask uint32

const (
	AttrBold AttrMask = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
	AttrBlink
	AttrStrikeThrough
)

// Style combines colors and attributes. The zero Style is not the default
// style; use DefaultStyle.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns default colors with no attributes.
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// Foreground returns s with the foreground color replaced.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background returns s with the background color replaced.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// With returns s with the given attributes switched on.
func (s Style) With(attrs AttrMask) Style {
	s.attrs |= attrs
	return s
}

// Without returns s with the given attributes switched off.
func (s Style) Without(attrs AttrMask) Style {
	s.attrs &^= attrs
	return s
}

// Bold toggles bold.
func (s Style) Bold(on bool) Style { return s.toggle(AttrBold, on) }

// Reverse toggles reverse video.
func (s Style) Reverse(on bool) Style { return s.toggle(AttrReverse, on) }

// Dim toggles dim.
func (s Style) Dim(on bool) Style { return s.toggle(AttrDim, on) }

func (s Style) toggle(a AttrMask, on bool) Style {
	if on {
		return s.With(a)
	}
	return s.Without(a)
}

// Decompose returns the foreground, background, and attributes.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}
