package runtime

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tilemux/pkg/ui/backend"
)

// Cell represents a single character cell in the buffer.
type Cell struct {
	Rune  rune
	Style backend.Style

	// continuation marks the right half of a wide rune.
	continuation bool
}

// Continuation reports whether the cell is covered by the wide rune to its left.
func (c Cell) Continuation() bool { return c.continuation }

var blankCell = Cell{Rune: ' ', Style: backend.DefaultStyle()}

// Buffer is a 2D grid of cells. Widgets render to the buffer, then changed
// cells are flushed to the backend.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	dirty      []bool
	dirtyCount int
}

// NewBuffer creates a blank buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	w, h = max(0, w), max(0, h)
	b := &Buffer{
		cells:  make([]Cell, w*h),
		dirty:  make([]bool, w*h),
		width:  w,
		height: h,
	}
	for i := range b.cells {
		b.cells[i] = blankCell
	}
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Bounds returns the buffer area as a rect at the origin.
func (b *Buffer) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Resize changes the buffer dimensions, preserving overlapping content.
func (b *Buffer) Resize(w, h int) {
	if w == b.width && h == b.height {
		return
	}
	next := NewBuffer(w, h)
	for y := 0; y < min(h, b.height); y++ {
		copy(next.cells[y*w:y*w+min(w, b.width)], b.cells[y*b.width:])
	}
	*b = *next
	b.MarkAllDirty()
}

// Clear fills the buffer with blank cells.
func (b *Buffer) Clear() {
	b.Fill(b.Bounds(), ' ', backend.DefaultStyle())
}

// Get returns the cell at (x, y), or a blank cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blankCell
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune with style at (x, y). No-op if out of bounds.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	b.setCell(x, y, Cell{Rune: r, Style: s})
}

func (b *Buffer) setCell(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	if b.cells[idx] == c {
		return
	}
	b.cells[idx] = c
	if !b.dirty[idx] {
		b.dirty[idx] = true
		b.dirtyCount++
	}
}

// SetString writes s starting at (x, y), clipped to clip. Wide runes take
// two cells and are dropped when only one cell remains. Returns the number
// of columns written.
func (b *Buffer) SetString(x, y int, s string, style backend.Style, clip Rect) int {
	clip = clip.Intersection(b.Bounds())
	if y < clip.Y || y >= clip.Y+clip.Height {
		return 0
	}
	right := clip.X + clip.Width
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > right {
			break
		}
		if col >= clip.X {
			b.setCell(col, y, Cell{Rune: r, Style: style})
			if w == 2 {
				b.setCell(col+1, y, Cell{Rune: ' ', Style: style, continuation: true})
			}
		}
		col += w
	}
	return max(0, col-x)
}

// Fill fills a rectangular region with a rune and style.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	r = r.Intersection(b.Bounds())
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			b.Set(x, y, ch, s)
		}
	}
}

// DrawHLine draws a horizontal line of n cells starting at (x, y).
func (b *Buffer) DrawHLine(x, y, n int, s backend.Style) {
	for i := 0; i < n; i++ {
		b.Set(x+i, y, '─', s)
	}
}

// DrawVLine draws a vertical line of n cells starting at (x, y).
func (b *Buffer) DrawVLine(x, y, n int, s backend.Style) {
	for i := 0; i < n; i++ {
		b.Set(x, y+i, '│', s)
	}
}

// MarkAllDirty marks the entire buffer as dirty.
func (b *Buffer) MarkAllDirty() {
	for i := range b.dirty {
		b.dirty[i] = true
	}
	b.dirtyCount = len(b.dirty)
}

// ClearDirty resets all dirty flags.
func (b *Buffer) ClearDirty() {
	clear(b.dirty)
	b.dirtyCount = 0
}

// IsDirty returns true if any cells have changed.
func (b *Buffer) IsDirty() bool {
	return b.dirtyCount > 0
}

// DirtyCount returns the number of dirty cells.
func (b *Buffer) DirtyCount() int {
	return b.dirtyCount
}

// ForEachDirtyCell calls fn for each dirty cell in row-major order.
func (b *Buffer) ForEachDirtyCell(fn func(x, y int, cell Cell)) {
	if b.dirtyCount == 0 {
		return
	}
	for idx, d := range b.dirty {
		if d {
			fn(idx%b.width, idx/b.width, b.cells[idx])
		}
	}
}

// String renders the buffer as text, one line per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.continuation {
				continue
			}
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
