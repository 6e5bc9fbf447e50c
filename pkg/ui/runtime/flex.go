package runtime

// FlexDirection specifies the main axis of a flex container.
type FlexDirection int

const (
	Column FlexDirection = iota // Vertical (VBox)
	Row                         // Horizontal (HBox)
)

// FlexChild wraps a widget with flex layout properties.
type FlexChild struct {
	Widget Widget
	Grow   int // Share of leftover space; 0 keeps the measured size
}

// Fixed creates a child that keeps its measured size.
func Fixed(w Widget) FlexChild {
	return FlexChild{Widget: w}
}

// Expanded creates a child that fills leftover space.
func Expanded(w Widget) FlexChild {
	return FlexChild{Widget: w, Grow: 1}
}

// Flex lays out children along an axis.
type Flex struct {
	Direction FlexDirection
	Children  []FlexChild

	bounds      Rect
	childBounds []Rect
}

// VBox creates a vertical flex container.
func VBox(children ...FlexChild) *Flex {
	return &Flex{Direction: Column, Children: children}
}

// HBox creates a horizontal flex container.
func HBox(children ...FlexChild) *Flex {
	return &Flex{Direction: Row, Children: children}
}

// Measure returns the full constraint size; flex containers fill their parent.
func (f *Flex) Measure(constraints Constraints) Size {
	return constraints.MaxSize()
}

// Layout splits bounds between children. Fixed children get their measured
// main-axis extent first, growing children share the remainder.
func (f *Flex) Layout(bounds Rect) {
	f.bounds = bounds
	f.childBounds = make([]Rect, len(f.Children))

	mainTotal := bounds.Height
	if f.Direction == Row {
		mainTotal = bounds.Width
	}

	extents := make([]int, len(f.Children))
	remaining := mainTotal
	totalGrow := 0
	for i, child := range f.Children {
		if child.Grow > 0 {
			totalGrow += child.Grow
			continue
		}
		size := child.Widget.Measure(Loose(bounds.Width, bounds.Height))
		extent := size.Height
		if f.Direction == Row {
			extent = size.Width
		}
		extents[i] = clamp(extent, 0, remaining)
		remaining -= extents[i]
	}
	if totalGrow > 0 {
		shared := remaining
		last := -1
		for i, child := range f.Children {
			if child.Grow > 0 {
				extents[i] = shared * child.Grow / totalGrow
				remaining -= extents[i]
				last = i
			}
		}
		extents[last] += remaining
	}

	offset := 0
	for i, child := range f.Children {
		r := Rect{X: bounds.X, Y: bounds.Y + offset, Width: bounds.Width, Height: extents[i]}
		if f.Direction == Row {
			r = Rect{X: bounds.X + offset, Y: bounds.Y, Width: extents[i], Height: bounds.Height}
		}
		offset += extents[i]
		f.childBounds[i] = r
		child.Widget.Layout(r)
	}
}

// Render draws each child in its bounds.
func (f *Flex) Render(ctx RenderContext) {
	for i, child := range f.Children {
		if i < len(f.childBounds) {
			child.Widget.Render(ctx.Sub(f.childBounds[i]))
		}
	}
}

// HandleMessage routes mouse messages to the child under the pointer and
// offers everything else to children in order.
func (f *Flex) HandleMessage(msg Message) HandleResult {
	if m, ok := msg.(MouseMsg); ok {
		for i, r := range f.childBounds {
			if r.Contains(m.X, m.Y) {
				return f.Children[i].Widget.HandleMessage(msg)
			}
		}
		return Unhandled()
	}
	for _, child := range f.Children {
		if result := child.Widget.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return Unhandled()
}

// ChildBounds returns the rect assigned to child i by the last layout.
func (f *Flex) ChildBounds(i int) Rect {
	if i < 0 || i >= len(f.childBounds) {
		return Rect{}
	}
	return f.childBounds[i]
}
