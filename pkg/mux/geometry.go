package mux

import "strconv"

// Orientation is the axis a split divides its rectangle along.
type Orientation uint8

const (
	// Horizontal splits place children side by side, first on the left.
	Horizontal Orientation = iota
	// Vertical splits stack children, first on top.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction is a screen direction for focus moves and resizes.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

var directionNames = [...]string{"left", "right", "up", "down"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "direction(" + strconv.Itoa(int(d)) + ")"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Orientation returns the axis d moves along.
func (d Direction) Orientation() Orientation {
	if d == Up || d == Down {
		return Vertical
	}
	return Horizontal
}

// forward reports whether d points toward the second child of a split on
// its axis.
func (d Direction) forward() bool {
	return d == Right || d == Down
}

// ParseDirection parses "left", "right", "up" or "down".
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return 0, false
}

// Side selects where a new pane goes relative to its anchor.
type Side uint8

const (
	// Before places the new pane left of or above the anchor.
	Before Side = iota
	// After places the new pane right of or below the anchor.
	After
)

func (s Side) String() string {
	if s == Before {
		return "before"
	}
	return "after"
}
