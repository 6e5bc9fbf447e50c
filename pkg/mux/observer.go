package mux

import "time"

// Outcome is the result of a navigation or resize request.
type Outcome uint8

const (
	// Ignored means nothing changed; the host may try other bindings.
	Ignored Outcome = iota
	// Handled means focus or geometry changed.
	Handled
)

func (o Outcome) String() string {
	if o == Handled {
		return "handled"
	}
	return "ignored"
}

// TreeOp names a structural mutation.
type TreeOp uint8

const (
	OpInsert TreeOp = iota
	OpRemove
	OpSwitch
)

func (op TreeOp) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	default:
		return "switch"
	}
}

// Observer receives engine events. Implementations must not call back into
// the Mux.
type Observer interface {
	FocusMoved(d Direction, outcome Outcome, viaHistory bool)
	Resized(d Direction, outcome Outcome)
	TreeChanged(op TreeOp, leaves int)
	ZoomToggled(zoomed bool)
	LaidOut(elapsed time.Duration)
}

//go:generate mockgen -package=mux -destination=mock_observer_test.go github.com/odvcencio/tilemux/pkg/mux Observer

type nopObserver struct{}

func (nopObserver) FocusMoved(Direction, Outcome, bool) {}
func (nopObserver) Resized(Direction, Outcome)          {}
func (nopObserver) TreeChanged(TreeOp, int)             {}
func (nopObserver) ZoomToggled(bool)                    {}
func (nopObserver) LaidOut(time.Duration)               {}
