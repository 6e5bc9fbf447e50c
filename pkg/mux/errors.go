package mux

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is returned when a path ends on a split or crosses
	// structure that does not exist.
	ErrInvalidPath = errors.New("path does not match the tree")

	// ErrInvalidID is returned for IDs that are not attached to the tree.
	ErrInvalidID = errors.New("id is not attached to the tree")

	// ErrNilPane is returned when inserting a nil pane.
	ErrNilPane = errors.New("pane is nil")

	// ErrNoSibling is returned when removing the only pane.
	ErrNoSibling = errors.New("pane has no sibling")

	// ErrNoParent is returned when switching the root.
	ErrNoParent = errors.New("node has no parent")

	// ErrNested is returned when switching a node with its own ancestor.
	ErrNested = errors.New("nodes are nested")

	// ErrInternal reports a broken tree invariant.
	ErrInternal = errors.New("tree invariant violated")
)

// InsertError describes a failed insertion. Err is one of ErrInvalidPath,
// ErrInvalidID, ErrNilPane or ErrInternal.
type InsertError struct {
	Anchor ID
	Err    error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("insert at %s: %v", e.Anchor, e.Err)
}

func (e *InsertError) Unwrap() error {
	return e.Err
}

// RemoveError describes a failed removal. Err is ErrInvalidID or ErrNoSibling.
type RemoveError struct {
	ID  ID
	Err error
}

func (e *RemoveError) Error() string {
	return fmt.Sprintf("remove %s: %v", e.ID, e.Err)
}

func (e *RemoveError) Unwrap() error {
	return e.Err
}

// SwitchError describes a failed switch. Err is ErrNoParent, ErrInvalidID
// or ErrNested.
type SwitchError struct {
	A, B ID
	Err  error
}

func (e *SwitchError) Error() string {
	return fmt.Sprintf("switch %s and %s: %v", e.A, e.B, e.Err)
}

func (e *SwitchError) Unwrap() error {
	return e.Err
}
