package mux

import "strconv"

// ID identifies a node in a Mux. IDs are never reused, so a stale ID fails
// lookups instead of aliasing a newer node.
type ID uint64

// NoID is the zero ID. It never refers to a node.
const NoID ID = 0

// Valid reports whether id could refer to a node.
func (id ID) Valid() bool {
	return id != NoID
}

func (id ID) String() string {
	if id == NoID {
		return "none"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}
