package mux

// move is one completed focus move.
type move struct {
	from, to  ID
	direction Direction
}

// history is a bounded FIFO of focus moves, newest last.
type history struct {
	moves    []move
	capacity int
}

func newHistory(capacity int) *history {
	return &history{capacity: capacity}
}

func (h *history) push(mv move) {
	if h.capacity == 0 {
		return
	}
	if len(h.moves) == h.capacity {
		copy(h.moves, h.moves[1:])
		h.moves = h.moves[:len(h.moves)-1]
	}
	h.moves = append(h.moves, mv)
}

// reverse finds the newest move into origin made in the opposite of d and
// returns where it started. skip rejects candidates already tried.
func (h *history) reverse(origin ID, d Direction, skip func(ID) bool) (ID, bool) {
	want := d.Opposite()
	for i := len(h.moves) - 1; i >= 0; i-- {
		mv := h.moves[i]
		if mv.to == origin && mv.direction == want && !skip(mv.from) {
			return mv.from, true
		}
	}
	return NoID, false
}

// forget drops every move that touches id.
func (h *history) forget(id ID) {
	kept := h.moves[:0]
	for _, mv := range h.moves {
		if mv.from != id && mv.to != id {
			kept = append(kept, mv)
		}
	}
	clear(h.moves[len(kept):])
	h.moves = kept
}

func (h *history) len() int {
	return len(h.moves)
}
