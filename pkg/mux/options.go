package mux

import (
	"io"
	"log/slog"
)

const (
	// DefaultHistoryCapacity bounds the focus history.
	DefaultHistoryCapacity = 50
	// DefaultMinExtent is the smallest extent, in cells, either side of a
	// split may shrink to.
	DefaultMinExtent = 3
	// DefaultSplitRatio places the divider of new splits in the middle.
	DefaultSplitRatio = 0.5
)

// Option configures a Mux.
type Option func(*Mux)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mux) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithObserver registers an observer for focus, resize and tree events.
func WithObserver(o Observer) Option {
	return func(m *Mux) {
		if o != nil {
			m.observer = o
		}
	}
}

// WithBindings replaces the key bindings.
func WithBindings(b Bindings) Option {
	return func(m *Mux) {
		m.bindings = b.Clone()
	}
}

// WithHistoryCapacity bounds the focus history. Zero disables history.
func WithHistoryCapacity(n int) Option {
	return func(m *Mux) {
		m.history = newHistory(max(0, n))
	}
}

// WithMinExtent sets the minimum extent of a split side. Values below 1
// are raised to 1.
func WithMinExtent(n int) Option {
	return func(m *Mux) {
		m.minExtent = max(1, n)
	}
}

// WithDefaultSplitRatio sets the divider position of new splits. Ratios outside
// (0, 1) are ignored.
func WithDefaultSplitRatio(r float64) Option {
	return func(m *Mux) {
		if r > 0 && r < 1 {
			m.ratio = r
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
