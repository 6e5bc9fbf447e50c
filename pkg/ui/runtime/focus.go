package runtime

import "slices"

// FocusScope tracks the focused widget among a set of focusables.
type FocusScope struct {
	widgets []Focusable
	current int // -1 if none
}

// NewFocusScope creates an empty focus scope.
func NewFocusScope() *FocusScope {
	return &FocusScope{current: -1}
}

// Register adds a focusable widget to the scope. The first widget that
// accepts focus receives it.
func (f *FocusScope) Register(w Focusable) {
	if slices.Contains(f.widgets, w) {
		return
	}
	f.widgets = append(f.widgets, w)
	if f.current == -1 && w.CanFocus() {
		f.focusIndex(len(f.widgets) - 1)
	}
}

// Unregister removes a widget from the scope, moving focus on if needed.
func (f *FocusScope) Unregister(w Focusable) {
	i := slices.Index(f.widgets, w)
	if i < 0 {
		return
	}
	switch {
	case f.current == i:
		w.Blur()
		f.current = -1
	case f.current > i:
		f.current--
	}
	f.widgets = slices.Delete(f.widgets, i, i+1)
	if f.current == -1 {
		f.FocusNext()
	}
}

// Current returns the focused widget, or nil.
func (f *FocusScope) Current() Focusable {
	if f.current >= 0 && f.current < len(f.widgets) {
		return f.widgets[f.current]
	}
	return nil
}

// SetFocus focuses a registered widget. Returns true if focus changed.
func (f *FocusScope) SetFocus(w Focusable) bool {
	i := slices.Index(f.widgets, w)
	if i < 0 || !w.CanFocus() {
		return false
	}
	return f.focusIndex(i)
}

// FocusNext moves focus forward, wrapping around.
func (f *FocusScope) FocusNext() bool {
	return f.step(1)
}

// FocusPrev moves focus backward, wrapping around.
func (f *FocusScope) FocusPrev() bool {
	return f.step(-1)
}

// Count returns the number of registered widgets.
func (f *FocusScope) Count() int {
	return len(f.widgets)
}

func (f *FocusScope) step(delta int) bool {
	n := len(f.widgets)
	if n == 0 {
		return false
	}
	start := f.current
	if start < 0 && delta < 0 {
		start = n
	}
	for i := 1; i <= n; i++ {
		idx := ((start+delta*i)%n + n) % n
		if f.widgets[idx].CanFocus() {
			return f.focusIndex(idx)
		}
	}
	return false
}

func (f *FocusScope) focusIndex(i int) bool {
	if i == f.current {
		return false
	}
	if prev := f.Current(); prev != nil {
		prev.Blur()
	}
	f.current = i
	f.widgets[i].Focus()
	return true
}
