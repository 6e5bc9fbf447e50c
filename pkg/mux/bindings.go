package mux

import (
	"fmt"
	"maps"
	"strings"
	"unicode/utf8"

	"github.com/odvcencio/tilemux/pkg/ui/runtime"
	"github.com/odvcencio/tilemux/pkg/ui/terminal"
)

// Action is a mux command a key binding can trigger.
type Action uint8

const (
	ActionNone Action = iota
	ActionFocusLeft
	ActionFocusRight
	ActionFocusUp
	ActionFocusDown
	ActionResizeLeft
	ActionResizeRight
	ActionResizeUp
	ActionResizeDown
	ActionZoom
)

var actionNames = map[Action]string{
	ActionFocusLeft:   "focus-left",
	ActionFocusRight:  "focus-right",
	ActionFocusUp:     "focus-up",
	ActionFocusDown:   "focus-down",
	ActionResizeLeft:  "resize-left",
	ActionResizeRight: "resize-right",
	ActionResizeUp:    "resize-up",
	ActionResizeDown:  "resize-down",
	ActionZoom:        "zoom",
}

// Actions lists every bindable action in a stable order.
func Actions() []Action {
	return []Action{
		ActionFocusLeft, ActionFocusRight, ActionFocusUp, ActionFocusDown,
		ActionResizeLeft, ActionResizeRight, ActionResizeUp, ActionResizeDown,
		ActionZoom,
	}
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction resolves a name such as "focus-left".
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// focusAction returns the focus action moving in d.
func focusAction(d Direction) Action {
	return ActionFocusLeft + Action(d)
}

// resizeAction returns the resize action toward d.
func resizeAction(d Direction) Action {
	return ActionResizeLeft + Action(d)
}

// direction returns the direction of a focus or resize action.
func (a Action) direction() (Direction, bool) {
	switch {
	case a >= ActionFocusLeft && a <= ActionFocusDown:
		return Direction(a - ActionFocusLeft), true
	case a >= ActionResizeLeft && a <= ActionResizeDown:
		return Direction(a - ActionResizeLeft), true
	}
	return 0, false
}

// KeyPattern matches a key press with an exact set of modifiers.
type KeyPattern struct {
	Key   terminal.Key
	Rune  rune // compared only when Key is terminal.KeyRune
	Alt   bool
	Ctrl  bool
	Shift bool
}

// Matches reports whether msg is this key with exactly these modifiers.
func (p KeyPattern) Matches(msg runtime.KeyMsg) bool {
	if p.Key == terminal.KeyNone || p.Key != msg.Key {
		return false
	}
	if p.Key == terminal.KeyRune && p.Rune != msg.Rune {
		return false
	}
	return p.Alt == msg.Alt && p.Ctrl == msg.Ctrl && p.Shift == msg.Shift
}

// String formats the pattern as ParseKeyPattern accepts it.
func (p KeyPattern) String() string {
	var parts []string
	if p.Ctrl {
		parts = append(parts, "ctrl")
	}
	if p.Alt {
		parts = append(parts, "alt")
	}
	if p.Shift {
		parts = append(parts, "shift")
	}
	if p.Key == terminal.KeyRune {
		parts = append(parts, string(p.Rune))
	} else {
		parts = append(parts, terminal.KeyName(p.Key))
	}
	return strings.Join(parts, "+")
}

// ParseKeyPattern parses bindings such as "alt+left", "ctrl+x" or "f2".
// Modifier and key names are case-insensitive; single characters bind runes.
func ParseKeyPattern(s string) (KeyPattern, error) {
	var p KeyPattern
	parts := strings.Split(strings.TrimSpace(s), "+")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return KeyPattern{}, fmt.Errorf("key pattern %q: empty component", s)
		}
		if i < len(parts)-1 {
			switch strings.ToLower(part) {
			case "ctrl", "control":
				p.Ctrl = true
			case "alt", "meta":
				p.Alt = true
			case "shift":
				p.Shift = true
			default:
				return KeyPattern{}, fmt.Errorf("key pattern %q: unknown modifier %q", s, part)
			}
			continue
		}
		if utf8.RuneCountInString(part) == 1 {
			r, _ := utf8.DecodeRuneInString(part)
			p.Key = terminal.KeyRune
			p.Rune = r
			if p.Ctrl {
				p.Rune = toLowerASCII(r)
			}
			continue
		}
		key, ok := terminal.KeyByName(part)
		if !ok {
			return KeyPattern{}, fmt.Errorf("key pattern %q: unknown key %q", s, part)
		}
		p.Key = key
	}
	return p, nil
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Bindings maps actions to the key that triggers them. Unbound actions are
// absent.
type Bindings map[Action]KeyPattern

// DefaultBindings moves focus with alt+arrows, resizes with ctrl+arrows and
// toggles zoom with ctrl+x.
func DefaultBindings() Bindings {
	b := Bindings{ActionZoom: {Key: terminal.KeyRune, Rune: 'x', Ctrl: true}}
	arrows := map[Direction]terminal.Key{
		Left:  terminal.KeyLeft,
		Right: terminal.KeyRight,
		Up:    terminal.KeyUp,
		Down:  terminal.KeyDown,
	}
	for d, key := range arrows {
		b[focusAction(d)] = KeyPattern{Key: key, Alt: true}
		b[resizeAction(d)] = KeyPattern{Key: key, Ctrl: true}
	}
	return b
}

// Clone returns a copy of b.
func (b Bindings) Clone() Bindings {
	return maps.Clone(b)
}

// Lookup returns the action bound to msg, checking actions in a fixed order.
func (b Bindings) Lookup(msg runtime.KeyMsg) Action {
	for _, a := range Actions() {
		if p, ok := b[a]; ok && p.Matches(msg) {
			return a
		}
	}
	return ActionNone
}
