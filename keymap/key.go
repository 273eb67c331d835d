// Package keymap implements the keymap/layer stack of spec.md §4.G: a
// stack of named layers, each binding modifier-qualified keys to named
// programs or internal actions, merged front-to-back with per-binding
// context filters, plus a transient menu layer and a key-hints view.
package keymap

import (
	"fmt"
	"strings"
)

// Mods is a bitset of held modifiers.
type Mods int

const (
	Ctrl Mods = 1 << iota
	Alt
	Shift
)

func (m Mods) String() string {
	var b strings.Builder
	if m&Ctrl != 0 {
		b.WriteString("C-")
	}
	if m&Alt != 0 {
		b.WriteString("A-")
	}
	if m&Shift != 0 {
		b.WriteString("S-")
	}
	return b.String()
}

// Code is the key code: a plain character, or one of the Named constants.
type Code struct {
	Char  rune // 0 if Named is set
	Named string
}

// Named key codes (spec.md §6: "named keys include arrows, enter,
// backspace, tab, esc, function keys").
const (
	Up        = "Up"
	Down      = "Down"
	Left      = "Left"
	Right     = "Right"
	Enter     = "Return"
	Backspace = "Backspace"
	Tab       = "Tab"
	Esc       = "Esc"
)

// NamedCode builds a Code for a named key.
func NamedCode(name string) Code { return Code{Named: name} }

// CharCode builds a Code for a plain character.
func CharCode(ch rune) Code { return Code{Char: ch} }

func (c Code) String() string {
	if c.Named != "" {
		return c.Named
	}
	return string(c.Char)
}

// Key is a modifier-qualified key press, the unit bindings are keyed on.
type Key struct {
	Code Code
	Mods Mods
}

// String renders a Key in the "C-c" / "A-Return" form spec.md §6's parser
// accepts, and is also the sort/display key used for key hints.
func (k Key) String() string {
	return fmt.Sprintf("%s%s", k.Mods, k.Code)
}

// ParseKey parses the "C-c" / "A-Return" / "Return" forms spec.md §6
// describes.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, "-")
	var mods Mods
	for len(parts) > 1 {
		switch parts[0] {
		case "C":
			mods |= Ctrl
		case "A":
			mods |= Alt
		case "S":
			mods |= Shift
		default:
			return Key{}, fmt.Errorf("keymap: unknown modifier %q in %q", parts[0], s)
		}
		parts = parts[1:]
	}
	last := parts[0]
	switch last {
	case Up, Down, Left, Right, Enter, Backspace, Tab, Esc:
		return Key{Code: NamedCode(last), Mods: mods}, nil
	}
	if len([]rune(last)) != 1 {
		return Key{}, fmt.Errorf("keymap: invalid key code %q in %q", last, s)
	}
	return Key{Code: CharCode([]rune(last)[0]), Mods: mods}, nil
}
