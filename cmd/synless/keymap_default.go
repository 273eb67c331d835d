package main

import (
	"github.com/synless-editor/synless/keymap"
	"github.com/synless-editor/synless/script"
)

// defaultPrograms are the one-line Starlark scripts backing the default
// layer's key bindings: the keymap only ever names a program (spec.md
// §4.G), so even built-in navigation/editing keys go through the
// scripting host rather than calling the command API directly.
var defaultPrograms = map[string]string{
	"nav-prev":         "prev()\n",
	"nav-next":         "next()\n",
	"nav-parent":       "parent()\n",
	"nav-first-child":  "first_child()\n",
	"edit-backspace":   "backspace()\n",
	"edit-enter-text":  "enter_text()\n",
	"edit-exit-text":   "exit_text()\n",
	"edit-undo":        "undo()\n",
	"edit-redo":        "redo()\n",
	"edit-copy":        "copy()\n",
	"edit-cut":         "cut()\n",
	"edit-paste":       "paste()\n",
	"text-left":        "text_left()\n",
	"text-right":       "text_right()\n",
	"text-backspace":   "text_backspace()\n",
}

// buildDefaultLayer registers every program in defaultPrograms on h and
// returns a vim-flavored layer binding them, plus per-character
// ActionInsertChar bindings across the printable ASCII range for text
// mode (spec.md §4.H's InsertChar(c) variant carries the pressed
// character itself; the binding only needs to exist so the key isn't an
// unbound miss).
func buildDefaultLayer(h *script.Host) *keymap.Layer {
	for name, src := range defaultPrograms {
		h.Register(name, src)
	}

	l := keymap.NewLayer("default")

	l.BindTree(keymap.Key{Code: keymap.NamedCode(keymap.Left)}, keymap.Binding{Program: "nav-prev"})
	l.BindTree(keymap.Key{Code: keymap.NamedCode(keymap.Right)}, keymap.Binding{Program: "nav-next"})
	l.BindTree(keymap.Key{Code: keymap.NamedCode(keymap.Up)}, keymap.Binding{Program: "nav-parent"})
	l.BindTree(keymap.Key{Code: keymap.NamedCode(keymap.Down)}, keymap.Binding{Program: "nav-first-child"})
	l.BindTree(keymap.Key{Code: keymap.NamedCode(keymap.Backspace)}, keymap.Binding{Program: "edit-backspace"})
	l.BindTree(keymap.Key{Code: keymap.NamedCode(keymap.Enter)}, keymap.Binding{Program: "edit-enter-text"})
	l.BindTree(keymap.Key{Code: keymap.CharCode('u')}, keymap.Binding{Program: "edit-undo"})
	l.BindTree(keymap.Key{Code: keymap.CharCode('U')}, keymap.Binding{Program: "edit-redo"})
	l.BindTree(keymap.Key{Code: keymap.CharCode('y')}, keymap.Binding{Program: "edit-copy"})
	l.BindTree(keymap.Key{Code: keymap.CharCode('d')}, keymap.Binding{Program: "edit-cut"})
	l.BindTree(keymap.Key{Code: keymap.CharCode('p')}, keymap.Binding{Program: "edit-paste"})

	l.BindText(keymap.Key{Code: keymap.NamedCode(keymap.Esc)}, keymap.Binding{Program: "edit-exit-text"})
	l.BindText(keymap.Key{Code: keymap.NamedCode(keymap.Left)}, keymap.Binding{Program: "text-left"})
	l.BindText(keymap.Key{Code: keymap.NamedCode(keymap.Right)}, keymap.Binding{Program: "text-right"})
	l.BindText(keymap.Key{Code: keymap.NamedCode(keymap.Backspace)}, keymap.Binding{Program: "text-backspace"})
	for ch := rune(32); ch <= 126; ch++ {
		l.BindText(keymap.Key{Code: keymap.CharCode(ch)}, keymap.Binding{Action: keymap.ActionInsertChar})
	}

	return l
}
