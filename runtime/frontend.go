// Package runtime implements the editor runtime of spec.md §4.H: the
// single-threaded event loop binding together the command engine, the
// layer stack, a frontend, and a static pane layout template.
package runtime

import (
	"time"

	"github.com/synless-editor/synless/pretty"
)

// EventKind distinguishes the four event shapes spec.md §6 names.
type EventKind int

const (
	EventKey EventKind = iota
	EventResize
	EventMouse
	EventPaste
)

// Event is one frontend-delivered input event.
type Event struct {
	Kind  EventKind
	Key   Key    // EventKey
	Mouse Pos    // EventMouse
	Paste string // EventPaste
}

// Key mirrors keymap.Key's shape at the frontend boundary, avoiding a
// frontend → keymap import; Editor translates between the two.
type Key struct {
	Char  rune
	Named string
	Ctrl  bool
	Alt   bool
	Shift bool
}

// Pos is an absolute screen position.
type Pos struct{ Col, Row int }

// Frontend is the external I/O contract of spec.md §6: start/end a frame,
// draw into it via the embedded pretty.Screen shape, report terminal size,
// and block for the next input event up to timeout (a zero Event, ok=false
// on timeout so the loop can service its periodic ~1s wake reason).
type Frontend interface {
	pretty.Screen
	StartFrame()
	EndFrame()
	Size() (cols, rows int)
	NextEvent(timeout time.Duration) (Event, bool)
}
