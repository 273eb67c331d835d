// Package term is a reference implementation of runtime.Frontend: a
// demo terminal driver built on pterm for styled output, good enough to
// give cmd/synless something to run against. It is explicitly not part
// of the editor core (spec.md §1 leaves the real terminal/rendering
// layer out of scope) — a production frontend is free to replace it
// wholesale without touching runtime, pretty, or pane.
package term

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/synless-editor/synless/pretty"
	"github.com/synless-editor/synless/runtime"
)

// Term drives an ANSI terminal: cursor-addressed writes via pterm's
// styling, one-rune-at-a-time input translated into runtime.Event.
type Term struct {
	in         *bufio.Reader
	cols, rows int
	events     chan runtime.Event
}

// New builds a Term sized from $COLUMNS/$LINES if set, falling back to
// 80x24 (no terminal-size query library is part of this module's
// dependency set; gorgo's trepl.go, this package's closest precedent,
// never queries terminal size either — it only ever prints sequentially).
func New() *Term {
	t := &Term{
		in:     bufio.NewReader(os.Stdin),
		cols:   envInt("COLUMNS", 80),
		rows:   envInt("LINES", 24),
		events: make(chan runtime.Event),
	}
	go t.readLoop()
	return t
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// StartFrame clears the screen and homes the cursor.
func (t *Term) StartFrame() {
	fmt.Print("\033[2J\033[H")
}

// EndFrame is a no-op: every Print already wrote directly to the
// terminal, there is no back buffer to flush.
func (t *Term) EndFrame() {}

// Size reports the terminal dimensions resolved at construction.
func (t *Term) Size() (cols, rows int) { return t.cols, t.rows }

func moveTo(pos pretty.Pos) {
	fmt.Printf("\033[%d;%dH", pos.Row+1, pos.Col+1)
}

// Print writes text at pos, styled via style if it is a *pterm.Style.
func (t *Term) Print(pos pretty.Pos, text string, style pretty.Style) {
	moveTo(pos)
	if s, ok := style.(*pterm.Style); ok && s != nil {
		s.Print(text)
		return
	}
	pterm.Print(text)
}

// Shade paints a background tint over region; pterm has no partial-cell
// background primitive, so this demo frontend just leaves the region
// untouched (a production frontend with real cell-level control would
// implement this properly).
func (t *Term) Shade(region pretty.Region, shade pretty.Shade) {}

// cursorStyle marks the cursor boundary, mirroring gorgo's
// trepl.go prefix styling (pterm.NewStyle(bg, fg)).
var cursorStyle = pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)

// Highlight draws the cursor boundary at pos as an inverted marker.
func (t *Term) Highlight(pos pretty.Pos, style pretty.Style) {
	moveTo(pos)
	cursorStyle.Print("|")
}

// NextEvent blocks up to timeout for the next translated key press.
func (t *Term) NextEvent(timeout time.Duration) (runtime.Event, bool) {
	select {
	case ev := <-t.events:
		return ev, true
	case <-time.After(timeout):
		return runtime.Event{}, false
	}
}

// readLoop translates raw stdin runes into runtime.Events, one at a time,
// and feeds them to NextEvent's channel. A handful of control characters
// become named keys; everything else is a plain character key.
func (t *Term) readLoop() {
	for {
		r, _, err := t.in.ReadRune()
		if err != nil {
			return
		}
		t.events <- runtime.Event{Kind: runtime.EventKey, Key: translateRune(r)}
	}
}

func translateRune(r rune) runtime.Key {
	switch r {
	case '\r', '\n':
		return runtime.Key{Named: "Return"}
	case 127, 8:
		return runtime.Key{Named: "Backspace"}
	case '\t':
		return runtime.Key{Named: "Tab"}
	case 27:
		return runtime.Key{Named: "Esc"}
	case 3:
		return runtime.Key{Char: 'c', Ctrl: true}
	}
	if r < 32 {
		return runtime.Key{Char: r + 'a' - 1, Ctrl: true}
	}
	return runtime.Key{Char: r}
}
