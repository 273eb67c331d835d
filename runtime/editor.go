package runtime

import (
	"strings"
	"time"

	"github.com/synless-editor/synless/engine"
	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/internal/statusline"
	"github.com/synless-editor/synless/keymap"
	"github.com/synless-editor/synless/loc"
	"github.com/synless-editor/synless/pane"
	"github.com/synless-editor/synless/pretty"
	"github.com/synless-editor/synless/script"
	"github.com/synless-editor/synless/synlesserr"
)

// ScriptHost hands a named program off to the scripting host (spec.md §9,
// concretely implemented by *script.Host). RunProgram returns once the
// program either finishes or blocks on block_on_key(); while Blocked, the
// event loop routes every subsequent key straight to BlockOnKey instead of
// the ordinary keymap lookup, resuming the program where it left off.
type ScriptHost interface {
	RunProgram(name string) error
	Blocked() bool
	BlockOnKey(k script.Key) error
}

// Editor is the single-threaded runtime state of spec.md §4.H.
type Editor struct {
	Engine   *engine.Engine
	Layers   *keymap.LayerStack
	MenuHost *keymap.MenuHost
	Frontend Frontend
	Script   ScriptHost

	// PaneNotation is the static layout template resolved every
	// redisplay.
	PaneNotation pane.Notation

	// VisibleDoc is the name of the document currently receiving
	// tree/text-mode key presses.
	VisibleDoc string

	messages *Messages
	recent   *RecentEvents

	// pollInterval bounds how long NextEvent blocks before returning
	// ok=false, so timers (log flush, pending-state redisplay) can fire
	// even with no input (spec.md §5: "periodic timeout (≈1s)").
	pollInterval time.Duration
}

// NewEditor wires together an already-constructed engine, layer stack, and
// frontend into a runtime.
func NewEditor(e *engine.Engine, layers *keymap.LayerStack, fe Frontend) *Editor {
	ed := &Editor{
		Engine:       e,
		Layers:       layers,
		MenuHost:     keymap.NewMenuHost(layers),
		Frontend:     fe,
		messages:     NewMessages(),
		recent:       newRecentEvents(16),
		pollInterval: time.Second,
	}
	return ed
}

// RecentEvents returns the most recent mouse/paste events observed, oldest
// first, capacity 16 (SPEC_FULL.md's supplemented feature from
// original_source/frontends/src/terminal.rs: these are recorded for future
// scripting access even though neither is wired to an editing action).
func (ed *Editor) RecentEvents() []Event {
	return ed.recent.snapshot()
}

// Messages returns the runtime's Messages auxiliary document.
func (ed *Editor) Messages() *Messages { return ed.messages }

// Execute implements script.Commands, binding every scripted command to
// whatever document is currently visible.
func (ed *Editor) Execute(cmd engine.Command) error {
	return ed.Engine.Execute(ed.VisibleDoc, cmd)
}

// Run drives the event loop until stop is closed or a hard Abort is
// raised, per spec.md §4.H's pseudocode.
func (ed *Editor) Run(stop <-chan struct{}) error {
	for {
		ed.redisplay()
		select {
		case <-stop:
			return nil
		default:
		}
		ev, ok := ed.Frontend.NextEvent(ed.pollInterval)
		if !ok {
			continue // timeout: loop back to redisplay for pending-state updates
		}
		if err := ed.handle(ev); err != nil {
			if synlesserr.Is(err, synlesserr.KindAbort) {
				return err
			}
			statusline.Error(err)
			ed.messages.Report(err.Error())
		}
	}
}

func (ed *Editor) handle(ev Event) error {
	switch ev.Kind {
	case EventResize:
		return nil
	case EventMouse, EventPaste:
		ed.recent.record(ev)
		return nil
	case EventKey:
		return ed.handleKey(ev.Key)
	}
	return nil
}

// handleKey implements spec.md §4.H's per-key dispatch.
func (ed *Editor) handleKey(k Key) error {
	if k.Ctrl && (k.Char == 'c' || k.Char == 'C') {
		return synlesserr.New(synlesserr.KindAbort, errAbort)
	}

	if ed.Script != nil && ed.Script.Blocked() {
		return ed.Script.BlockOnKey(toScriptKey(k))
	}

	kk := toKeymapKey(k)
	mode, ctx := ed.lookupContext()
	b, ok := ed.Layers.Lookup(mode, ctx, kk)
	if !ok {
		return nil // keymap miss: no error, no action (spec.md §7)
	}

	if b.IsProgram() {
		if mode != keymap.Text {
			if _, open := ed.MenuHost.Current(); !open {
				ed.Engine.Execute(ed.VisibleDoc, engine.EndGroup())
			}
		}
		if ed.Script == nil {
			return synlesserr.Newf(synlesserr.KindKeymap, "runtime: no scripting host bound for program %q", b.Program)
		}
		return ed.Script.RunProgram(b.Program)
	}

	switch b.Action {
	case keymap.ActionInsertChar:
		return ed.Engine.Execute(ed.VisibleDoc, engine.TextInsert(k.Char))
	case keymap.ActionRedisplay:
		return nil
	}
	return nil
}

func (ed *Editor) lookupContext() (keymap.Mode, keymap.Context) {
	d, ok := ed.Engine.Document(ed.VisibleDoc)
	if !ok {
		return keymap.Tree, keymap.Context{}
	}
	mode := keymap.Tree
	if d.Loc.Mode() == loc.Text {
		mode = keymap.Text
	}
	n := loc.RightNeighbor(d.Loc)
	if n.IsNil() {
		n = d.Loc.ParentNode()
	}
	if n.IsNil() {
		return mode, keymap.Context{}
	}
	ctx := keymap.Context{Sort: forest.Sort(n), SelfArity: forest.Arity(n).Kind}
	if p := forest.Parent(n); !p.IsNil() {
		ctx.ParentArity = forest.Arity(p).Kind
	}
	return mode, ctx
}

func toKeymapKey(k Key) keymap.Key {
	var mods keymap.Mods
	if k.Ctrl {
		mods |= keymap.Ctrl
	}
	if k.Alt {
		mods |= keymap.Alt
	}
	if k.Shift {
		mods |= keymap.Shift
	}
	code := keymap.CharCode(k.Char)
	if k.Named != "" {
		code = keymap.NamedCode(k.Named)
	}
	return keymap.Key{Code: code, Mods: mods}
}

func toScriptKey(k Key) script.Key {
	return script.Key{Char: k.Char, Named: k.Named, Ctrl: k.Ctrl, Alt: k.Alt, Shift: k.Shift}
}

// redisplay resolves PaneNotation against the frontend's current size and
// paints every leaf.
func (ed *Editor) redisplay() {
	if ed.PaneNotation == nil {
		return
	}
	cols, rows := ed.Frontend.Size()
	leaves, err := pane.Resolve(ed.PaneNotation, pane.Rect{W: cols, H: rows}, ed.docLookup, ed.dynamicHeight)
	if err != nil {
		ed.messages.Report(err.Error())
		return
	}
	ed.Frontend.StartFrame()
	for _, leaf := range leaves {
		ed.paint(leaf)
	}
	ed.Frontend.EndFrame()
}

func (ed *Editor) paint(leaf pane.Leaf) {
	switch n := leaf.Node.(type) {
	case pane.Fill:
		row := strings.Repeat(string(n.Ch), leaf.Rect.W)
		for r := 0; r < leaf.Rect.H; r++ {
			ed.Frontend.Print(pretty.Pos{Col: leaf.Rect.X, Row: leaf.Rect.Y + r}, row, leaf.Style)
		}
	case pane.Doc:
		d, cursorVisible, ok := ed.docLookup(n.Label)
		if !ok {
			return
		}
		doc := d.(*engine.Document)
		var cur loc.Location
		if cursorVisible {
			cur = doc.Loc
		}
		pd := pretty.NewDoc(doc.Root, cur)
		pretty.NewLinePrinter().Print(pd, doc.Root, ed.Frontend)
	}
}

func (ed *Editor) docLookup(label string) (interface{}, bool, bool) {
	name := label
	if label == "visible" {
		name = ed.VisibleDoc
	}
	switch label {
	case "messages":
		return ed.messages.Document(), true, true
	}
	d, ok := ed.Engine.Document(name)
	if !ok {
		return nil, false, false
	}
	return d, label == "visible" || name == ed.VisibleDoc, true
}

func (ed *Editor) dynamicHeight(label string, width int) int {
	d, _, ok := ed.docLookup(label)
	if !ok {
		return 0
	}
	doc := d.(*engine.Document)
	pd := pretty.NewDoc(doc.Root, doc.Loc)
	rec := pretty.NewRecordingScreen()
	return pretty.NewLinePrinter().Print(pd, doc.Root, rec)
}

var errAbort = abortErr{}

type abortErr struct{}

func (abortErr) Error() string { return "runtime: Ctrl-C abort" }
