package runtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/synless-editor/synless/engine"
	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/keymap"
	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/loc"
	"github.com/synless-editor/synless/pane"
	"github.com/synless-editor/synless/pretty"
	"github.com/synless-editor/synless/synlesserr"
)

// fakeFrontend is a minimal Frontend for tests: it records Print calls and
// never produces real input events.
type fakeFrontend struct {
	*pretty.RecordingScreen
	cols, rows int
}

func newFakeFrontend(cols, rows int) *fakeFrontend {
	return &fakeFrontend{RecordingScreen: pretty.NewRecordingScreen(), cols: cols, rows: rows}
}

func (f *fakeFrontend) StartFrame()                 { f.Reset() }
func (f *fakeFrontend) EndFrame()                   {}
func (f *fakeFrontend) Size() (int, int)             { return f.cols, f.rows }
func (f *fakeFrontend) NextEvent(time.Duration) (Event, bool) { return Event{}, false }

func jsonishGrammar(t *testing.T) *lang.Grammar {
	t.Helper()
	g := lang.NewGrammar("jsonish", "json")
	require.NoError(t, g.DefineSort("value"))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "string", Arity: lang.TextyArity(), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "list", Arity: lang.ListyArity(lang.NamedSort("value")), Sort: lang.NamedSort("value")}))
	return g
}

func newTestEditor(t *testing.T) (*Editor, *engine.Document) {
	t.Helper()
	a := forest.NewArena()
	g := jsonishGrammar(t)
	root, err := forest.NewBranch(a, g, "list")
	require.NoError(t, err)
	s, err := forest.NewLeaf(a, g, "string", "hi")
	require.NoError(t, err)
	require.True(t, forest.InsertLastChild(root, s))

	e := engine.New(lang.NewRegistry())
	d := engine.NewDocument("main", "", g, a, root)
	cur, ok := loc.EnterText(loc.AtAfterNode(s))
	require.True(t, ok)
	d.Loc = cur
	e.AddDocument(d)

	layers := keymap.NewLayerStack()
	base := keymap.NewLayer("base")
	base.BindText(keymap.Key{Code: keymap.CharCode('x')}, keymap.Binding{Action: keymap.ActionInsertChar})
	layers.Push(base)

	ed := NewEditor(e, layers, newFakeFrontend(80, 24))
	ed.VisibleDoc = "main"
	return ed, d
}

func TestHandleKeyInsertsCharInTextMode(t *testing.T) {
	ed, d := newTestEditor(t)
	before := d.Loc.CharIndex()

	require.NoError(t, ed.handleKey(Key{Char: 'x'}))

	require.Equal(t, before+1, d.Loc.CharIndex())
}

func TestCtrlCProducesAbort(t *testing.T) {
	ed, _ := newTestEditor(t)
	err := ed.handleKey(Key{Char: 'c', Ctrl: true})
	require.Error(t, err)
	require.True(t, synlesserr.Is(err, synlesserr.KindAbort))
}

func TestUnboundKeyIsIgnoredWithoutError(t *testing.T) {
	ed, _ := newTestEditor(t)
	require.NoError(t, ed.handleKey(Key{Char: 'q'}))
}

func TestRecentEventsCapsAtCapacity(t *testing.T) {
	r := newRecentEvents(16)
	for i := 0; i < 40; i++ {
		r.record(Event{Kind: EventMouse, Mouse: Pos{Col: i}})
	}
	snap := r.snapshot()
	require.Len(t, snap, 16)
	require.Equal(t, 24, snap[0].Mouse.Col)
	require.Equal(t, 39, snap[len(snap)-1].Mouse.Col)
}

func TestMessagesReportAppendsAndCaps(t *testing.T) {
	m := NewMessages()
	m.Report("first error")
	require.Equal(t, 1, forest.ChildCount(m.Document().Root))

	for i := 0; i < messagesMaxLines+10; i++ {
		m.Report("line")
	}
	require.Equal(t, messagesMaxLines, forest.ChildCount(m.Document().Root))
}

func TestRedisplayResolvesPaneAndPaints(t *testing.T) {
	ed, _ := newTestEditor(t)
	ed.PaneNotation = pane.Doc{Label: "visible"}
	ed.redisplay()

	ff := ed.Frontend.(*fakeFrontend)
	require.NotEmpty(t, ff.Prints)
}
