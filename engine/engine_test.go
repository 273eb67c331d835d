package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/loc"
)

func jsonishGrammar(t *testing.T) *lang.Grammar {
	t.Helper()
	g := lang.NewGrammar("jsonish", "json")
	require.NoError(t, g.DefineSort("value"))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "hole", Arity: lang.TextyArity(), Sort: lang.AnySort}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "true", Arity: lang.TextyArity(), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "null", Arity: lang.TextyArity(), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "string", Arity: lang.TextyArity(), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "list", Arity: lang.ListyArity(lang.NamedSort("value")), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "pair", Arity: lang.FixedArity(lang.NamedSort("value"), lang.NamedSort("value")), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.SetHoleConstruct("hole"))
	return g
}

func newTestEngine(t *testing.T, root forest.Node, a *forest.Arena, g *lang.Grammar) (*Engine, *Document) {
	t.Helper()
	e := New(lang.NewRegistry())
	d := NewDocument("doc", "", g, a, root)
	e.AddDocument(d)
	return e, d
}

// TestUndoRedoRoundTripPreservesLocation mirrors spec.md §8 scenario 1: an
// insert into a list, committed, undone, and redone must leave the tree and
// cursor exactly as they were right after the original edit.
func TestUndoRedoRoundTripPreservesLocation(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	root, err := forest.NewBranch(a, g, "list")
	require.NoError(t, err)
	e, d := newTestEngine(t, root, a, g)

	t1, _ := forest.NewLeaf(a, g, "true", "true")
	require.NoError(t, e.Execute("doc", Insert(t1)))
	require.NoError(t, e.Execute("doc", EndGroup()))
	require.Equal(t, 1, forest.ChildCount(root))
	afterInsertLoc := d.Loc

	require.NoError(t, e.Execute("doc", Undo()))
	require.Equal(t, 0, forest.ChildCount(root))

	require.NoError(t, e.Execute("doc", Redo()))
	require.Equal(t, 1, forest.ChildCount(root))
	require.Equal(t, t1, forest.FirstChild(root))
	require.Equal(t, afterInsertLoc, d.Loc)
}

// TestEnterExitTextRoundTrip mirrors spec.md §8 scenario 2.
func TestEnterExitTextRoundTrip(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	root, err := forest.NewBranch(a, g, "list")
	require.NoError(t, err)
	s, _ := forest.NewLeaf(a, g, "string", "hi")
	require.True(t, forest.InsertLastChild(root, s))
	e, d := newTestEngine(t, root, a, g)

	d.Loc = loc.AtAfterNode(s)
	require.NoError(t, e.Execute("doc", EnterText()))
	require.Equal(t, loc.InText, d.Loc.Kind())
	require.Equal(t, 2, d.Loc.CharIndex())

	require.NoError(t, e.Execute("doc", ExitText()))
	require.Equal(t, loc.AfterNode, d.Loc.Kind())
	require.Equal(t, s, d.Loc.Node())
}

// TestBackspaceInFixedSlotPushesToClipboard mirrors spec.md §8 scenario 5:
// backspacing a Fixed-arity slot replaces the removed node with a hole and
// pushes the removed node to the clipboard, undo restores it in place and
// pops the clipboard back off.
func TestBackspaceInFixedSlotPushesToClipboard(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	x, _ := forest.NewLeaf(a, g, "true", "true")
	y, _ := forest.NewLeaf(a, g, "null", "null")
	root, err := forest.NewBranch(a, g, "pair", x, y)
	require.NoError(t, err)
	e, d := newTestEngine(t, root, a, g)

	d.Loc = loc.AtAfterNode(x)
	require.NoError(t, e.Execute("doc", Backspace()))
	require.Equal(t, "hole", forest.Construct(forest.ChildAt(root, 0)).Name)
	require.Equal(t, y, forest.ChildAt(root, 1))

	v, ok := e.clipboard.Peek()
	require.True(t, ok)
	require.Equal(t, x, v.(forest.Node))

	require.NoError(t, e.Execute("doc", EndGroup()))
	require.NoError(t, e.Execute("doc", Undo()))
	require.Equal(t, x, forest.ChildAt(root, 0))
	require.Equal(t, y, forest.ChildAt(root, 1))
	_, ok = e.clipboard.Peek()
	require.False(t, ok, "undo pops the clipboard push back off")
}

// TestBackspaceInListySlotUndoRestoresNode covers the Listy counterpart of
// TestBackspaceInFixedSlotPushesToClipboard: backspacing a list item
// detaches it and pushes it to the clipboard, and undo must reinsert it at
// its original position rather than leaving it unreachable from both the
// tree and the clipboard.
func TestBackspaceInListySlotUndoRestoresNode(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	x, _ := forest.NewLeaf(a, g, "true", "true")
	y, _ := forest.NewLeaf(a, g, "null", "null")
	root, err := forest.NewBranch(a, g, "list", x, y)
	require.NoError(t, err)
	e, d := newTestEngine(t, root, a, g)

	d.Loc = loc.AtAfterNode(x)
	require.NoError(t, e.Execute("doc", Backspace()))
	require.Equal(t, 1, forest.ChildCount(root))
	require.Equal(t, y, forest.ChildAt(root, 0))

	v, ok := e.clipboard.Peek()
	require.True(t, ok)
	require.Equal(t, x, v.(forest.Node))

	require.NoError(t, e.Execute("doc", EndGroup()))
	require.NoError(t, e.Execute("doc", Undo()))
	require.Equal(t, 2, forest.ChildCount(root))
	require.Equal(t, x, forest.ChildAt(root, 0))
	require.Equal(t, y, forest.ChildAt(root, 1))
	_, ok = e.clipboard.Peek()
	require.False(t, ok, "undo pops the clipboard push back off")

	require.NoError(t, e.Execute("doc", Redo()))
	require.Equal(t, 1, forest.ChildCount(root))
	require.Equal(t, y, forest.ChildAt(root, 0))
	v, ok = e.clipboard.Peek()
	require.True(t, ok)
	require.Equal(t, x, v.(forest.Node))
}

// TestClipDupAndPopAreUndoable covers spec.md:127's clipboard-recording
// requirement for Dup and Pop, not just Copy/Paste/PasteSwap.
func TestClipDupAndPopAreUndoable(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	root, err := forest.NewBranch(a, g, "list")
	require.NoError(t, err)
	e, d := newTestEngine(t, root, a, g)

	start, ok := loc.BeforeChildren(root)
	require.True(t, ok)
	d.Loc = start
	t1, _ := forest.NewLeaf(a, g, "true", "true")
	require.NoError(t, e.Execute("doc", Insert(t1)))
	d.Loc = loc.AtBeforeNode(t1)
	require.NoError(t, e.Execute("doc", Copy()))
	require.NoError(t, e.Execute("doc", EndGroup()))
	require.Equal(t, 1, e.clipboard.Size())

	require.NoError(t, e.Execute("doc", Dup()))
	require.NoError(t, e.Execute("doc", EndGroup()))
	require.Equal(t, 2, e.clipboard.Size())

	require.NoError(t, e.Execute("doc", Undo()))
	require.Equal(t, 1, e.clipboard.Size(), "undoing Dup must pop the duplicate back off")

	require.NoError(t, e.Execute("doc", Pop()))
	require.NoError(t, e.Execute("doc", EndGroup()))
	require.Equal(t, 0, e.clipboard.Size())

	require.NoError(t, e.Execute("doc", Undo()))
	require.Equal(t, 1, e.clipboard.Size(), "undoing Pop must restore the popped entry")
}

// TestBookmarkSurvivesEdit mirrors spec.md §8 scenario 6: a bookmark saved
// on a node resolves correctly even after unrelated edits elsewhere in the
// tree, but fails to resolve once its own subtree is deleted.
func TestBookmarkSurvivesEdit(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	root, err := forest.NewBranch(a, g, "list")
	require.NoError(t, err)
	t1, _ := forest.NewLeaf(a, g, "true", "true")
	require.True(t, forest.InsertLastChild(root, t1))
	e, d := newTestEngine(t, root, a, g)

	d.Loc = loc.AtBeforeNode(t1)
	require.NoError(t, e.Execute("doc", SaveBookmark('a')))

	n1, _ := forest.NewLeaf(a, g, "null", "null")
	require.NoError(t, e.Execute("doc", Insert(n1)))
	require.NoError(t, e.Execute("doc", EndGroup()))

	require.NoError(t, e.Execute("doc", GotoBookmark('a')))
	require.Equal(t, loc.AtAfterNode(t1), d.Loc)

	d.Loc = loc.AtAfterNode(t1)
	require.NoError(t, e.Execute("doc", Backspace()))
	require.NoError(t, e.Execute("doc", EndGroup()))
	require.Error(t, e.Execute("doc", GotoBookmark('a')), "bookmark must not resolve once its node is removed")
}
