package loc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/lang"
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

func TestNormalizationPrefersAfterNode(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	list, _ := forest.NewBranch(a, g, "list")
	t1, _ := forest.NewLeaf(a, g, "true", "true")
	require.True(t, forest.InsertLastChild(list, t1))
	n1, _ := forest.NewLeaf(a, g, "null", "null")
	require.True(t, forest.InsertLastChild(list, n1))

	// n1 has a left sibling, so BeforeNode(n1) normalizes to AfterNode(t1).
	before := AtBeforeNode(n1)
	require.Equal(t, AfterNode, before.Kind())
	require.Equal(t, t1, before.Node())

	// t1 has no left sibling, so BeforeNode(t1) stays BeforeNode.
	beforeFirst := AtBeforeNode(t1)
	require.Equal(t, BeforeNode, beforeFirst.Kind())
}

func TestBelowNodeOnlyForEmptySequence(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	empty, _ := forest.NewBranch(a, g, "list")
	below := AtBelowNode(empty)
	require.Equal(t, BelowNode, below.Kind())

	t1, _ := forest.NewLeaf(a, g, "true", "true")
	require.True(t, forest.InsertLastChild(empty, t1))
	// Now non-empty: BelowNode falls back to AfterNode(lastChild).
	notBelow := AtBelowNode(empty)
	require.Equal(t, AfterNode, notBelow.Kind())
	require.Equal(t, t1, notBelow.Node())
}

func TestPrevNextWithinSequence(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	list, _ := forest.NewBranch(a, g, "list")
	t1, _ := forest.NewLeaf(a, g, "true", "true")
	n1, _ := forest.NewLeaf(a, g, "null", "null")
	require.True(t, forest.InsertLastChild(list, t1))
	require.True(t, forest.InsertLastChild(list, n1))

	gap0 := AtBeforeNode(t1)
	gap1, ok := Next(gap0)
	require.True(t, ok)
	require.Equal(t, AtAfterNode(t1), gap1)

	gap2, ok := Next(gap1)
	require.True(t, ok)
	require.Equal(t, AtAfterNode(n1), gap2)

	_, ok = Next(gap2)
	require.False(t, ok, "no gap past the last sibling")

	back1, ok := Prev(gap2)
	require.True(t, ok)
	require.Equal(t, gap1, back1)

	back0, ok := Prev(gap1)
	require.True(t, ok)
	require.Equal(t, gap0, back0)

	_, ok = Prev(gap0)
	require.False(t, ok, "no gap before the first sibling")
}

func TestFirstLast(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	list, _ := forest.NewBranch(a, g, "list")
	t1, _ := forest.NewLeaf(a, g, "true", "true")
	n1, _ := forest.NewLeaf(a, g, "null", "null")
	require.True(t, forest.InsertLastChild(list, t1))
	require.True(t, forest.InsertLastChild(list, n1))

	first, ok := First(AtAfterNode(n1))
	require.True(t, ok)
	require.Equal(t, AtBeforeNode(t1), first)

	last, ok := Last(AtBeforeNode(t1))
	require.True(t, ok)
	require.Equal(t, AtAfterNode(n1), last)
}

func TestEnterExitText(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	s, _ := forest.NewLeaf(a, g, "string", "hi")

	inText, ok := EnterText(AtAfterNode(s))
	require.True(t, ok)
	require.Equal(t, InText, inText.Kind())
	require.Equal(t, 2, inText.CharIndex())

	back, ok := ExitText(inText)
	require.True(t, ok)
	require.Equal(t, AtAfterNode(s), back)
}

func TestInorderTraversalVisitsEveryPosition(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	outer, _ := forest.NewBranch(a, g, "list")
	pairHoleA, _ := forest.NewHole(a, g)
	pairHoleB, _ := forest.NewHole(a, g)
	pair, err := forest.NewBranch(a, g, "pair", pairHoleA, pairHoleB)
	require.NoError(t, err)
	require.True(t, forest.InsertLastChild(outer, pair))

	start, ok := BeforeChildren(outer)
	require.True(t, ok)

	var visited []Location
	cur := start
	visited = append(visited, cur)
	for {
		next, ok := InorderNext(cur)
		if !ok {
			break
		}
		visited = append(visited, next)
		cur = next
	}
	// Walking back via InorderPrev from the end must retrace the same path.
	for i := len(visited) - 1; i > 0; i-- {
		prev, ok := InorderPrev(visited[i])
		require.True(t, ok, "step %d", i)
		require.Equal(t, visited[i-1], prev, "step %d", i)
	}
	require.True(t, len(visited) > 3)

	// The very first position in the traversal has no predecessor:
	// InorderPrev must report false rather than some other BeforeNode gap
	// InorderNext itself never produces.
	_, ok = InorderPrev(visited[0])
	require.False(t, ok, "no gap precedes the start of the tree")
}

func TestInsertIntoListySplicesAtGap(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	list, _ := forest.NewBranch(a, g, "list")
	t1, _ := forest.NewLeaf(a, g, "true", "true")
	require.True(t, forest.InsertLastChild(list, t1))

	n1, _ := forest.NewLeaf(a, g, "null", "null")
	loc, displaced, ok := Insert(AtAfterNode(t1), n1)
	require.True(t, ok)
	require.True(t, displaced.IsNil())
	require.Equal(t, AtAfterNode(n1), loc)
	require.Equal(t, n1, forest.ChildAt(list, 1))
}

func TestInsertIntoFixedSwapsRightNeighbor(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	h0, _ := forest.NewHole(a, g)
	h1, _ := forest.NewHole(a, g)
	pair, err := forest.NewBranch(a, g, "pair", h0, h1)
	require.NoError(t, err)

	replacement, _ := forest.NewLeaf(a, g, "true", "true")
	loc, displaced, ok := Insert(AtBeforeNode(h0), replacement)
	require.True(t, ok)
	require.Equal(t, h0, displaced)
	require.Equal(t, AtAfterNode(replacement), loc)
	require.Equal(t, replacement, forest.ChildAt(pair, 0))
}

func TestDeleteNeighborFixedReplacesWithHole(t *testing.T) {
	// spec.md §8 scenario 5.
	a := forest.NewArena()
	g := jsonishGrammar(t)
	x, _ := forest.NewLeaf(a, g, "true", "true")
	y, _ := forest.NewLeaf(a, g, "null", "null")
	pair, err := forest.NewBranch(a, g, "pair", x, y)
	require.NoError(t, err)

	newLoc, removed, ok := DeleteNeighbor(a, AtAfterNode(x), true)
	require.True(t, ok)
	require.Equal(t, x, removed)
	require.Equal(t, 2, forest.ChildCount(pair))
	require.Equal(t, "hole", forest.Construct(forest.ChildAt(pair, 0)).Name)
	require.Equal(t, y, forest.ChildAt(pair, 1))
	require.Equal(t, forest.ChildAt(pair, 0), newLoc.Node())
	require.True(t, x.IsValid(), "removed node survives for the clipboard")
}

func TestDeleteNeighborListyDetaches(t *testing.T) {
	a := forest.NewArena()
	g := jsonishGrammar(t)
	list, _ := forest.NewBranch(a, g, "list")
	t1, _ := forest.NewLeaf(a, g, "true", "true")
	n1, _ := forest.NewLeaf(a, g, "null", "null")
	require.True(t, forest.InsertLastChild(list, t1))
	require.True(t, forest.InsertLastChild(list, n1))

	_, removed, ok := DeleteNeighbor(a, AtAfterNode(n1), true)
	require.True(t, ok)
	require.Equal(t, n1, removed)
	require.Equal(t, 1, forest.ChildCount(list))
	require.Equal(t, t1, forest.FirstChild(list))
}
