package forest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-editor/synless/lang"
)

func jsonishGrammar(t *testing.T) *lang.Grammar {
	t.Helper()
	g := lang.NewGrammar("jsonish", "json")
	require.NoError(t, g.DefineSort("value"))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "hole", Arity: lang.TextyArity(), Sort: lang.AnySort}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "true", Arity: lang.TextyArity(), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "null", Arity: lang.TextyArity(), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "list", Arity: lang.ListyArity(lang.NamedSort("value")), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "pair", Arity: lang.FixedArity(lang.NamedSort("value"), lang.NamedSort("value")), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.SetHoleConstruct("hole"))
	return g
}

func TestNewLeafAndText(t *testing.T) {
	a := NewArena()
	g := jsonishGrammar(t)
	n, err := NewLeaf(a, g, "true", "true")
	require.NoError(t, err)
	require.Equal(t, "true", Text(n))
	require.Equal(t, 4, TextLen(n))
	require.True(t, IsTexty(n))
}

func TestNewWithAutoFillFixed(t *testing.T) {
	a := NewArena()
	g := jsonishGrammar(t)
	n, err := NewWithAutoFill(a, g, "pair")
	require.NoError(t, err)
	require.Equal(t, 2, ChildCount(n))
	for i := 0; i < 2; i++ {
		require.Equal(t, "hole", Construct(ChildAt(n, i)).Name)
	}
}

func TestListInsertAndNavigate(t *testing.T) {
	a := NewArena()
	g := jsonishGrammar(t)
	list, err := NewBranch(a, g, "list")
	require.NoError(t, err)

	t1, _ := NewLeaf(a, g, "true", "true")
	require.True(t, InsertLastChild(list, t1))
	n1, _ := NewLeaf(a, g, "null", "null")
	require.True(t, InsertAfter(t1, n1))
	require.Equal(t, 2, ChildCount(list))
	require.Equal(t, t1, FirstChild(list))
	require.Equal(t, n1, LastChild(list))
	require.Equal(t, n1, NextSibling(t1))
	require.Equal(t, t1, PrevSibling(n1))

	f, _ := NewBranch(a, g, "list")
	require.True(t, InsertBefore(n1, f))
	require.Equal(t, 3, ChildCount(list))
	require.Equal(t, f, ChildAt(list, 1))
}

func TestDetachAndDelete(t *testing.T) {
	a := NewArena()
	g := jsonishGrammar(t)
	list, _ := NewBranch(a, g, "list")
	t1, _ := NewLeaf(a, g, "true", "true")
	require.True(t, InsertLastChild(list, t1))

	Detach(t1)
	require.Equal(t, 0, ChildCount(list))
	require.True(t, t1.IsValid())
	require.True(t, Root(t1) == t1)

	Delete(a, t1)
	require.False(t, t1.IsValid())
}

func TestDeleteFreesDescendants(t *testing.T) {
	a := NewArena()
	g := jsonishGrammar(t)
	outer, _ := NewBranch(a, g, "list")
	inner, _ := NewBranch(a, g, "list")
	leaf, _ := NewLeaf(a, g, "true", "true")
	require.True(t, InsertLastChild(inner, leaf))
	require.True(t, InsertLastChild(outer, inner))

	Delete(a, outer)
	require.False(t, outer.IsValid())
	require.False(t, inner.IsValid())
	require.False(t, leaf.IsValid())
}

func TestCyclePrevention(t *testing.T) {
	a := NewArena()
	g := jsonishGrammar(t)
	n1, _ := NewBranch(a, g, "list")
	n2, _ := NewBranch(a, g, "list")
	n3, _ := NewBranch(a, g, "list")
	n4, _ := NewLeaf(a, g, "true", "true")

	require.True(t, InsertLastChild(n1, n2))
	require.True(t, InsertLastChild(n2, n3))
	require.True(t, InsertLastChild(n3, n4))

	// n3 is a descendant of n2; parenting n2 under n3 would cycle.
	ok := InsertLastChild(n3, n2)
	require.False(t, ok)
	// Trees remain intact.
	require.Equal(t, n2, FirstChild(n1))
	require.Equal(t, n3, FirstChild(n2))
	require.Equal(t, n4, FirstChild(n3))
}

func TestGenerationalHandleInvalidAfterFree(t *testing.T) {
	a := NewArena()
	g := jsonishGrammar(t)
	n, _ := NewLeaf(a, g, "true", "true")
	Delete(a, n)
	require.False(t, n.IsValid())

	// A freshly allocated node may reuse the freed slot, but under a new
	// generation; the old handle must stay invalid.
	n2, _ := NewLeaf(a, g, "null", "null")
	require.True(t, n2.IsValid())
	require.False(t, n.IsValid())
}

func TestBookmarkSurvivesReparenting(t *testing.T) {
	a := NewArena()
	g := jsonishGrammar(t)
	listA, _ := NewBranch(a, g, "list")
	listB, _ := NewBranch(a, g, "list")
	root, _ := NewBranch(a, g, "list")
	require.True(t, InsertLastChild(root, listA))
	require.True(t, InsertLastChild(root, listB))

	x, _ := NewLeaf(a, g, "true", "true")
	require.True(t, InsertLastChild(listA, x))

	bm := NewBookmark(x)
	Detach(x)
	require.True(t, InsertLastChild(listB, x))

	got, ok := bm.Resolve(root)
	require.True(t, ok)
	require.Equal(t, x, got)

	Delete(a, x)
	_, ok = bm.Resolve(root)
	require.False(t, ok)
}

func TestSwapInFixedSlot(t *testing.T) {
	a := NewArena()
	g := jsonishGrammar(t)
	hole0, _ := NewHole(a, g)
	hole1, _ := NewHole(a, g)
	pair, err := NewBranch(a, g, "pair", hole0, hole1)
	require.NoError(t, err)

	replacement, _ := NewLeaf(a, g, "true", "true")
	require.True(t, Swap(hole0, replacement))
	require.Equal(t, replacement, ChildAt(pair, 0))
	require.Equal(t, Nil, Parent(hole0))
}

func TestFingerprintStableAcrossEquivalentStructure(t *testing.T) {
	a := NewArena()
	g := jsonishGrammar(t)
	l1, _ := NewBranch(a, g, "list")
	t1, _ := NewLeaf(a, g, "true", "true")
	require.True(t, InsertLastChild(l1, t1))

	l2, _ := NewBranch(a, g, "list")
	t2, _ := NewLeaf(a, g, "true", "true")
	require.True(t, InsertLastChild(l2, t2))

	require.Equal(t, Fingerprint(l1), Fingerprint(l2))

	n2, _ := NewLeaf(a, g, "null", "null")
	require.True(t, InsertAfter(t2, n2))
	require.NotEqual(t, Fingerprint(l1), Fingerprint(l2))
}

func TestCloneIsIndependentCopy(t *testing.T) {
	a := NewArena()
	g := jsonishGrammar(t)
	list, _ := NewBranch(a, g, "list")
	t1, _ := NewLeaf(a, g, "true", "true")
	require.True(t, InsertLastChild(list, t1))

	clone := Clone(a, list)
	require.True(t, Parent(clone).IsNil())
	require.Equal(t, Fingerprint(list), Fingerprint(clone))

	SetText(FirstChild(clone), "mutated")
	require.Equal(t, "true", Text(FirstChild(list)))
	require.NotEqual(t, Fingerprint(list), Fingerprint(clone))
}
