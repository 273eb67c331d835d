// Package pretty implements the pretty-doc adapter of spec.md §4.E: it
// exposes a forest.Node (and the cursor's Location within it) through the
// PrettyDoc contract an external pretty-printer walks to produce styled
// print/shade/highlight calls, without the printer ever touching forest or
// loc directly.
package pretty

import (
	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/loc"
)

// CursorHalf labels which side of the cursor boundary a style label applies
// to, so the printer can draw distinct left/right cursor halves at the
// gap the cursor currently sits in (spec.md §4.E).
type CursorHalf int

const (
	// NoCursor means the walked position carries no cursor boundary.
	NoCursor CursorHalf = iota
	// CursorOpen labels the left half of the cursor boundary.
	CursorOpen
	// CursorClose labels the right half of the cursor boundary.
	CursorClose
)

// PrettyDoc is the contract an external pretty-printer walks: given a
// reference, it yields the construct's notation recipe, child count and
// access, raw text for texty nodes, and which cursor half (if any) sits at
// a given child boundary.
type PrettyDoc interface {
	// Notation returns the pretty-print recipe bound to n's construct.
	Notation(n forest.Node) (lang.Notation, bool)
	// ChildCount returns n's child count (0 for texty nodes).
	ChildCount(n forest.Node) int
	// Child returns n's i'th child.
	Child(n forest.Node, i int) forest.Node
	// Text returns a texty node's raw string.
	Text(n forest.Node) string
	// IsTexty reports whether n is a texty leaf.
	IsTexty(n forest.Node) bool
	// CursorAt reports which cursor half (if any) sits at the gap
	// immediately before n's i'th child (i == ChildCount(n) for the gap
	// after the last child).
	CursorAt(n forest.Node, i int) CursorHalf
	// CursorInText reports the char offset of an in-text cursor inside n,
	// or (-1, false) if the cursor is not inside n's text.
	CursorInText(n forest.Node) (int, bool)
}

// Doc adapts a forest.Node root plus a loc.Location cursor into a PrettyDoc.
type Doc struct {
	root   forest.Node
	cursor loc.Location
}

// NewDoc builds a PrettyDoc over root, with the cursor at cur.
func NewDoc(root forest.Node, cur loc.Location) *Doc {
	return &Doc{root: root, cursor: cur}
}

// Root returns the node the adapter was built over.
func (d *Doc) Root() forest.Node { return d.root }

func (d *Doc) Notation(n forest.Node) (lang.Notation, bool) {
	ns := forest.Grammar(n).Notation()
	if ns == nil {
		return lang.Notation{}, false
	}
	return ns.Lookup(forest.Construct(n).Name)
}

func (d *Doc) ChildCount(n forest.Node) int { return forest.ChildCount(n) }
func (d *Doc) Child(n forest.Node, i int) forest.Node { return forest.ChildAt(n, i) }
func (d *Doc) Text(n forest.Node) string    { return forest.Text(n) }
func (d *Doc) IsTexty(n forest.Node) bool   { return forest.IsTexty(n) }

// CursorAt reports whether the cursor's Location sits at the gap before
// n's i'th child. A Location is a gap between two specific siblings (or at
// a sequence's empty interior), so only one (n, i) pair in the whole tree
// ever matches for a given cursor; that boundary reports CursorOpen and
// every other boundary NoCursor. CursorAt never reports CursorClose.
func (d *Doc) CursorAt(n forest.Node, i int) CursorHalf {
	if d.cursor.Kind() == loc.InText {
		return NoCursor
	}
	if gapMatches(d.cursor, n, i) {
		return CursorOpen
	}
	return NoCursor
}

func gapMatches(l loc.Location, n forest.Node, i int) bool {
	switch l.Kind() {
	case loc.BelowNode:
		return l.Node() == n && i == 0 && forest.ChildCount(n) == 0
	case loc.AfterNode:
		ref := l.Node()
		if forest.Parent(ref) != n {
			return false
		}
		return i == forest.SiblingIndex(ref)+1
	case loc.BeforeNode:
		ref := l.Node()
		if forest.Parent(ref) != n {
			return false
		}
		return i == forest.SiblingIndex(ref)
	}
	return false
}

// CursorInText reports the in-text cursor offset inside n, if the cursor is
// currently InText(n, _).
func (d *Doc) CursorInText(n forest.Node) (int, bool) {
	if d.cursor.Kind() != loc.InText || d.cursor.Node() != n {
		return -1, false
	}
	return d.cursor.CharIndex(), true
}
