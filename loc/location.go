// Package loc implements the cursor model of spec.md §3/§4.C: a normalized
// Location into a forest tree, kept in one of four tagged variants, plus the
// navigation and insert/delete-neighbor operations defined over it.
//
// Every constructor normalizes on the way in, following spec.md §4.C's rule
// ("prefer AfterNode, fall back to BeforeNode, use BelowNode only for empty
// sequences") so callers never have to reason about which variant a given
// position might take.
package loc

import "github.com/synless-editor/synless/forest"

// Kind tags which of the four Location variants a Location holds.
type Kind int

const (
	// InText is a cursor inside a texty leaf, at a char offset.
	InText Kind = iota
	// AfterNode sits between a node and its right sibling (or after the
	// last sibling).
	AfterNode
	// BeforeNode sits between a node's left sibling and the node itself.
	// Only ever held when the node has no left sibling; see AtBeforeNode.
	BeforeNode
	// BelowNode sits inside an empty non-texty parent's child sequence.
	BelowNode
)

// Location is a normalized cursor position: one of InText(node, charIdx),
// AfterNode(node), BeforeNode(node), or BelowNode(parent).
type Location struct {
	kind    Kind
	node    forest.Node
	charIdx int
}

// Kind reports which variant l holds.
func (l Location) Kind() Kind { return l.kind }

// Node returns the node l is relative to: the node itself for
// InText/AfterNode/BeforeNode, or the (possibly empty) parent for
// BelowNode.
func (l Location) Node() forest.Node { return l.node }

// CharIndex returns the char offset of an InText location. Meaningless for
// other variants.
func (l Location) CharIndex() int { return l.charIdx }

// Mode reports Tree or Text, derived from the variant (spec.md §3: "Mode is
// derived from the variant: Text iff InText, else Tree").
type Mode int

const (
	Tree Mode = iota
	Text
)

// Mode derives the editing mode of l.
func (l Location) Mode() Mode {
	if l.kind == InText {
		return Text
	}
	return Tree
}

// AtAfterNode builds a Location after n (between n and its right sibling,
// or after the last sibling if n is last). This is already normal form.
func AtAfterNode(n forest.Node) Location {
	return Location{kind: AfterNode, node: n}
}

// AtBeforeNode builds a Location before n, normalizing to AfterNode(prev)
// when a left sibling exists (spec.md §4.C).
func AtBeforeNode(n forest.Node) Location {
	if prev := forest.PrevSibling(n); !prev.IsNil() {
		return Location{kind: AfterNode, node: prev}
	}
	return Location{kind: BeforeNode, node: n}
}

// AtBelowNode builds a Location inside parent's (empty) child sequence.
// Only valid when parent has no children and is not texty; falls back to
// AfterNode(lastChild) otherwise, per the "use BelowNode only for empty
// sequences" rule.
func AtBelowNode(parent forest.Node) Location {
	if forest.ChildCount(parent) > 0 {
		return Location{kind: AfterNode, node: forest.LastChild(parent)}
	}
	return Location{kind: BelowNode, node: parent}
}

// AtInText builds a Location inside texty leaf n at charIdx, clamped into
// 0..=TextLen(n).
func AtInText(n forest.Node, charIdx int) Location {
	max := forest.TextLen(n)
	if charIdx < 0 {
		charIdx = 0
	}
	if charIdx > max {
		charIdx = max
	}
	return Location{kind: InText, node: n, charIdx: charIdx}
}

// ParentNode returns the non-texty node whose child sequence l sits within:
// Parent(node) for AfterNode/BeforeNode, node itself for BelowNode, and
// Nil for InText (a text cursor has no enclosing sequence of siblings).
func (l Location) ParentNode() forest.Node {
	switch l.kind {
	case AfterNode, BeforeNode:
		return forest.Parent(l.node)
	case BelowNode:
		return l.node
	default:
		return forest.Nil
	}
}
