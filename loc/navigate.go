package loc

import "github.com/synless-editor/synless/forest"

// Prev steps to the gap to the left of l within the current sibling
// sequence. Returns (Location{}, false) if l is already the first gap.
func Prev(l Location) (Location, bool) {
	switch l.kind {
	case AfterNode:
		n := l.node
		ps := forest.PrevSibling(n)
		if !ps.IsNil() {
			return AtAfterNode(ps), true
		}
		return AtBeforeNode(n), true
	case BeforeNode, BelowNode, InText:
		return Location{}, false
	}
	return Location{}, false
}

// Next steps to the gap to the right of l within the current sibling
// sequence. Returns (Location{}, false) if l is already the last gap.
func Next(l Location) (Location, bool) {
	switch l.kind {
	case BeforeNode:
		return AtAfterNode(l.node), true
	case AfterNode:
		n := l.node
		ns := forest.NextSibling(n)
		if !ns.IsNil() {
			return AtAfterNode(ns), true
		}
		return Location{}, false
	case BelowNode, InText:
		return Location{}, false
	}
	return Location{}, false
}

// First jumps to the leftmost gap of l's enclosing sibling sequence.
func First(l Location) (Location, bool) {
	p := l.ParentNode()
	if p.IsNil() {
		return Location{}, false
	}
	if forest.ChildCount(p) == 0 {
		return AtBelowNode(p), true
	}
	return AtBeforeNode(forest.FirstChild(p)), true
}

// Last jumps to the rightmost gap of l's enclosing sibling sequence.
func Last(l Location) (Location, bool) {
	p := l.ParentNode()
	if p.IsNil() {
		return Location{}, false
	}
	if forest.ChildCount(p) == 0 {
		return AtBelowNode(p), true
	}
	return AtAfterNode(forest.LastChild(p)), true
}

// BeforeParent surfaces out to the gap just before l's enclosing node, in
// the grandparent's sequence.
func BeforeParent(l Location) (Location, bool) {
	p := l.ParentNode()
	if p.IsNil() {
		return Location{}, false
	}
	gp := forest.Parent(p)
	if gp.IsNil() {
		return Location{}, false
	}
	return AtBeforeNode(p), true
}

// AfterParent surfaces out to the gap just after l's enclosing node, in the
// grandparent's sequence.
func AfterParent(l Location) (Location, bool) {
	p := l.ParentNode()
	if p.IsNil() {
		return Location{}, false
	}
	if forest.Parent(p).IsNil() {
		return Location{}, false
	}
	return AtAfterNode(p), true
}

// BeforeChildren descends into n's child sequence, at its leftmost gap.
// Fails if n is texty.
func BeforeChildren(n forest.Node) (Location, bool) {
	if forest.IsTexty(n) {
		return Location{}, false
	}
	if forest.ChildCount(n) == 0 {
		return AtBelowNode(n), true
	}
	return AtBeforeNode(forest.FirstChild(n)), true
}

// AfterChildren descends into n's child sequence, at its rightmost gap.
// Fails if n is texty.
func AfterChildren(n forest.Node) (Location, bool) {
	if forest.IsTexty(n) {
		return Location{}, false
	}
	if forest.ChildCount(n) == 0 {
		return AtBelowNode(n), true
	}
	return AtAfterNode(forest.LastChild(n)), true
}

// descendInto is the depth-first "step into n" move used by both
// InorderNext (entering n from the left) and InorderPrev (as the target of
// entering n, inverted).
func descendInto(n forest.Node) Location {
	if forest.ChildCount(n) > 0 {
		return AtBeforeNode(forest.FirstChild(n))
	}
	if forest.IsTexty(n) {
		return AtAfterNode(n)
	}
	return AtBelowNode(n)
}

// entryPrev is the inverse of descendInto: given the node n that was just
// entered, it yields the gap that preceded the entry.
func entryPrev(n forest.Node) Location {
	if ps := forest.PrevSibling(n); !ps.IsNil() {
		return AtAfterNode(ps)
	}
	return AtBeforeNode(n)
}

// InorderNext advances l by one step in a full depth-first enumeration of
// every legal cursor position in the tree (spec.md §4.C), diving into a
// node's children before moving to its next sibling. Returns
// (Location{}, false) at the end of the tree.
func InorderNext(l Location) (Location, bool) {
	switch l.kind {
	case BeforeNode:
		return descendInto(l.node), true
	case AfterNode:
		n := l.node
		if ns := forest.NextSibling(n); !ns.IsNil() {
			return descendInto(ns), true
		}
		p := forest.Parent(n)
		if p.IsNil() {
			return Location{}, false
		}
		return AtAfterNode(p), true
	case BelowNode:
		return AtAfterNode(l.node), true
	default: // InText
		return Location{}, false
	}
}

// InorderPrev is the exact inverse of InorderNext.
func InorderPrev(l Location) (Location, bool) {
	switch l.kind {
	case BeforeNode:
		n := l.node
		p := forest.Parent(n)
		if p.IsNil() {
			return Location{}, false
		}
		if forest.PrevSibling(p).IsNil() && forest.Parent(p).IsNil() {
			return Location{}, false
		}
		return entryPrev(p), true
	case AfterNode:
		n := l.node
		if forest.IsTexty(n) {
			return entryPrev(n), true
		}
		if forest.ChildCount(n) > 0 {
			return AtAfterNode(forest.LastChild(n)), true
		}
		return AtBelowNode(n), true
	case BelowNode:
		return entryPrev(l.node), true
	default: // InText
		return Location{}, false
	}
}

// EnterText moves from AfterNode(n), where n is a texty leaf, into n's text
// at the end. Every other variant fails (spec.md §4.C).
func EnterText(l Location) (Location, bool) {
	if l.kind != AfterNode || !forest.IsTexty(l.node) {
		return Location{}, false
	}
	return AtInText(l.node, forest.TextLen(l.node)), true
}

// ExitText moves from InText(n, _) to AfterNode(n).
func ExitText(l Location) (Location, bool) {
	if l.kind != InText {
		return Location{}, false
	}
	return AtAfterNode(l.node), true
}

// RightNeighbor returns the node immediately to the right of gap l within
// its sibling sequence, or Nil if there is none.
func RightNeighbor(l Location) forest.Node {
	switch l.kind {
	case BeforeNode:
		return l.node
	case AfterNode:
		return forest.NextSibling(l.node)
	default:
		return forest.Nil
	}
}

// LeftNeighbor returns the node immediately to the left of gap l within its
// sibling sequence, or Nil if there is none.
func LeftNeighbor(l Location) forest.Node {
	switch l.kind {
	case AfterNode:
		return l.node
	default:
		return forest.Nil
	}
}
