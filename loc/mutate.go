package loc

import (
	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/lang"
)

// Insert places new into the sequence surrounding l (spec.md §4.C).
//
// If the enclosing parent is Fixed, new swaps in for the gap's right
// neighbor (a replace-by-swap, since a fixed slot is never empty); the
// displaced node is returned. If Listy, new is spliced in according to the
// gap's variant. On success the cursor moves to AtAfterNode(new); on
// failure l and the arena are left untouched.
func Insert(l Location, new forest.Node) (result Location, displaced forest.Node, ok bool) {
	p := l.ParentNode()
	if p.IsNil() || forest.IsTexty(p) {
		return Location{}, forest.Nil, false
	}

	switch forest.Arity(p).Kind {
	case lang.Fixed:
		right := RightNeighbor(l)
		if right.IsNil() {
			return Location{}, forest.Nil, false
		}
		if !forest.Swap(right, new) {
			return Location{}, forest.Nil, false
		}
		return AtAfterNode(new), right, true

	case lang.Listy:
		var inserted bool
		switch l.kind {
		case AfterNode:
			inserted = forest.InsertAfter(l.node, new)
		case BeforeNode:
			inserted = forest.InsertBefore(l.node, new)
		case BelowNode:
			inserted = forest.InsertLastChild(l.node, new)
		}
		if !inserted {
			return Location{}, forest.Nil, false
		}
		return AtAfterNode(new), forest.Nil, true
	}
	return Location{}, forest.Nil, false
}

// DeleteNeighbor removes the node adjacent to l: the left neighbor if left
// is true, else the right neighbor. In a Fixed parent the neighbor is
// replaced by a fresh hole (a fixed slot is never empty); in a Listy parent
// it is simply detached. Returns the removed node (still alive, now
// detached, for the caller's clipboard) and the cursor's new location.
func DeleteNeighbor(a *forest.Arena, l Location, left bool) (result Location, removed forest.Node, ok bool) {
	p := l.ParentNode()
	if p.IsNil() || forest.IsTexty(p) {
		return Location{}, forest.Nil, false
	}
	var neighbor forest.Node
	if left {
		neighbor = LeftNeighbor(l)
	} else {
		neighbor = RightNeighbor(l)
	}
	if neighbor.IsNil() {
		return Location{}, forest.Nil, false
	}

	switch forest.Arity(p).Kind {
	case lang.Fixed:
		hole, err := forest.NewHole(a, forest.Grammar(p))
		if err != nil {
			return Location{}, forest.Nil, false
		}
		if !forest.Swap(neighbor, hole) {
			return Location{}, forest.Nil, false
		}
		return AtAfterNode(hole), neighbor, true

	case lang.Listy:
		prev := forest.PrevSibling(neighbor)
		forest.Detach(neighbor)
		if !prev.IsNil() {
			return AtAfterNode(prev), neighbor, true
		}
		if forest.ChildCount(p) == 0 {
			return AtBelowNode(p), neighbor, true
		}
		return AtBeforeNode(forest.FirstChild(p)), neighbor, true
	}
	return Location{}, forest.Nil, false
}
