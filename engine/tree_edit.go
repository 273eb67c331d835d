package engine

import (
	"errors"

	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/loc"
	"github.com/synless-editor/synless/synlesserr"
)

// executeTreeEd implements spec.md §4.D's TreeEd group: Insert into a
// Listy slot, Replace (swap-with-hole) in a Fixed slot, Backspace, Delete.
// Per SPEC_FULL.md's open-question decision, Insert and Replace are kept as
// distinct commands rather than one arity-polymorphic operation: Insert
// only succeeds against a Listy parent, Replace only against a Fixed one.
func (e *Engine) executeTreeEd(d *Document, cmd Command) error {
	switch cmd.Kind {
	case EdInsert:
		return e.treeInsert(d, cmd.Node, lang.Listy)
	case EdReplace:
		return e.treeInsert(d, cmd.Node, lang.Fixed)
	case EdBackspace:
		return e.treeDeleteNeighbor(d, true)
	case EdDelete:
		return e.treeDeleteNeighbor(d, false)
	}
	return synlesserr.Newf(synlesserr.KindBug, "engine: unreachable tree-ed kind %v", cmd.Kind)
}

func (e *Engine) treeInsert(d *Document, new forest.Node, want lang.ArityKind) error {
	p := d.Loc.ParentNode()
	if p.IsNil() || forest.Arity(p).Kind != want {
		return synlesserr.New(synlesserr.KindEdit, errors.New("wrong slot kind for this command"))
	}

	before := d.Loc
	origKind, origNode := before.Kind(), before.Node()
	next, displaced, ok := loc.Insert(before, new)
	if !ok {
		return synlesserr.New(synlesserr.KindEdit, errors.New("insert rejected: sort mismatch or no such slot"))
	}
	d.Loc = next

	if want == lang.Fixed {
		d.record(primitive{
			redo: func() { forest.Swap(displaced, new) },
			undo: func() { forest.Swap(new, displaced) },
		})
	} else {
		d.record(primitive{
			redo: func() {
				switch origKind {
				case loc.AfterNode:
					forest.InsertAfter(origNode, new)
				case loc.BeforeNode:
					forest.InsertBefore(origNode, new)
				case loc.BelowNode:
					forest.InsertLastChild(origNode, new)
				}
			},
			undo: func() { forest.Detach(new) },
		})
	}
	return nil
}

// treeDeleteNeighbor implements Backspace (left=true) and Delete
// (left=false). Per spec.md §8 scenario 5, the removed node is always
// pushed onto the clipboard, whether the slot was Fixed (replaced by a
// hole) or Listy (simply detached).
func (e *Engine) treeDeleteNeighbor(d *Document, left bool) error {
	p := d.Loc.ParentNode()
	if p.IsNil() {
		return synlesserr.New(synlesserr.KindEdit, errors.New("no enclosing sequence"))
	}
	fixed := forest.Arity(p).Kind == lang.Fixed

	var neighbor forest.Node
	if left {
		neighbor = loc.LeftNeighbor(d.Loc)
	} else {
		neighbor = loc.RightNeighbor(d.Loc)
	}
	if neighbor.IsNil() {
		return synlesserr.New(synlesserr.KindEdit, errors.New("no neighbor to remove"))
	}
	prevSibling := forest.PrevSibling(neighbor)
	nextSibling := forest.NextSibling(neighbor)

	before := d.Loc
	next, removed, ok := loc.DeleteNeighbor(d.Arena, before, left)
	if !ok {
		return synlesserr.New(synlesserr.KindEdit, errors.New("delete rejected"))
	}
	d.Loc = next
	e.clipboard.Push(removed)

	if fixed {
		hole := next.Node() // the fresh hole DeleteNeighbor swapped in
		d.record(primitive{
			redo: func() { forest.Swap(hole, removed); e.clipboard.Push(removed) },
			undo: func() { e.clipboard.Pop(); forest.Swap(removed, hole) },
		})
	} else {
		d.record(primitive{
			redo: func() {
				forest.Detach(removed)
				e.clipboard.Push(removed)
			},
			undo: func() {
				e.clipboard.Pop()
				if !prevSibling.IsNil() {
					forest.InsertAfter(prevSibling, removed)
				} else if !nextSibling.IsNil() {
					forest.InsertBefore(nextSibling, removed)
				} else {
					forest.InsertLastChild(p, removed)
				}
			},
		})
	}
	return nil
}
