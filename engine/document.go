package engine

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/loc"
)

// primitive pairs a mutation's forward and reverse closures, letting Redo
// replay a group exactly as Undo reversed it (spec.md §4.D
// "Reversibility: every mutation is paired with its inverse").
type primitive struct {
	redo func()
	undo func()
}

// Group is one undoable unit: a run of primitives committed together by
// EndGroup, bracketed by the cursor location just before the first
// primitive and just after the last (spec.md §8's undo/redo round-trip
// property covers location, not just tree shape).
type Group struct {
	prims     []primitive
	beforeLoc loc.Location
	afterLoc  loc.Location

	// Label tags the group with the command that opened it (e.g. "insert",
	// "paste"), for display in a status line. Set through SetGroupLabel,
	// which Execute calls for a labeled EndGroup command (a script's
	// end_group(label)); groups the runtime closes carry no label.
	Label string
}

// Document is a named root node plus the cursor, undo/redo stacks, and the
// language it is written in (spec.md §3 "Document").
type Document struct {
	Name    string
	Path    string
	Grammar *lang.Grammar
	Arena   *forest.Arena
	Root    forest.Node
	Loc     loc.Location

	bookmarks map[rune]forest.Bookmark

	undo *arraystack.Stack // of *Group
	redo *arraystack.Stack // of *Group
	cur  *Group            // in-progress, uncommitted group; nil if none
}

// NewDocument wraps an already-built root node as a fresh document with an
// empty undo history, cursor positioned at the root's first legal
// location.
func NewDocument(name, path string, g *lang.Grammar, a *forest.Arena, root forest.Node) *Document {
	start, ok := loc.BeforeChildren(root)
	if !ok {
		start = loc.AtAfterNode(root)
	}
	return &Document{
		Name:      name,
		Path:      path,
		Grammar:   g,
		Arena:     a,
		Root:      root,
		Loc:       start,
		bookmarks: make(map[rune]forest.Bookmark),
		undo:      arraystack.New(),
		redo:      arraystack.New(),
	}
}

// openGroup lazily starts the in-progress group, snapshotting the location
// the group began at.
func (d *Document) openGroup() *Group {
	if d.cur == nil {
		d.cur = &Group{beforeLoc: d.Loc}
	}
	return d.cur
}

// record appends a committed primitive to the in-progress group.
func (d *Document) record(p primitive) {
	g := d.openGroup()
	g.prims = append(g.prims, p)
}

// SetGroupLabel tags the in-progress group with label, for display once it
// commits (SPEC_FULL.md's undo-group-labels supplemented feature). A
// no-op if nothing has been recorded since the last EndGroup.
func (d *Document) SetGroupLabel(label string) {
	if d.cur == nil {
		return
	}
	d.cur.Label = label
}

// LastUndoLabel returns the label of the group Undo would next apply, if
// any.
func (d *Document) LastUndoLabel() (string, bool) {
	v, ok := d.undo.Peek()
	if !ok {
		return "", false
	}
	return v.(*Group).Label, true
}

// LastRedoLabel returns the label of the group Redo would next apply, if
// any.
func (d *Document) LastRedoLabel() (string, bool) {
	v, ok := d.redo.Peek()
	if !ok {
		return "", false
	}
	return v.(*Group).Label, true
}

// EndGroup closes the in-progress group (if non-empty) onto the undo
// stack and clears the redo stack, per spec.md §4.D. A no-op if no
// primitive has been recorded since the last EndGroup.
func (d *Document) EndGroup() {
	if d.cur == nil || len(d.cur.prims) == 0 {
		d.cur = nil
		return
	}
	d.cur.afterLoc = d.Loc
	d.undo.Push(d.cur)
	d.cur = nil
	d.redo.Clear()
}

// Undo pops one committed group and applies its primitives' reverses in
// reverse order, restoring the location the group began at. Fails
// (returns false) if there is nothing to undo.
func (d *Document) Undo() bool {
	d.EndGroup() // an open-but-uncommitted group has nothing to undo yet
	v, ok := d.undo.Pop()
	if !ok {
		return false
	}
	g := v.(*Group)
	for i := len(g.prims) - 1; i >= 0; i-- {
		g.prims[i].undo()
	}
	d.Loc = g.beforeLoc
	d.redo.Push(g)
	return true
}

// Redo pops one undone group and replays its primitives' forward actions
// in original order, restoring the location the group ended at. Fails
// (returns false) if there is nothing to redo.
func (d *Document) Redo() bool {
	v, ok := d.redo.Pop()
	if !ok {
		return false
	}
	g := v.(*Group)
	for _, p := range g.prims {
		p.redo()
	}
	d.Loc = g.afterLoc
	d.undo.Push(g)
	return true
}
