package engine

import (
	"errors"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/loc"
	"github.com/synless-editor/synless/synlesserr"
)

// ErrNoSuchDocument is returned when Execute targets an unregistered
// document name.
var ErrNoSuchDocument = errors.New("engine: no such document")

// Engine owns the set of open documents, the language registry they draw
// from, and the one clipboard stack shared across all of them (spec.md §3
// "Clipboard").
type Engine struct {
	Registry  *lang.Registry
	docs      map[string]*Document
	clipboard *arraystack.Stack // of forest.Node, detached subtrees
}

// New builds an empty engine bound to registry (nil selects
// lang.Default).
func New(registry *lang.Registry) *Engine {
	if registry == nil {
		registry = lang.Default
	}
	return &Engine{
		Registry:  registry,
		docs:      make(map[string]*Document),
		clipboard: arraystack.New(),
	}
}

// AddDocument registers doc under its own Name.
func (e *Engine) AddDocument(doc *Document) {
	e.docs[doc.Name] = doc
}

// Document looks up a registered document by name.
func (e *Engine) Document(name string) (*Document, bool) {
	d, ok := e.docs[name]
	return d, ok
}

// Execute runs cmd against the named document. Edit commands (TreeEd,
// TextEd, Clipboard) mutate state and record a reversible primitive into
// the document's in-progress undo group; navigation commands only move
// Loc; Meta commands manage grouping and history.
func (e *Engine) Execute(docName string, cmd Command) error {
	d, ok := e.docs[docName]
	if !ok {
		return ErrNoSuchDocument
	}

	switch cmd.Kind {
	case MetaUndo:
		if !d.Undo() {
			return synlesserr.New(synlesserr.KindEdit, errors.New("nothing to undo"))
		}
		return nil
	case MetaRedo:
		if !d.Redo() {
			return synlesserr.New(synlesserr.KindEdit, errors.New("nothing to redo"))
		}
		return nil
	case MetaEndGroup:
		if cmd.GroupLabel != "" {
			d.SetGroupLabel(cmd.GroupLabel)
		}
		d.EndGroup()
		return nil
	}

	if isTreeNav(cmd.Kind) {
		return e.executeTreeNav(d, cmd)
	}
	if isTextNav(cmd.Kind) {
		return e.executeTextNav(d, cmd)
	}
	switch cmd.Kind {
	case EdInsert, EdReplace, EdBackspace, EdDelete,
		TxtEdInsert, TxtEdBackspace, TxtEdDelete,
		ClipCopy, ClipCut, ClipPaste, ClipPasteSwap, ClipDup, ClipPop:
		// Open the group before the edit moves d.Loc, so its beforeLoc is
		// the location the group began at.
		if d.cur == nil || len(d.cur.prims) == 0 {
			d.cur = &Group{beforeLoc: d.Loc}
		}
	}
	switch cmd.Kind {
	case EdInsert, EdReplace, EdBackspace, EdDelete:
		return e.executeTreeEd(d, cmd)
	case TxtEdInsert, TxtEdBackspace, TxtEdDelete:
		return e.executeTextEd(d, cmd)
	case ClipCopy, ClipCut, ClipPaste, ClipPasteSwap, ClipDup, ClipPop:
		return e.executeClipboard(d, cmd)
	case BmSave, BmGoto:
		return e.executeBookmark(d, cmd)
	}
	return synlesserr.Newf(synlesserr.KindBug, "engine: unhandled command kind %v", cmd.Kind)
}

func isTreeNav(k Kind) bool {
	return k >= NavPrev && k <= NavFirstInsertLoc
}

func isTextNav(k Kind) bool {
	return k >= TxtNavLeft && k <= TxtNavExitText
}

// --- TreeNav ----------------------------------------------------------------

func (e *Engine) executeTreeNav(d *Document, cmd Command) error {
	var next loc.Location
	var ok bool
	switch cmd.Kind {
	case NavPrev:
		next, ok = loc.Prev(d.Loc)
	case NavNext:
		next, ok = loc.Next(d.Loc)
	case NavFirst:
		next, ok = loc.First(d.Loc)
	case NavLast:
		next, ok = loc.Last(d.Loc)
	case NavBeforeFirstChild:
		n := loc.RightNeighbor(d.Loc)
		if n.IsNil() {
			n = loc.LeftNeighbor(d.Loc)
		}
		if !n.IsNil() {
			next, ok = loc.BeforeChildren(n)
		}
	case NavFirstChild:
		n := loc.RightNeighbor(d.Loc)
		if !n.IsNil() {
			next, ok = loc.BeforeChildren(n)
		}
	case NavLastChild:
		n := loc.RightNeighbor(d.Loc)
		if !n.IsNil() {
			next, ok = loc.AfterChildren(n)
		}
	case NavParent:
		next, ok = loc.BeforeParent(d.Loc)
	case NavPrevLeaf, NavNextLeaf:
		next, ok = e.walkToLeaf(d, cmd.Kind == NavNextLeaf)
	case NavPrevText, NavNextText:
		next, ok = e.walkToText(d, cmd.Kind == NavNextText)
	case NavEnterText:
		next, ok = loc.EnterText(d.Loc)
	case NavFirstInsertLoc:
		next, ok = loc.BeforeChildren(d.Root)
	}
	if !ok {
		return synlesserr.New(synlesserr.KindEdit, errors.New("no such location"))
	}
	d.Loc = next
	return nil
}

// walkToLeaf steps the inorder cursor until it lands on a gap immediately
// adjacent to a leaf (texty or childless) node.
func (e *Engine) walkToLeaf(d *Document, forward bool) (loc.Location, bool) {
	cur := d.Loc
	for i := 0; i < 1<<20; i++ {
		var ok bool
		if forward {
			cur, ok = loc.InorderNext(cur)
		} else {
			cur, ok = loc.InorderPrev(cur)
		}
		if !ok {
			return loc.Location{}, false
		}
		n := loc.RightNeighbor(cur)
		if !n.IsNil() && forest.ChildCount(n) == 0 {
			return cur, true
		}
	}
	return loc.Location{}, false
}

// walkToText is walkToLeaf specialized to texty nodes, for NavPrevText /
// NavNextText.
func (e *Engine) walkToText(d *Document, forward bool) (loc.Location, bool) {
	cur := d.Loc
	for i := 0; i < 1<<20; i++ {
		var ok bool
		if forward {
			cur, ok = loc.InorderNext(cur)
		} else {
			cur, ok = loc.InorderPrev(cur)
		}
		if !ok {
			return loc.Location{}, false
		}
		n := loc.RightNeighbor(cur)
		if !n.IsNil() && forest.IsTexty(n) {
			return cur, true
		}
	}
	return loc.Location{}, false
}

// --- TextNav ------------------------------------------------------------

func (e *Engine) executeTextNav(d *Document, cmd Command) error {
	if d.Loc.Kind() != loc.InText {
		return synlesserr.New(synlesserr.KindEdit, errors.New("not in text mode"))
	}
	n := d.Loc.Node()
	switch cmd.Kind {
	case TxtNavLeft:
		if d.Loc.CharIndex() == 0 {
			return synlesserr.New(synlesserr.KindEdit, errors.New("already at text start"))
		}
		d.Loc = loc.AtInText(n, d.Loc.CharIndex()-1)
	case TxtNavRight:
		if d.Loc.CharIndex() >= forest.TextLen(n) {
			return synlesserr.New(synlesserr.KindEdit, errors.New("already at text end"))
		}
		d.Loc = loc.AtInText(n, d.Loc.CharIndex()+1)
	case TxtNavBeginning:
		d.Loc = loc.AtInText(n, 0)
	case TxtNavEnd:
		d.Loc = loc.AtInText(n, forest.TextLen(n))
	case TxtNavExitText:
		next, ok := loc.ExitText(d.Loc)
		if !ok {
			return synlesserr.New(synlesserr.KindEdit, errors.New("not in text mode"))
		}
		d.Loc = next
	}
	return nil
}
