package engine

import (
	"errors"

	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/loc"
	"github.com/synless-editor/synless/synlesserr"
)

// executeBookmark implements spec.md §3's Bookmark group: a label-keyed
// saved reference to a node that may dangle if its subtree is later
// deleted. Saving and jumping are not undoable tree edits, so neither case
// records a primitive.
func (e *Engine) executeBookmark(d *Document, cmd Command) error {
	switch cmd.Kind {
	case BmSave:
		n := loc.RightNeighbor(d.Loc)
		if n.IsNil() {
			return synlesserr.New(synlesserr.KindEdit, errors.New("no node under cursor to bookmark"))
		}
		d.bookmarks[cmd.Label] = forest.NewBookmark(n)
		return nil

	case BmGoto:
		b, ok := d.bookmarks[cmd.Label]
		if !ok {
			return synlesserr.New(synlesserr.KindEdit, errors.New("no bookmark with that label"))
		}
		n, ok := b.Resolve(d.Root)
		if !ok {
			return synlesserr.New(synlesserr.KindEdit, errors.New("bookmark no longer resolves"))
		}
		d.Loc = loc.AtAfterNode(n)
		return nil
	}
	return synlesserr.Newf(synlesserr.KindBug, "engine: unreachable bookmark kind %v", cmd.Kind)
}
