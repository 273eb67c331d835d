package engine

import (
	"errors"

	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/loc"
	"github.com/synless-editor/synless/synlesserr"
)

// executeTextEd implements spec.md §4.D's TextEd group against the texty
// node the cursor currently sits inside.
func (e *Engine) executeTextEd(d *Document, cmd Command) error {
	if d.Loc.Kind() != loc.InText {
		return synlesserr.New(synlesserr.KindEdit, errors.New("not in text mode"))
	}
	n := d.Loc.Node()
	idx := d.Loc.CharIndex()

	switch cmd.Kind {
	case TxtEdInsert:
		s := string(cmd.Ch)
		forest.InsertTextAt(n, idx, s)
		d.Loc = loc.AtInText(n, idx+1)
		d.record(primitive{
			redo: func() { forest.InsertTextAt(n, idx, s) },
			undo: func() { forest.DeleteTextAt(n, idx) },
		})
		return nil

	case TxtEdBackspace:
		if idx == 0 {
			return synlesserr.New(synlesserr.KindEdit, errors.New("already at text start"))
		}
		removed := forest.DeleteTextAt(n, idx-1)
		d.Loc = loc.AtInText(n, idx-1)
		d.record(primitive{
			redo: func() { forest.DeleteTextAt(n, idx-1) },
			undo: func() { forest.InsertTextAt(n, idx-1, string(removed)) },
		})
		return nil

	case TxtEdDelete:
		if idx >= forest.TextLen(n) {
			return synlesserr.New(synlesserr.KindEdit, errors.New("already at text end"))
		}
		removed := forest.DeleteTextAt(n, idx)
		d.record(primitive{
			redo: func() { forest.DeleteTextAt(n, idx) },
			undo: func() { forest.InsertTextAt(n, idx, string(removed)) },
		})
		return nil
	}
	return synlesserr.Newf(synlesserr.KindBug, "engine: unreachable text-ed kind %v", cmd.Kind)
}
