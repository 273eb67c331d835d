// Package engine implements the command engine of spec.md §4.D: the closed
// editing-command vocabulary, group-committed undo/redo, and the clipboard
// stack, all executed against one Document at a time.
package engine

import "github.com/synless-editor/synless/forest"

// Kind enumerates every command primitive the engine accepts, flattened
// from spec.md §4.D's six command groups (TreeNav, TreeEd, TextNav, TextEd,
// Clipboard, Bookmark) plus Meta.
type Kind int

const (
	// TreeNav
	NavPrev Kind = iota
	NavNext
	NavFirst
	NavLast
	NavBeforeFirstChild
	NavFirstChild
	NavLastChild
	NavParent
	NavPrevLeaf
	NavNextLeaf
	NavPrevText
	NavNextText
	NavEnterText
	NavFirstInsertLoc

	// TreeEd
	EdInsert
	EdReplace
	EdBackspace
	EdDelete

	// TextNav
	TxtNavLeft
	TxtNavRight
	TxtNavBeginning
	TxtNavEnd
	TxtNavExitText

	// TextEd
	TxtEdInsert
	TxtEdBackspace
	TxtEdDelete

	// Clipboard
	ClipCopy
	ClipCut
	ClipPaste
	ClipPasteSwap
	ClipDup
	ClipPop

	// Bookmark
	BmSave
	BmGoto

	// Meta
	MetaUndo
	MetaRedo
	MetaEndGroup
)

// Command is a single editing command submitted to Execute. Only the
// fields relevant to Kind are read: Node for EdInsert/EdReplace, Ch for
// TxtEdInsert, Label for BmSave/BmGoto.
type Command struct {
	Kind  Kind
	Node  forest.Node
	Ch    rune
	Label rune

	// GroupLabel tags the undo group MetaEndGroup is about to commit
	// (e.g. "insert", "paste"), surfaced later by Document.LastUndoLabel.
	// Only read for MetaEndGroup; empty means leave any existing label
	// alone.
	GroupLabel string
}

// Convenience constructors, one per variant (spec.md §4.D's table), so
// callers never build a Command literal by hand.

func Prev() Command              { return Command{Kind: NavPrev} }
func Next() Command              { return Command{Kind: NavNext} }
func First() Command             { return Command{Kind: NavFirst} }
func Last() Command              { return Command{Kind: NavLast} }
func BeforeFirstChild() Command  { return Command{Kind: NavBeforeFirstChild} }
func FirstChild() Command        { return Command{Kind: NavFirstChild} }
func LastChild() Command         { return Command{Kind: NavLastChild} }
func Parent() Command            { return Command{Kind: NavParent} }
func PrevLeaf() Command          { return Command{Kind: NavPrevLeaf} }
func NextLeaf() Command          { return Command{Kind: NavNextLeaf} }
func PrevText() Command          { return Command{Kind: NavPrevText} }
func NextText() Command          { return Command{Kind: NavNextText} }
func EnterText() Command         { return Command{Kind: NavEnterText} }
func FirstInsertLoc() Command    { return Command{Kind: NavFirstInsertLoc} }

func Insert(n forest.Node) Command  { return Command{Kind: EdInsert, Node: n} }
func Replace(n forest.Node) Command { return Command{Kind: EdReplace, Node: n} }
func Backspace() Command            { return Command{Kind: EdBackspace} }
func Delete() Command                { return Command{Kind: EdDelete} }

func TextLeft() Command      { return Command{Kind: TxtNavLeft} }
func TextRight() Command     { return Command{Kind: TxtNavRight} }
func TextBeginning() Command { return Command{Kind: TxtNavBeginning} }
func TextEnd() Command       { return Command{Kind: TxtNavEnd} }
func ExitText() Command      { return Command{Kind: TxtNavExitText} }

func TextInsert(ch rune) Command { return Command{Kind: TxtEdInsert, Ch: ch} }
func TextBackspace() Command     { return Command{Kind: TxtEdBackspace} }
func TextDelete() Command        { return Command{Kind: TxtEdDelete} }

func Copy() Command      { return Command{Kind: ClipCopy} }
func Cut() Command       { return Command{Kind: ClipCut} }
func Paste() Command     { return Command{Kind: ClipPaste} }
func PasteSwap() Command { return Command{Kind: ClipPasteSwap} }
func Dup() Command       { return Command{Kind: ClipDup} }
func Pop() Command       { return Command{Kind: ClipPop} }

func SaveBookmark(label rune) Command { return Command{Kind: BmSave, Label: label} }
func GotoBookmark(label rune) Command { return Command{Kind: BmGoto, Label: label} }

func Undo() Command     { return Command{Kind: MetaUndo} }
func Redo() Command     { return Command{Kind: MetaRedo} }
func EndGroup() Command { return Command{Kind: MetaEndGroup} }

// EndGroupLabeled is EndGroup, additionally tagging the committed group
// with label (SPEC_FULL.md's undo-group-labels supplemented feature).
func EndGroupLabeled(label string) Command {
	return Command{Kind: MetaEndGroup, GroupLabel: label}
}
