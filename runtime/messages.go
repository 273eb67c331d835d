package runtime

import (
	"github.com/synless-editor/synless/engine"
	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/lang"
)

// messagesMaxLines bounds how many log entries Messages keeps before
// evicting the oldest (spec.md §7: Edit errors surface through an
// auxiliary document, not a one-shot popup).
const messagesMaxLines = 200

func messagesGrammar() *lang.Grammar {
	g := lang.NewGrammar("messages", "")
	g.DefineSort("line")
	g.DefineSort("log")
	g.DefineConstruct(&lang.Construct{Name: "entry", Arity: lang.TextyArity(), Sort: lang.NamedSort("line")})
	g.DefineConstruct(&lang.Construct{Name: "log", Arity: lang.ListyArity(lang.NamedSort("line")), Sort: lang.NamedSort("log")})
	return g
}

// Messages is the runtime's auxiliary log document: every error the event
// loop reports gets appended here as one line, rendered the same way any
// other document is; undo/redo group labels are not written here (spec.md §7 "reported through an
// auxiliary document").
type Messages struct {
	grammar *lang.Grammar
	arena   *forest.Arena
	doc     *engine.Document
}

// NewMessages builds an empty Messages log.
func NewMessages() *Messages {
	g := messagesGrammar()
	a := forest.NewArena()
	root, err := forest.NewBranch(a, g, "log")
	if err != nil {
		panic(err) // the grammar above is self-consistent by construction
	}
	return &Messages{
		grammar: g,
		arena:   a,
		doc:     engine.NewDocument("messages", "", g, a, root),
	}
}

// Document exposes the underlying engine.Document so it can be rendered
// through the same pane/pretty pipeline as any editable document.
func (m *Messages) Document() *engine.Document { return m.doc }

// Report appends text as a new last line, evicting the oldest line once
// messagesMaxLines is exceeded.
func (m *Messages) Report(text string) {
	line, err := forest.NewLeaf(m.arena, m.grammar, "entry", text)
	if err != nil {
		return
	}
	forest.InsertLastChild(m.doc.Root, line)
	if forest.ChildCount(m.doc.Root) > messagesMaxLines {
		forest.Delete(m.arena, forest.FirstChild(m.doc.Root))
	}
}
