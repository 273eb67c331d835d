package pretty

import (
	"fmt"

	"github.com/synless-editor/synless/forest"
)

// LinePrinter is a minimal, concrete PrettyDoc walker used by the reference
// frontend and by tests: one line per node, indented by depth, in the
// tree-dump style of a construct-name printer, with the cursor boundary
// drawn as a Highlight call rather than inline text. It is not the
// "external pretty-printer" spec.md §1 leaves out of scope — it is a
// deliberately simple stand-in so frontend/term has something to drive;
// a real notation-driven printer is free to ignore it entirely and walk
// PrettyDoc itself.
type LinePrinter struct {
	IndentWidth int
}

// NewLinePrinter builds a LinePrinter with a 2-space indent.
func NewLinePrinter() *LinePrinter {
	return &LinePrinter{IndentWidth: 2}
}

// Print walks doc from root, emitting Print/Highlight calls into screen.
// Returns the number of lines written.
func (p *LinePrinter) Print(doc PrettyDoc, root forest.Node, screen Screen) int {
	row := 0
	p.printNode(doc, root, 0, &row, screen)
	return row
}

func (p *LinePrinter) printNode(doc PrettyDoc, n forest.Node, depth int, row *int, screen Screen) {
	indent := depth * p.IndentWidth
	label := constructLabel(doc, n)

	if doc.IsTexty(n) {
		screen.Print(Pos{Col: indent, Row: *row}, label, nil)
		if idx, ok := doc.CursorInText(n); ok {
			screen.Highlight(Pos{Col: indent + len(label) - len(doc.Text(n)) + idx, Row: *row}, CursorOpen)
		}
		*row++
		return
	}

	screen.Print(Pos{Col: indent, Row: *row}, label, nil)
	if doc.CursorAt(n, 0) != NoCursor && doc.ChildCount(n) == 0 {
		screen.Highlight(Pos{Col: indent + len(label) + 1, Row: *row}, CursorOpen)
	}
	*row++

	count := doc.ChildCount(n)
	for i := 0; i < count; i++ {
		if doc.CursorAt(n, i) != NoCursor {
			screen.Highlight(Pos{Col: (depth + 1) * p.IndentWidth, Row: *row}, CursorOpen)
		}
		p.printNode(doc, doc.Child(n, i), depth+1, row, screen)
	}
	if doc.CursorAt(n, count) != NoCursor {
		screen.Highlight(Pos{Col: (depth + 1) * p.IndentWidth, Row: *row}, CursorClose)
	}
}

func constructLabel(doc PrettyDoc, n forest.Node) string {
	if doc.IsTexty(n) {
		return fmt.Sprintf("%s %q", forest.Construct(n).Name, doc.Text(n))
	}
	return forest.Construct(n).Name
}
