package tester

import (
	"strings"

	"github.com/synless-editor/synless/pretty"
)

// renderFrame turns a RecordingScreen's buffered Print calls into the text
// a terminal would show: LinePrinter emits exactly one Print per row
// (pretty/print.go), so reassembling is just indenting each line by its
// column and joining in row order.
func renderFrame(rec *pretty.RecordingScreen) string {
	var b strings.Builder
	for i, p := range rec.Prints {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(" ", p.Pos.Col))
		b.WriteString(p.Text)
	}
	return b.String()
}
