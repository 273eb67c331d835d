package dsl

import (
	"fmt"
	"io"

	mldriver "github.com/nihei9/maleeni/driver"
)

// token is a lexed unit of the language-description format, following
// spec/lexer.go's token shape but without the vartan-specific BNF token
// kinds (colon/or/semicolon for alternatives, tree-node markers, etc. are
// dropped; this format's token set is listed in lexspec.go).
type token struct {
	kind string
	text string
	row  int
}

func (t token) String() string {
	return fmt.Sprintf("%v(%q)@%v", t.kind, t.text, t.row)
}

type lexer struct {
	d   *mldriver.Lexer
	row int
}

func newLexer(src io.Reader) (*lexer, error) {
	d, err := mldriver.NewLexer(compiledLexSpec, src)
	if err != nil {
		return nil, err
	}
	return &lexer{d: d, row: 1}, nil
}

// next returns the next significant token, skipping whitespace, comments,
// and counting newlines into row, matching spec/lexer.go's
// lexAndSkipWSs shape.
func (l *lexer) next() (*token, error) {
	for {
		tok, err := l.d.Next()
		if err != nil {
			return nil, err
		}
		if tok.Invalid {
			return nil, fmt.Errorf("invalid token at row %v: %q", l.row, tok.Text())
		}
		if tok.EOF {
			return &token{kind: "eof", row: l.row}, nil
		}
		switch tok.KindName {
		case "white_space":
			l.row += countNewlines(tok.Text())
			continue
		case "line_comment":
			continue
		}
		return &token{kind: string(tok.KindName), text: tok.Text(), row: l.row}, nil
	}
}

func countNewlines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
