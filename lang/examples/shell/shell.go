// Package shell is an example language for cmd/synless's demo mode: a
// single "cmd" construct whose first slot is a shell command and whose
// second slot holds the captured output, run via Exec. Nothing in the
// core depends on this package; it exists only so the CLI has something
// to demo that reaches outside the document (original_source/demo's
// shell_editor.rs did the same against its own toy language).
package shell

import (
	_ "embed"
	"os/exec"
	"strings"

	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/lang/dsl"
)

//go:embed shell.syn
var grammarSrc string

// Grammar loads the shell example language.
func Grammar() (*lang.Grammar, error) {
	return dsl.Load(strings.NewReader(grammarSrc))
}

// Exec runs text as a shell command (via "sh -c") and returns a "cmd" node
// pairing the command text with its combined stdout+stderr, trimmed of a
// single trailing newline. A failing command still produces a node: its
// output is whatever the shell wrote before exiting.
func Exec(a *forest.Arena, g *lang.Grammar, text string) (forest.Node, error) {
	out, _ := exec.Command("sh", "-c", text).CombinedOutput()

	commandNode, err := forest.NewLeaf(a, g, "command", text)
	if err != nil {
		return forest.Nil, err
	}
	outputNode, err := forest.NewLeaf(a, g, "output", strings.TrimSuffix(string(out), "\n"))
	if err != nil {
		return forest.Nil, err
	}
	return forest.NewBranch(a, g, "cmd", commandNode, outputNode)
}
