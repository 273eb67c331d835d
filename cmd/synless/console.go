package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/synless-editor/synless/engine"
	"github.com/synless-editor/synless/internal/statusline"
	"github.com/synless-editor/synless/pretty"
	"github.com/synless-editor/synless/script"
)

// runConsole is an interactive Starlark console over the command API,
// mirroring gorgo's trepl/repl.go: a readline prompt, one program per
// line, the document re-rendered after each. Unlike trepl it has no
// persistent environment to carry between lines — every line is its own
// program, registered and run immediately.
func runConsole(h *script.Host, e *engine.Engine, docName string) error {
	repl, err := readline.New("synless> ")
	if err != nil {
		return err
	}
	defer repl.Close()

	statusline.Info("Starlark console. One command per line, Ctrl-D to quit.")
	n := 0
	for {
		line, err := repl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		n++
		name := fmt.Sprintf("console-%d", n)
		h.Register(name, line+"\n")
		if err := h.RunProgram(name); err != nil {
			statusline.Error(err)
			continue
		}
		if h.Blocked() {
			if err := resolveBlockedKey(repl, h); err != nil {
				statusline.Error(err)
			}
		}
		printDoc(e, docName)
	}
	fmt.Println("Good bye!")
	return nil
}

// resolveBlockedKey prompts for one more line and feeds its first
// character to block_on_key, letting a console user drive a scripted
// suspend/resume program interactively.
func resolveBlockedKey(repl *readline.Instance, h *script.Host) error {
	repl.SetPrompt("  key> ")
	defer repl.SetPrompt("synless> ")
	line, err := repl.Readline()
	if err != nil {
		return err
	}
	return h.BlockOnKey(consoleKey(line))
}

func consoleKey(line string) script.Key {
	switch line {
	case "":
		return script.Key{Named: "Return"}
	case "<esc>":
		return script.Key{Named: "Esc"}
	case "<backspace>":
		return script.Key{Named: "Backspace"}
	}
	return script.Key{Char: []rune(line)[0]}
}

func printDoc(e *engine.Engine, docName string) {
	d, ok := e.Document(docName)
	if !ok {
		return
	}
	doc := pretty.NewDoc(d.Root, d.Loc)
	rec := pretty.NewRecordingScreen()
	pretty.NewLinePrinter().Print(doc, d.Root, rec)
	for _, p := range rec.Prints {
		fmt.Printf("%*s%s\n", p.Pos.Col, "", p.Text)
	}
}
