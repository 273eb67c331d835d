package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/synless-editor/synless/engine"
	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/frontend/term"
	"github.com/synless-editor/synless/internal/statusline"
	"github.com/synless-editor/synless/keymap"
	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/pane"
	"github.com/synless-editor/synless/runtime"
	"github.com/synless-editor/synless/script"
)

var runFlags = struct {
	console bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "run <language file> [document name]",
		Short:   "Start an editing session against a fresh document",
		Example: "  synless run jsonish.syn scratch\n  synless run jsonish.syn scratch --console",
		Args:    cobra.RangeArgs(1, 2),
		RunE:    runRun,
	}
	cmd.Flags().BoolVar(&runFlags.console, "console", false, "drive the document through an interactive Starlark console instead of the terminal frontend")
	rootCmd.AddCommand(cmd)
}

const defaultDocName = "scratch"

func runRun(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return fmt.Errorf("cannot read a language: %w", err)
	}
	docName := defaultDocName
	if len(args) == 2 {
		docName = args[1]
	}

	registry := lang.NewRegistry()
	if err := registry.Register(g); err != nil {
		return err
	}
	e := engine.New(registry)

	a := forest.NewArena()
	root, err := forest.NewHole(a, g)
	if err != nil {
		return fmt.Errorf("building initial document: %w", err)
	}
	e.AddDocument(engine.NewDocument(docName, args[0], g, a, root))

	bc := &boundCommands{engine: e, doc: docName}
	h := script.NewHost(bc)

	if runFlags.console {
		return runConsole(h, e, docName)
	}
	return runTermSession(e, h, docName)
}

// boundCommands implements script.Commands against a single named
// document, the same binding runtime.Editor.Execute does for the visible
// document (and tester.boundCommands for a scenario's document).
type boundCommands struct {
	engine *engine.Engine
	doc    string
}

func (b *boundCommands) Execute(cmd engine.Command) error {
	return b.engine.Execute(b.doc, cmd)
}

func runTermSession(e *engine.Engine, h *script.Host, docName string) error {
	fe := term.New()
	layers := keymap.NewLayerStack()
	layers.Push(buildDefaultLayer(h))

	ed := runtime.NewEditor(e, layers, fe)
	ed.Script = h
	ed.VisibleDoc = docName
	ed.PaneNotation = pane.Vert{Children: []pane.Child{
		{Size: pane.Dynamic(), Pane: pane.Doc{Label: "visible"}},
		{Size: pane.Fixed(3), Pane: pane.Doc{Label: "messages"}},
	}}

	stop := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		close(stop)
	}()

	statusline.Info(fmt.Sprintf("editing %q, quit with Ctrl-C", docName))
	return ed.Run(stop)
}
