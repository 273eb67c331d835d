package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synless-editor/synless/engine"
	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/lang/examples/shell"
)

func init() {
	cmd := &cobra.Command{
		Use:     "demo-shell <command>",
		Short:   "Run a shell command and splice its output into a tiny demo document",
		Example: `  synless demo-shell "ls -1"`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDemoShell,
	}
	rootCmd.AddCommand(cmd)
}

const demoShellDoc = "demo-shell"

func runDemoShell(cmd *cobra.Command, args []string) error {
	g, err := shell.Grammar()
	if err != nil {
		return fmt.Errorf("loading shell example language: %w", err)
	}

	registry := lang.NewRegistry()
	if err := registry.Register(g); err != nil {
		return err
	}
	e := engine.New(registry)

	a := forest.NewArena()
	root, err := shell.Exec(a, g, args[0])
	if err != nil {
		return fmt.Errorf("running command: %w", err)
	}
	e.AddDocument(engine.NewDocument(demoShellDoc, "<demo-shell>", g, a, root))

	printDoc(e, demoShellDoc)
	return nil
}
