package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synless-editor/synless/internal/statusline"
)

func init() {
	cmd := &cobra.Command{
		Use:     "lint <language file>",
		Short:   "Validate a language-description file",
		Example: `  synless lang lint jsonish.syn`,
		Args:    cobra.ExactArgs(1),
		RunE:    runLangLint,
	}
	langCmd.AddCommand(cmd)
}

func runLangLint(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		statusline.Error(err)
		return err
	}
	if _, ok := g.HoleConstruct(); !ok {
		statusline.Warning(fmt.Sprintf("%s: no construct is designated as the hole placeholder", args[0]))
	}
	statusline.Info(fmt.Sprintf("%s: %v constructs, no errors", args[0], len(g.ConstructNames())))
	return nil
}
