package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "synless",
	Short: "A structural, language-aware tree editor",
	Long: `synless edits trees instead of text: every buffer is a structured
document shaped by a language's construct grammar, not a string.

It provides three features:
- Runs an interactive editor on a fresh in-memory document in a language.
- Describes and lints language-description files (the textual DSL or its
  YAML alternative).
- Runs scenario test files against a language, the same way a grammar
  author verifies their construct set behaves as intended.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
