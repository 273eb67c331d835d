package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/synless-editor/synless/tester"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <language file> <test file path>|<test directory path>",
		Short:   "Run scenario test files against a language",
		Example: `  synless test jsonish.syn test`,
		Args:    cobra.ExactArgs(2),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return fmt.Errorf("cannot read a language: %w", err)
	}

	cs := tester.ListTestCases(args[1])
	errOccurred := false
	for _, c := range cs {
		if c.Error != nil {
			fmt.Fprintf(os.Stderr, "Failed to read a test case or a directory: %v\n%v\n", c.FilePath, c.Error)
			errOccurred = true
		}
	}
	if errOccurred {
		return errors.New("cannot run test")
	}

	t := &tester.Tester{Grammar: g, Cases: cs}
	rs := t.Run()
	testFailed := false
	for _, r := range rs {
		fmt.Fprintln(os.Stdout, r)
		if r.Error != nil {
			testFailed = true
		}
	}
	if testFailed {
		return errors.New("test failed")
	}
	return nil
}
