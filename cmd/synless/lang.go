package main

import "github.com/spf13/cobra"

var langCmd = &cobra.Command{
	Use:   "lang",
	Short: "Inspect language-description files",
}

func init() {
	rootCmd.AddCommand(langCmd)
}
