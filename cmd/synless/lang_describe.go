package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/synless-editor/synless/lang"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe <language file>",
		Short:   "Print a language's construct table in readable format",
		Example: `  synless lang describe jsonish.syn`,
		Args:    cobra.ExactArgs(1),
		RunE:    runLangDescribe,
	}
	langCmd.AddCommand(cmd)
}

func runLangDescribe(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	return writeDescription(os.Stdout, g)
}

const describeTemplate = `# Language

{{ .Name }} (.{{ .FileExtension }})

# Hole construct

{{ printHole . }}

# Constructs

{{ range printConstructs . -}}
{{ . }}
{{ end }}`

func writeDescription(w io.Writer, g *lang.Grammar) error {
	fns := template.FuncMap{
		"printHole": func(g *lang.Grammar) string {
			name, ok := g.HoleConstruct()
			if !ok {
				return "(none)"
			}
			return name
		},
		"printConstructs": func(g *lang.Grammar) []string {
			names := g.ConstructNames()
			sort.Strings(names)
			lines := make([]string, 0, len(names))
			for _, name := range names {
				c, err := g.LookupConstruct(name)
				if err != nil {
					continue
				}
				lines = append(lines, printConstruct(c))
			}
			return lines
		},
	}

	tmpl, err := template.New("").Funcs(fns).Parse(describeTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, g)
}

func printConstruct(c *lang.Construct) string {
	key := "-"
	if c.Key != 0 {
		key = string(c.Key)
	}
	switch c.Arity.Kind {
	case lang.Fixed:
		return fmt.Sprintf("%-16v fixed(%v) %v %v", c.Name, c.Arity.N(), c.Sort, key)
	case lang.Listy:
		return fmt.Sprintf("%-16v listy(%v) %v %v", c.Name, c.Arity.Elem, c.Sort, key)
	default:
		return fmt.Sprintf("%-16v texty %v %v", c.Name, c.Sort, key)
	}
}
