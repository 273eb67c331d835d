package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/lang/dsl"
	"github.com/synless-editor/synless/lang/yamlspec"
)

// loadGrammar picks a loader by file extension: ".syn"/".dsl" for the
// textual DSL format (lang/dsl), ".yaml"/".yml" for the alternative
// YAML encoding (lang/yamlspec) — the same "file extension selects the
// compiler" shape as vartan compile reading a single grammar file.
func loadGrammar(path string) (*lang.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open language description %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlspec.Load(f)
	case ".syn", ".dsl", "":
		return dsl.Load(f)
	default:
		return dsl.Load(f)
	}
}
