// Package yamlspec implements a second concrete encoding of the textual
// language-description format of spec.md §6, in YAML instead of the
// dsl package's bespoke grammar. Grounded on uber-research's per-format
// loader-package idiom (analyzer/yaml): one package per concrete external
// format, translating it into the shared in-memory model (here,
// *lang.Grammar) rather than teaching the core about YAML directly.
package yamlspec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/synlesserr"
)

type document struct {
	Name       string          `yaml:"name"`
	Extension  string          `yaml:"extension"`
	Sorts      []string        `yaml:"sorts"`
	Constructs []constructYAML `yaml:"constructs"`
}

type constructYAML struct {
	Name  string   `yaml:"name"`
	Arity string   `yaml:"arity"` // "texty", "listy", or "fixed"
	Slots []string `yaml:"slots"` // for fixed: one sort name per slot
	Elem  string   `yaml:"elem"`  // for listy: the element sort name
	Sort  string   `yaml:"sort"`
	Key   string   `yaml:"key"` // optional single character
}

// Load parses a YAML-encoded language description into a *lang.Grammar.
func Load(r io.Reader) (*lang.Grammar, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, synlesserr.New(synlesserr.KindLanguage, err)
	}

	g := lang.NewGrammar(doc.Name, doc.Extension)

	var errs []error
	for _, s := range doc.Sorts {
		if err := g.DefineSort(s); err != nil {
			errs = append(errs, fmt.Errorf("sort %q: %w", s, err))
		}
	}

	sortRef := func(name string) lang.Sort {
		if name == "" || name == "Any" {
			return lang.AnySort
		}
		return lang.NamedSort(name)
	}

	for _, c := range doc.Constructs {
		var arity lang.Arity
		switch c.Arity {
		case "texty":
			arity = lang.TextyArity()
		case "listy":
			arity = lang.ListyArity(sortRef(c.Elem))
		case "fixed":
			slots := make([]lang.Sort, len(c.Slots))
			for i, s := range c.Slots {
				slots[i] = sortRef(s)
			}
			arity = lang.FixedArity(slots...)
		default:
			errs = append(errs, fmt.Errorf("construct %q: unknown arity %q", c.Name, c.Arity))
			continue
		}

		var key rune
		if c.Key != "" {
			key = []rune(c.Key)[0]
		}

		if err := g.DefineConstruct(&lang.Construct{
			Name:  c.Name,
			Arity: arity,
			Sort:  sortRef(c.Sort),
			Key:   key,
		}); err != nil {
			errs = append(errs, fmt.Errorf("construct %q: %w", c.Name, err))
		}
	}

	if _, err := g.LookupConstruct("hole"); err == nil {
		_ = g.SetHoleConstruct("hole")
	}

	if len(errs) > 0 {
		return nil, synlesserr.Aggregate(synlesserr.KindLanguage, errs...)
	}
	return g, nil
}
