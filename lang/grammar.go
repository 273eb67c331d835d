// Package lang implements the language registry (spec.md §4.A): a
// process-wide map from language name to grammar, where a grammar exposes
// its construct set, per-construct arity/sort/key, a file-extension
// mapping, and a notation set bound to it separately once loaded.
package lang

import (
	"sync"

	"golang.org/x/tools/container/intsets"
)

// Grammar is a single registered language's construct/sort tables.
type Grammar struct {
	Name          string
	FileExtension string

	Constructs map[string]*Construct
	order      []string // construct registration order, for stable iteration

	sortIDs    map[string]int // named sort -> stable id
	sortNames  []string       // id -> name
	definedSet intsets.Sparse // ids of sorts this grammar actually defines
	notation   *NotationSet
	hole       string // name of the construct used as a placeholder hole
}

// NewGrammar starts an empty grammar builder for name/ext.
func NewGrammar(name, fileExtension string) *Grammar {
	return &Grammar{
		Name:          name,
		FileExtension: fileExtension,
		Constructs:    make(map[string]*Construct),
		sortIDs:       make(map[string]int),
	}
}

// DefineSort registers a named sort, returning ErrDuplicateSort if it is
// already defined (or collides with a construct name, returning
// ErrDuplicateConstructAndSort).
func (g *Grammar) DefineSort(name string) error {
	if _, ok := g.Constructs[name]; ok {
		return ErrDuplicateConstructAndSort
	}
	if _, ok := g.sortIDs[name]; ok {
		return ErrDuplicateSort
	}
	id := len(g.sortNames)
	g.sortIDs[name] = id
	g.sortNames = append(g.sortNames, name)
	g.definedSet.Insert(id)
	return nil
}

// sortDefined reports whether name was registered via DefineSort, or is the
// universal Any sort.
func (g *Grammar) sortDefined(s Sort) bool {
	if s.IsAny() {
		return true
	}
	id, ok := g.sortIDs[s.name]
	if !ok {
		return false
	}
	return g.definedSet.Has(id)
}

// DefineConstruct registers a construct. It rejects duplicate construct
// names (ErrDuplicateConstruct), a name already used by a sort
// (ErrDuplicateConstructAndSort), and any reference to an undefined sort
// (ErrUndefinedConstructOrSort), per spec.md §4.A.
func (g *Grammar) DefineConstruct(c *Construct) error {
	if _, ok := g.sortIDs[c.Name]; ok {
		return ErrDuplicateConstructAndSort
	}
	if _, ok := g.Constructs[c.Name]; ok {
		return ErrDuplicateConstruct
	}
	if !g.sortDefined(c.Sort) {
		return ErrUndefinedConstructOrSort
	}
	switch c.Arity.Kind {
	case Fixed:
		for _, slot := range c.Arity.Slots {
			if !g.sortDefined(slot) {
				return ErrUndefinedConstructOrSort
			}
		}
	case Listy:
		if !g.sortDefined(c.Arity.Elem) {
			return ErrUndefinedConstructOrSort
		}
	}
	g.Constructs[c.Name] = c
	g.order = append(g.order, c.Name)
	return nil
}

// LookupConstruct finds a registered construct by name.
func (g *Grammar) LookupConstruct(name string) (*Construct, error) {
	c, ok := g.Constructs[name]
	if !ok {
		return nil, ErrUndefinedConstructOrSort
	}
	return c, nil
}

// ConstructNames returns construct names in registration order.
func (g *Grammar) ConstructNames() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// SetHoleConstruct designates the construct used as a fixed-slot
// placeholder (spec.md §3 "Hole"). The construct must already be defined.
func (g *Grammar) SetHoleConstruct(name string) error {
	if _, ok := g.Constructs[name]; !ok {
		return ErrUndefinedConstructOrSort
	}
	g.hole = name
	return nil
}

// HoleConstruct returns the designated hole construct's name, if set.
func (g *Grammar) HoleConstruct() (string, bool) {
	return g.hole, g.hole != ""
}

// BindNotationSet attaches a validated notation set to the grammar.
func (g *Grammar) BindNotationSet(ns *NotationSet) {
	g.notation = ns
}

// Notation returns the grammar's bound notation set, if any.
func (g *Grammar) Notation() *NotationSet {
	return g.notation
}

// Registry is a process-wide map from language name to grammar.
type Registry struct {
	mu        sync.RWMutex
	languages map[string]*Grammar
}

// NewRegistry creates an empty registry. Most programs use the package-level
// Default registry instead.
func NewRegistry() *Registry {
	return &Registry{languages: make(map[string]*Grammar)}
}

// Default is the process-wide registry instance.
var Default = NewRegistry()

// Register adds a grammar under its own Name, rejecting duplicates.
func (r *Registry) Register(g *Grammar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.languages[g.Name]; ok {
		return ErrDuplicateLanguage
	}
	r.languages[g.Name] = g
	return nil
}

// Lookup finds a registered grammar by language name.
func (r *Registry) Lookup(name string) (*Grammar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.languages[name]
	if !ok {
		return nil, ErrUndefinedLanguage
	}
	return g, nil
}

// ByExtension finds a registered grammar whose FileExtension matches ext.
func (r *Registry) ByExtension(ext string) (*Grammar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.languages {
		if g.FileExtension == ext {
			return g, nil
		}
	}
	return nil, ErrUndefinedLanguage
}
