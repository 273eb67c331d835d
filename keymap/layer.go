package keymap

import "github.com/synless-editor/synless/lang"

// Mode distinguishes tree-mode from text-mode key lookup (spec.md §4.G).
type Mode int

const (
	Tree Mode = iota
	Text
)

// Action is an internal action a binding can name instead of handing off
// to the scripting host (spec.md §4.G: "an internal action (InsertChar,
// Redisplay)").
type Action int

const (
	NoAction Action = iota
	ActionInsertChar
	ActionRedisplay
)

// Context is the node-shaped predicate input a tree-mode binding's filter
// is evaluated against: the sort, parent arity, and own arity of the
// construct at the cursor's right-neighbor (or parent, if none) (spec.md
// §4.G: "predicates on the current construct (sort, parent-arity,
// self-arity)").
type Context struct {
	Sort        lang.Sort
	ParentArity lang.ArityKind
	SelfArity   lang.ArityKind
}

// Filter gates an individual binding; a nil Filter always applies.
type Filter func(Context) bool

// Binding is what a Key resolves to: either a named program handed off to
// the scripting host, or an internal Action.
type Binding struct {
	Program string // non-empty selects a scripting-host program
	Action  Action // used when Program == ""
	Filter  Filter // tree-mode only; nil means unconditional
}

// IsProgram reports whether b hands off to a named scripting-host program
// rather than an internal Action.
func (b Binding) IsProgram() bool { return b.Program != "" }

// Layer bundles a name with separate tree-mode and text-mode keymaps.
type Layer struct {
	Name string
	Tree map[Key]Binding
	Text map[Key]Binding
}

// NewLayer builds an empty named layer.
func NewLayer(name string) *Layer {
	return &Layer{Name: name, Tree: make(map[Key]Binding), Text: make(map[Key]Binding)}
}

// BindTree adds/overwrites a tree-mode binding.
func (l *Layer) BindTree(k Key, b Binding) { l.Tree[k] = b }

// BindText adds/overwrites a text-mode binding.
func (l *Layer) BindText(k Key, b Binding) { l.Text[k] = b }
