package lang

// Construct is a node kind defined by a language grammar (spec.md §3).
type Construct struct {
	Name  string
	Arity Arity
	Sort  Sort
	// Key is the optional single character used for key-hint display
	// (spec.md §4.A); 0 means no key is bound.
	Key rune
}
