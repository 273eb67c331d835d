package forest

import "github.com/synless-editor/synless/lang"

// Construct returns n's construct.
func Construct(n Node) *lang.Construct {
	return n.data().construct
}

// Grammar returns the language n's construct was drawn from.
func Grammar(n Node) *lang.Grammar {
	return n.data().grammar
}

// Sort returns the sort n's construct satisfies.
func Sort(n Node) lang.Sort {
	return n.data().construct.Sort
}

// Arity returns n's construct's arity.
func Arity(n Node) lang.Arity {
	return n.data().construct.Arity
}

// IsTexty reports whether n is a texty leaf.
func IsTexty(n Node) bool {
	return n.data().construct.Arity.Kind == lang.Texty
}

// ArenaOf returns the arena n was allocated in, for callers that hold onto a
// bare node handle (e.g. a clipboard stack) without separately tracking
// which arena it belongs to.
func ArenaOf(n Node) *Arena {
	return n.arena
}
