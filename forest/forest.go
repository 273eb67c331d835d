// Package forest implements the typed tree arena of spec.md §3/§4.B: a
// single generational-index pool of nodes per Arena, with parent/child
// invariants, texty leaf text buffers, and bookmarks.
//
// A Node is a copyable handle into an Arena; it conveys no ownership and
// carries no lifetime, following the teacher's cyclic-reference design note
// (spec.md §9, "Cyclic parent↔child references"): all traversal and
// mutation funnel through the Arena so invariants are enforced in one
// place.
package forest

import (
	"errors"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/synless-editor/synless/lang"
)

// ErrCycle is returned when a mutation would parent a node under a node in
// its own tree (spec.md §4.B: "the engine checks root(m) != root(n); ...
// either returns false or aborts ('cycle thwarted')"). The editor treats
// this as a normal, documented failure (spec.md §8 scenario 3), not a Bug
// panic.
var ErrCycle = errors.New("cycle thwarted")

// ErrArityMismatch is returned when an insert/swap would violate a
// construct's arity or a slot's required sort.
var ErrArityMismatch = errors.New("arity or sort mismatch")

// ErrTextyNode is returned by structural operations applied to a texty
// node, and by text operations applied to a non-texty node.
var ErrTextyNode = errors.New("operation not valid on a texty node")

const nilIdx = ^uint32(0)

// Node is a copyable handle into an Arena's node pool.
type Node struct {
	arena *Arena
	idx   uint32
	gen   uint32
}

// Nil is the zero-value handle: no node.
var Nil = Node{idx: nilIdx}

// IsNil reports whether n is the absence-of-a-node handle.
func (n Node) IsNil() bool {
	return n.idx == nilIdx
}

// IsValid reports whether n still refers to a live node: the arena slot at
// n's index has not been freed and reused since n was minted (spec.md §3:
// "A handle to a deleted node is invalid").
func (n Node) IsValid() bool {
	if n.IsNil() || n.arena == nil {
		return false
	}
	return n.arena.isValid(n)
}

type nodeData struct {
	construct *lang.Construct
	grammar   *lang.Grammar
	parent    Node
	children  *arraylist.List // []Node, for Fixed/Listy
	text      []rune          // for Texty
}

type slot struct {
	gen  uint32
	live bool
	data *nodeData
}

// Arena is a single generational-index pool of nodes.
type Arena struct {
	slots []slot
	free  *arraylist.List // free slot indices (uint32), gods-backed per
	// gorgo's lr/tables.go precedent for arraylist-backed index pools
}

// NewArena creates an empty node arena.
func NewArena() *Arena {
	return &Arena{free: arraylist.New()}
}

func (a *Arena) isValid(n Node) bool {
	if int(n.idx) >= len(a.slots) {
		return false
	}
	s := a.slots[n.idx]
	return s.live && s.gen == n.gen
}

func (a *Arena) mustData(n Node, op string) *nodeData {
	if !a.isValid(n) {
		panic("forest: " + op + " called on an invalid node handle")
	}
	return a.slots[n.idx].data
}

func (a *Arena) alloc(d *nodeData) Node {
	if a.free.Size() > 0 {
		v, _ := a.free.Get(a.free.Size() - 1)
		a.free.Remove(a.free.Size() - 1)
		idx := v.(uint32)
		a.slots[idx].live = true
		a.slots[idx].data = d
		a.slots[idx].gen++
		return Node{arena: a, idx: idx, gen: a.slots[idx].gen}
	}
	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot{gen: 1, live: true, data: d})
	return Node{arena: a, idx: idx, gen: 1}
}

func newChildren(nodes ...Node) *arraylist.List {
	l := arraylist.New()
	for _, n := range nodes {
		l.Add(n)
	}
	return l
}

// --- Construction (spec.md §3 "Lifecycle") ---------------------------------

// NewHole creates a hole node: an instance of the grammar's
// designated hole construct, used as a placeholder in a fixed slot.
func NewHole(a *Arena, g *lang.Grammar) (Node, error) {
	name, ok := g.HoleConstruct()
	if !ok {
		return Nil, errors.New("forest: grammar has no designated hole construct")
	}
	return newFromName(a, g, name, nil, "")
}

// NewLeaf creates a texty leaf of the named construct with the given
// initial text.
func NewLeaf(a *Arena, g *lang.Grammar, construct, text string) (Node, error) {
	return newFromName(a, g, construct, nil, text)
}

// NewBranch creates a non-texty node of the named construct with the given
// children. Children must not already have a parent; use Detach first.
func NewBranch(a *Arena, g *lang.Grammar, construct string, children ...Node) (Node, error) {
	return newFromName(a, g, construct, children, "")
}

func newFromName(a *Arena, g *lang.Grammar, construct string, children []Node, text string) (Node, error) {
	c, err := g.LookupConstruct(construct)
	if err != nil {
		return Nil, err
	}
	return newFromConstruct(a, g, c, children, text)
}

func newFromConstruct(a *Arena, g *lang.Grammar, c *lang.Construct, children []Node, text string) (Node, error) {
	switch c.Arity.Kind {
	case lang.Texty:
		if len(children) != 0 {
			return Nil, ErrTextyNode
		}
		return a.alloc(&nodeData{construct: c, grammar: g, parent: Nil, text: []rune(text)}), nil
	case lang.Fixed:
		if len(children) != c.Arity.N() {
			return Nil, ErrArityMismatch
		}
		for i, ch := range children {
			if !constructSort(ch).Satisfies(c.Arity.SlotSort(i)) {
				return Nil, ErrArityMismatch
			}
		}
	case lang.Listy:
		for _, ch := range children {
			if !constructSort(ch).Satisfies(c.Arity.Elem) {
				return Nil, ErrArityMismatch
			}
		}
	}
	n := a.alloc(&nodeData{construct: c, grammar: g, parent: Nil, children: newChildren()})
	for _, ch := range children {
		if !reparentable(ch, n) {
			a.free.Add(n.idx)
			a.slots[n.idx].live = false
			return Nil, ErrCycle
		}
	}
	for _, ch := range children {
		setParent(ch, n)
		n.data().children.Add(ch)
	}
	return n, nil
}

// NewWithAutoFill constructs a node of the named construct and, for every
// fixed child slot, recursively installs a hole, giving the new node a
// fully-typed shape (spec.md §4.D "Auto-fill").
func NewWithAutoFill(a *Arena, g *lang.Grammar, construct string) (Node, error) {
	c, err := g.LookupConstruct(construct)
	if err != nil {
		return Nil, err
	}
	switch c.Arity.Kind {
	case lang.Texty:
		return newFromConstruct(a, g, c, nil, "")
	case lang.Listy:
		return newFromConstruct(a, g, c, nil, "")
	case lang.Fixed:
		children := make([]Node, c.Arity.N())
		for i := range children {
			h, err := NewHole(a, g)
			if err != nil {
				return Nil, err
			}
			children[i] = h
		}
		return newFromConstruct(a, g, c, children, "")
	}
	return Nil, ErrArityMismatch
}

func constructSort(n Node) lang.Sort {
	return n.data().construct.Sort
}

func (n Node) data() *nodeData {
	return n.arena.mustData(n, "access")
}

func setParent(n Node, parent Node) {
	n.data().parent = parent
}

// reparentable reports whether n may be parented under dst without creating
// a cycle: n must not already share a root with dst (spec.md §4.B).
func reparentable(n Node, dst Node) bool {
	if n.arena != dst.arena {
		return true
	}
	return Root(n) != Root(dst)
}
