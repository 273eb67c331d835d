package forest

// Clone deep-copies n's subtree into fresh, unparented arena slots: used by
// the clipboard's Copy/Paste/Dup (spec.md §3 "Clipboard: a stack of
// detached subtrees") so pasting the same stack entry twice never shares
// node identity with a node still live elsewhere in a tree.
func Clone(a *Arena, n Node) Node {
	d := n.data()
	if d.children == nil {
		return a.alloc(&nodeData{
			construct: d.construct,
			grammar:   d.grammar,
			parent:    Nil,
			text:      append([]rune(nil), d.text...),
		})
	}
	children := make([]Node, ChildCount(n))
	for i := range children {
		children[i] = Clone(a, ChildAt(n, i))
	}
	out := a.alloc(&nodeData{construct: d.construct, grammar: d.grammar, parent: Nil, children: newChildren(children...)})
	for _, ch := range children {
		setParent(ch, out)
	}
	return out
}
