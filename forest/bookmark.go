package forest

// Bookmark is a saved reference to a node that may dangle (spec.md §3).
type Bookmark struct {
	node Node
}

// NewBookmark saves a bookmark at n.
func NewBookmark(n Node) Bookmark {
	return Bookmark{node: n}
}

// Resolve validates the bookmark against current (the document's present
// location node): valid iff the bookmarked node is still live and shares a
// root with current. Returns (node, true) if valid.
func (b Bookmark) Resolve(current Node) (Node, bool) {
	if !b.node.IsValid() {
		return Nil, false
	}
	if !current.IsValid() {
		return Nil, false
	}
	if Root(b.node) != Root(current) {
		return Nil, false
	}
	return b.node, true
}
