package forest

import "github.com/cnf/structhash"

// snapshot is a structural, handle-free view of a subtree: hashing a Node
// directly would hash arena pointers and generation counters, which are
// meaningless across arenas/time, so we first flatten to plain values.
type snapshot struct {
	Construct string
	Text      string
	Children  []snapshot
}

func snapshotOf(n Node) snapshot {
	d := n.data()
	s := snapshot{Construct: d.construct.Name}
	if d.children == nil {
		s.Text = string(d.text)
		return s
	}
	s.Children = make([]snapshot, ChildCount(n))
	for i := range s.Children {
		s.Children[i] = snapshotOf(ChildAt(n, i))
	}
	return s
}

// Fingerprint computes a stable content hash of n's subtree, used to detect
// structural change independent of node identity (spec.md §8's undo/redo
// round-trip property, and bookmark-survival testing), grounded on gorgo's
// lr/earley/earley.go hash() helper.
func Fingerprint(n Node) string {
	h, err := structhash.Hash(snapshotOf(n), 1)
	if err != nil {
		panic("forest: structhash.Hash failed: " + err.Error())
	}
	return h
}
