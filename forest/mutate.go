package forest

import "github.com/synless-editor/synless/lang"

// Detach removes n from its parent's child list and clears its parent.
// No-op if n is already a root (spec.md §4.B).
func Detach(n Node) {
	p := Parent(n)
	if p.IsNil() {
		return
	}
	i := indexInChildren(p, n)
	if i < 0 {
		return
	}
	p.data().children.Remove(i)
	n.data().parent = Nil
}

// InsertAfter inserts new as the right sibling of target, inside target's
// listy parent. Returns false if target's parent is not listy, if new's
// sort doesn't match the parent's element sort, or on cycle.
func InsertAfter(target, new Node) bool {
	return insertAt(target, new, 1)
}

// InsertBefore inserts new as the left sibling of target.
func InsertBefore(target, new Node) bool {
	return insertAt(target, new, 0)
}

func insertAt(target, new Node, offset int) bool {
	p := Parent(target)
	if p.IsNil() || p.data().construct.Arity.Kind != lang.Listy {
		return false
	}
	if !Sort(new).Satisfies(p.data().construct.Arity.Elem) {
		return false
	}
	if !reparentable(new, p) {
		return false
	}
	i := indexInChildren(p, target)
	if i < 0 {
		return false
	}
	Detach(new)
	p.data().children.Insert(i+offset, new)
	setParent(new, p)
	return true
}

// InsertLastChild appends new as parent's last child. parent must be
// listy and new must satisfy parent's element sort.
func InsertLastChild(parent, new Node) bool {
	if parent.data().construct.Arity.Kind != lang.Listy {
		return false
	}
	if !Sort(new).Satisfies(parent.data().construct.Arity.Elem) {
		return false
	}
	if !reparentable(new, parent) {
		return false
	}
	Detach(new)
	parent.data().children.Add(new)
	setParent(new, parent)
	return true
}

// Swap exchanges the positions of a and b in the tree, each taking over the
// other's parent slot. Used both directly and as the mechanism behind
// fixed-slot Replace (spec.md §4.D).
func Swap(a, b Node) bool {
	if a == b {
		return true
	}
	pa, pb := Parent(a), Parent(b)
	if pa.IsNil() && pb.IsNil() {
		return true
	}
	ia, ib := -1, -1
	if !pa.IsNil() {
		ia = indexInChildren(pa, a)
	}
	if !pb.IsNil() {
		ib = indexInChildren(pb, b)
	}
	// b must fit into a's old slot (if a had a parent), and a must fit
	// into b's old slot (if b had a parent). A node with no parent
	// contributes no slot to satisfy.
	if !pa.IsNil() && !sortOKAt(pa, ia, b) {
		return false
	}
	if !pb.IsNil() && !sortOKAt(pb, ib, a) {
		return false
	}
	if !pa.IsNil() {
		pa.data().children.Set(ia, b)
	}
	if !pb.IsNil() {
		pb.data().children.Set(ib, a)
	}
	setParent(a, pb)
	setParent(b, pa)
	return true
}

func sortOKAt(parent Node, idx int, n Node) bool {
	c := parent.data().construct
	switch c.Arity.Kind {
	case lang.Fixed:
		if idx < 0 || idx >= c.Arity.N() {
			return false
		}
		return Sort(n).Satisfies(c.Arity.SlotSort(idx))
	case lang.Listy:
		return Sort(n).Satisfies(c.Arity.Elem)
	default:
		return false
	}
}

// Delete detaches n and frees it along with every descendant (spec.md
// §3 "Lifecycle").
func Delete(a *Arena, n Node) {
	Detach(n)
	freeSubtree(a, n)
}

func freeSubtree(a *Arena, n Node) {
	d := n.data()
	if d.children != nil {
		// Work-list over descendants, per spec.md §4.B.
		work := []Node{n}
		for len(work) > 0 {
			cur := work[len(work)-1]
			work = work[:len(work)-1]
			cd := cur.data()
			if cd.children != nil {
				for _, v := range cd.children.Values() {
					work = append(work, v.(Node))
				}
			}
			a.free.Add(cur.idx)
			a.slots[cur.idx].live = false
			a.slots[cur.idx].data = nil
		}
		return
	}
	a.free.Add(n.idx)
	a.slots[n.idx].live = false
	a.slots[n.idx].data = nil
}
