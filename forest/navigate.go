package forest

import "golang.org/x/exp/slices"

// Parent returns n's parent, or Nil if n is a root.
func Parent(n Node) Node {
	return n.data().parent
}

// Root walks up to the root of n's tree. A root is its own root.
func Root(n Node) Node {
	cur := n
	for {
		p := Parent(cur)
		if p.IsNil() {
			return cur
		}
		cur = p
	}
}

// IsLeaf reports whether n is a texty leaf (no children slice at all).
func IsLeaf(n Node) bool {
	return n.data().children == nil
}

// ChildCount returns the number of children of n. 0 for texty nodes.
func ChildCount(n Node) int {
	d := n.data()
	if d.children == nil {
		return 0
	}
	return d.children.Size()
}

// ChildAt returns n's child at index i.
func ChildAt(n Node, i int) Node {
	d := n.data()
	v, ok := d.children.Get(i)
	if !ok {
		return Nil
	}
	return v.(Node)
}

// FirstChild returns n's first child, or Nil if n has none.
func FirstChild(n Node) Node {
	if ChildCount(n) == 0 {
		return Nil
	}
	return ChildAt(n, 0)
}

// LastChild returns n's last child, or Nil if n has none.
func LastChild(n Node) Node {
	c := ChildCount(n)
	if c == 0 {
		return Nil
	}
	return ChildAt(n, c-1)
}

// SiblingIndex returns the index of n among its parent's children, or -1
// if n is a root.
func SiblingIndex(n Node) int {
	p := Parent(n)
	if p.IsNil() {
		return -1
	}
	return indexInChildren(p, n)
}

func indexInChildren(parent, n Node) int {
	d := parent.data()
	return slices.IndexFunc(d.children.Values(), func(v interface{}) bool {
		return v.(Node) == n
	})
}

// NextSibling returns the sibling to n's right, or Nil if n is last (or a
// root).
func NextSibling(n Node) Node {
	p := Parent(n)
	if p.IsNil() {
		return Nil
	}
	i := indexInChildren(p, n)
	if i < 0 || i+1 >= ChildCount(p) {
		return Nil
	}
	return ChildAt(p, i+1)
}

// PrevSibling returns the sibling to n's left, or Nil if n is first (or a
// root).
func PrevSibling(n Node) Node {
	p := Parent(n)
	if p.IsNil() {
		return Nil
	}
	i := indexInChildren(p, n)
	if i <= 0 {
		return Nil
	}
	return ChildAt(p, i-1)
}

// FirstSibling returns the leftmost node in n's sibling sequence (n itself
// if n is a root, or n has no parent's child list cached).
func FirstSibling(n Node) Node {
	p := Parent(n)
	if p.IsNil() {
		return n
	}
	return FirstChild(p)
}

// LastSibling returns the rightmost node in n's sibling sequence.
func LastSibling(n Node) Node {
	p := Parent(n)
	if p.IsNil() {
		return n
	}
	return LastChild(p)
}

// Text returns the current text of a texty node n.
func Text(n Node) string {
	return string(n.data().text)
}

// TextLen returns the char length (rune count, spec.md §3 "externally
// observable char length") of a texty node's buffer.
func TextLen(n Node) int {
	return len(n.data().text)
}

// SetText replaces the full text buffer of a texty node n.
func SetText(n Node, s string) {
	d := n.data()
	if d.children != nil {
		panic("forest: SetText called on a non-texty node")
	}
	d.text = []rune(s)
}

// InsertTextAt inserts s into n's text buffer at char index idx.
func InsertTextAt(n Node, idx int, s string) {
	d := n.data()
	if d.children != nil {
		panic("forest: InsertTextAt called on a non-texty node")
	}
	ins := []rune(s)
	buf := make([]rune, 0, len(d.text)+len(ins))
	buf = append(buf, d.text[:idx]...)
	buf = append(buf, ins...)
	buf = append(buf, d.text[idx:]...)
	d.text = buf
}

// DeleteTextAt removes the char at index idx (one rune) from n's text
// buffer, returning the removed rune.
func DeleteTextAt(n Node, idx int) rune {
	d := n.data()
	if d.children != nil {
		panic("forest: DeleteTextAt called on a non-texty node")
	}
	r := d.text[idx]
	d.text = append(d.text[:idx], d.text[idx+1:]...)
	return r
}
