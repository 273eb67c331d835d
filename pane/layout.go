package pane

import "golang.org/x/exp/slices"

// Rect is a resolved screen rectangle, in columns/rows from the top-left.
type Rect struct {
	X, Y, W, H int
}

// DocLookup resolves a Doc label to the document bound to it this frame
// (the lookup, not the document type, lives in pane so the package stays
// independent of runtime/forest) plus whether its cursor should be drawn.
// Missing label implementations return ok=false.
type DocLookup func(label string) (doc interface{}, cursorVisible bool, ok bool)

// DynamicHeight reports how many rows a Doc bound to label actually needs
// to render in full, for SizeDynamic resolution. Implementations typically
// run the pretty-printer at the given width and count lines.
type DynamicHeight func(label string, width int) int

// Resolve lays n out within the given rectangle, returning one Rect per
// leaf (Doc/Fill) node visited, in visitation order, alongside the
// leaf node itself so the caller can render it.
func Resolve(n Notation, area Rect, lookup DocLookup, dynH DynamicHeight) ([]Leaf, error) {
	var out []Leaf
	if err := resolve(n, area, lookup, dynH, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Leaf is one rendered rectangle paired with the notation node that owns
// it (always a Doc, Fill, or the Style-wrapped variant of either).
type Leaf struct {
	Rect  Rect
	Node  Notation
	Style Style // the effective style, after Style/Override composition
}

func resolve(n Notation, area Rect, lookup DocLookup, dynH DynamicHeight, ambient Style, out *[]Leaf) error {
	switch v := n.(type) {
	case Horz:
		return resolveLinear(v.Children, area, true, lookup, dynH, composeStyle(ambient, v.Style, false), out)
	case Vert:
		return resolveLinear(v.Children, area, false, lookup, dynH, composeStyle(ambient, v.Style, false), out)
	case Doc:
		if lookup != nil {
			if _, _, ok := lookup(v.Label); !ok {
				return ErrMissing(v.Label)
			}
		}
		*out = append(*out, Leaf{Rect: area, Node: v, Style: composeStyle(ambient, v.Style, false)})
		return nil
	case Fill:
		*out = append(*out, Leaf{Rect: area, Node: v, Style: composeStyle(ambient, v.Style, false)})
		return nil
	case StyleNode:
		return resolve(v.Inner, area, lookup, dynH, composeStyle(ambient, v.Style, v.Override), out)
	}
	return nil
}

// composeStyle applies the original_source/pretty/src/pane.rs override
// rule: an ordinary Style node only supplies a *default* used when no
// ambient style is already in effect, but Style.Override replaces the
// ambient style outright (SPEC_FULL.md supplemented feature 3).
func composeStyle(ambient, own Style, override bool) Style {
	if own == nil {
		return ambient
	}
	if override || ambient == nil {
		return own
	}
	return ambient
}

func resolveLinear(children []Child, area Rect, horizontal bool, lookup DocLookup, dynH DynamicHeight, ambient Style, out *[]Leaf) error {
	total := area.W
	if !horizontal {
		total = area.H
	}

	sizes, err := divide(children, total, horizontal, lookup, dynH)
	if err != nil {
		return err
	}

	offset := 0
	for i, c := range children {
		var childArea Rect
		if horizontal {
			childArea = Rect{X: area.X + offset, Y: area.Y, W: sizes[i], H: area.H}
		} else {
			childArea = Rect{X: area.X, Y: area.Y + offset, W: area.W, H: sizes[i]}
		}
		if err := resolve(c.Pane, childArea, lookup, dynH, ambient, out); err != nil {
			return err
		}
		offset += sizes[i]
	}
	return nil
}

// divide implements spec.md §4.F's division rule: fixed sizes come off the
// top, Dynamic slots are resolved first-come-first-serve capped at what
// remains, then the rest is split proportionally by weight with
// largest-remainder tie-breaking (ties broken by lowest index).
func divide(children []Child, total int, horizontal bool, lookup DocLookup, dynH DynamicHeight) ([]int, error) {
	sizes := make([]int, len(children))
	remaining := total

	for i, c := range children {
		if c.Size.Kind == SizeFixed {
			sizes[i] = c.Size.Fixed
			remaining -= c.Size.Fixed
		}
	}
	if remaining < 0 {
		return nil, ErrImpossibleDemands()
	}

	for i, c := range children {
		if c.Size.Kind != SizeDynamic {
			continue
		}
		want := 0
		if doc, ok := c.Pane.(Doc); ok && dynH != nil {
			want = dynH(doc.Label, total)
		}
		if want > remaining {
			want = remaining
		}
		if want < 0 {
			want = 0
		}
		sizes[i] = want
		remaining -= want
	}

	type propSlot struct {
		idx    int
		weight int
	}
	var props []propSlot
	weightSum := 0
	for i, c := range children {
		if c.Size.Kind == SizeProportional {
			props = append(props, propSlot{idx: i, weight: c.Size.Weight})
			weightSum += c.Size.Weight
		}
	}
	if weightSum == 0 {
		return sizes, nil
	}

	type remainderSlot struct {
		idx       int
		remainder int
	}
	var remainders []remainderSlot
	assigned := 0
	for _, p := range props {
		base := (remaining * p.weight) / weightSum
		sizes[p.idx] = base
		assigned += base
		remainders = append(remainders, remainderSlot{idx: p.idx, remainder: (remaining * p.weight) % weightSum})
	}
	leftover := remaining - assigned

	slices.SortStableFunc(remainders, func(a, b remainderSlot) bool {
		if a.remainder != b.remainder {
			return a.remainder > b.remainder
		}
		return a.idx < b.idx
	})
	for i := 0; i < leftover && i < len(remainders); i++ {
		sizes[remainders[i].idx]++
	}
	return sizes, nil
}
