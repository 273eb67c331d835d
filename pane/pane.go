// Package pane implements the layout notation of spec.md §4.F: a small
// recursive tree of Horz/Vert/Doc/Fill/Style nodes, resolved against a
// concrete terminal size by proportional division with largest-remainder
// tie-breaking.
package pane

import (
	"errors"

	"github.com/synless-editor/synless/synlesserr"
)

// SizeKind distinguishes how much space a Horz/Vert slot claims.
type SizeKind int

const (
	// SizeFixed claims exactly N columns/rows.
	SizeFixed SizeKind = iota
	// SizeProportional claims a share of the remaining space, weighted.
	SizeProportional
	// SizeDynamic claims exactly the wrapped Doc's required extent,
	// capped at the remaining space. Only legal on a Vert slot wrapping
	// a Doc (spec.md §4.F).
	SizeDynamic
)

// Size is one child slot's space demand within a Horz/Vert.
type Size struct {
	Kind   SizeKind
	Fixed  int // SizeFixed: exact size
	Weight int // SizeProportional: weight w_i
}

func Fixed(n int) Size           { return Size{Kind: SizeFixed, Fixed: n} }
func Proportional(w int) Size    { return Size{Kind: SizeProportional, Weight: w} }
func Dynamic() Size              { return Size{Kind: SizeDynamic} }

// Child pairs a Size demand with the Notation it sizes.
type Child struct {
	Size  Size
	Pane  Notation
}

// Notation is the recursive pane layout tree (spec.md §4.F).
type Notation interface {
	isNotation()
}

// Horz lays children left-to-right, each sized by its own Size.
type Horz struct {
	Children []Child
	Style    Style
}

// Vert lays children top-to-bottom, each sized by its own Size.
type Vert struct {
	Children []Child
	Style    Style
}

// Doc renders whatever document is currently bound to Label.
type Doc struct {
	Label string
	Style Style
}

// Fill repeats Ch to cover its allotted rectangle.
type Fill struct {
	Ch    rune
	Style Style
}

// StyleNode applies Inner's notation a default style; if Override is set,
// the style replaces (rather than merely defaults under) any ancestor
// style already in effect — a behavior original_source/pretty/src/pane.rs
// has that spec.md's distillation of Style didn't carry over explicitly.
type StyleNode struct {
	Style   Style
	Inner   Notation
	Override bool
}

func (Horz) isNotation()      {}
func (Vert) isNotation()      {}
func (Doc) isNotation()       {}
func (Fill) isNotation()      {}
func (StyleNode) isNotation() {}

// Style is an opaque style tag, interpreted only by the frontend that
// eventually paints the resolved rectangles (mirrors pretty.Style).
type Style interface{}

// errImpossibleDemands is the sentinel cause wrapped by ErrImpossibleDemands,
// returned when a Horz/Vert's fixed-size children alone exceed the
// available space.
var errImpossibleDemands = errors.New("pane: fixed-size demands exceed available space")

// ErrImpossibleDemands builds the kind-tagged error for errImpossibleDemands.
func ErrImpossibleDemands() error {
	return synlesserr.New(synlesserr.KindPane, errImpossibleDemands)
}

// ErrMissing is returned by Resolve when the DocLookup reports that a Doc
// node names a label nothing currently binds.
func ErrMissing(label string) error {
	return synlesserr.New(synlesserr.KindPane, errors.New("pane: no document bound to label "+label))
}
