package keymap

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/synless-editor/synless/synlesserr"
)

// entry pairs a layer with its push sequence number, so the treeset's
// comparator can recover push order without the set itself being an
// ordered list.
type entry struct {
	seq   int
	layer *Layer
}

// byPushOrderDesc orders entries by descending seq, so Values() always
// yields last-pushed-first — exactly the lookup order spec.md §4.G
// requires — without LayerStack needing to splice a slice on every
// push/pop.
func byPushOrderDesc(a, b interface{}) int {
	ea, eb := a.(entry), b.(entry)
	return eb.seq - ea.seq
}

// LayerStack is the ordered set of active layers (spec.md §4.G). Lookup
// walks last-pushed-first; first matching, filter-passing binding wins.
type LayerStack struct {
	set    *treeset.Set
	nextSeq int
	byName map[string]entry
}

// NewLayerStack builds an empty layer stack.
func NewLayerStack() *LayerStack {
	return &LayerStack{
		set:    treeset.NewWith(byPushOrderDesc),
		byName: make(map[string]entry),
	}
}

// Push activates l, making it the highest-priority layer.
func (s *LayerStack) Push(l *Layer) {
	if old, ok := s.byName[l.Name]; ok {
		s.set.Remove(old)
	}
	e := entry{seq: s.nextSeq, layer: l}
	s.nextSeq++
	s.byName[l.Name] = e
	s.set.Add(e)
}

// Pop deactivates the named layer. No-op if not active.
func (s *LayerStack) Pop(name string) {
	e, ok := s.byName[name]
	if !ok {
		return
	}
	s.set.Remove(e)
	delete(s.byName, name)
}

// Active reports whether name is currently pushed.
func (s *LayerStack) Active(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// layers returns active layers, last-pushed first.
func (s *LayerStack) layers() []*Layer {
	vals := s.set.Values()
	out := make([]*Layer, len(vals))
	for i, v := range vals {
		out[i] = v.(entry).layer
	}
	return out
}

// Lookup resolves k against the effective keymap for mode: in Text mode,
// only text keymaps contribute, unfiltered; in Tree mode, each layer's
// binding for k is tried in turn and only counts as a match if its Filter
// (when non-nil) accepts ctx — the first layer to supply a passing
// binding wins (spec.md §4.G).
func (s *LayerStack) Lookup(mode Mode, ctx Context, k Key) (Binding, bool) {
	for _, l := range s.layers() {
		var b Binding
		var ok bool
		switch mode {
		case Text:
			b, ok = l.Text[k]
		case Tree:
			b, ok = l.Tree[k]
		}
		if !ok {
			continue
		}
		if mode == Tree && b.Filter != nil && !b.Filter(ctx) {
			continue
		}
		return b, true
	}
	return Binding{}, false
}

var errMenuAlreadyOpen = synlesserr.New(synlesserr.KindKeymap, menuAlreadyOpenErr{})

type menuAlreadyOpenErr struct{}

func (menuAlreadyOpenErr) Error() string { return "keymap: a menu is already open" }

// ErrMenuAlreadyOpen is returned by MenuHost.Open when a menu is already active
// (SPEC_FULL.md's recorded decision for spec.md §4.G's open question: this
// is an error, not an implicit replace).
func ErrMenuAlreadyOpen() error { return errMenuAlreadyOpen }
