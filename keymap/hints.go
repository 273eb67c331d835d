package keymap

import "github.com/emirpasic/gods/sets/treeset"

// Hint is one entry of the key-hints auxiliary document (spec.md §4.G):
// the key and the program/action it currently resolves to.
type Hint struct {
	Key     Key
	Binding Binding
}

// KeyHints builds the sorted list of key→binding pairs in the effective
// keymap for mode/ctx — every binding reachable from some active layer
// that isn't shadowed by a higher-priority layer's binding for the same
// key, in a deterministic display order (spec.md §4.G: "the engine builds
// an auxiliary document listing each key→program pair in the currently
// effective keymap"). Rebuilding from scratch on every call is correct
// but not cheap; callers re-render only when the effective keymap or
// cursor construct changes, per spec.md.
func (s *LayerStack) KeyHints(mode Mode, ctx Context) []Hint {
	keys := treeset.NewWith(func(a, b interface{}) int {
		ka, kb := a.(Key), b.(Key)
		return stringCompare(ka.String(), kb.String())
	})
	for _, l := range s.layers() {
		m := l.Tree
		if mode == Text {
			m = l.Text
		}
		for k := range m {
			keys.Add(k)
		}
	}

	var hints []Hint
	for _, v := range keys.Values() {
		k := v.(Key)
		if b, ok := s.Lookup(mode, ctx, k); ok {
			hints = append(hints, Hint{Key: k, Binding: b})
		}
	}
	return hints
}

func stringCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
