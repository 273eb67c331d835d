package keymap

import "strings"

// menuLayerName is the reserved layer name under which an open menu's
// keymap is pushed, so Pop/Active bookkeeping reuses LayerStack directly.
const menuLayerName = "__menu__"

// Candidate is one filterable entry in a menu's candidate list.
type Candidate struct {
	Label string
	// Payload is opaque data the scripting host associates with the
	// candidate (e.g. which file a "open file" menu entry names).
	Payload interface{}
}

// Menu is a transient, named keymap plus an optional filterable candidate
// list (spec.md §4.G). At most one menu may be open at a time.
type Menu struct {
	Name       string
	Keymap     *Layer
	Candidates []Candidate
	Filter     string
	Selected   int
}

// NewMenu builds a menu with no candidate list.
func NewMenu(name string) *Menu {
	return &Menu{Name: name, Keymap: NewLayer(name)}
}

// NewFilterableMenu builds a menu over a fixed candidate list.
func NewFilterableMenu(name string, candidates []Candidate) *Menu {
	return &Menu{Name: name, Keymap: NewLayer(name), Candidates: candidates}
}

// Visible returns the candidates still matching the current filter text,
// a case-insensitive substring match.
func (m *Menu) Visible() []Candidate {
	if m.Filter == "" {
		return m.Candidates
	}
	needle := strings.ToLower(m.Filter)
	var out []Candidate
	for _, c := range m.Candidates {
		if strings.Contains(strings.ToLower(c.Label), needle) {
			out = append(out, c)
		}
	}
	return out
}

// Up/Down move the selection among the currently visible candidates.
func (m *Menu) Up() {
	if n := len(m.Visible()); n > 0 {
		m.Selected = (m.Selected - 1 + n) % n
	}
}

func (m *Menu) Down() {
	if n := len(m.Visible()); n > 0 {
		m.Selected = (m.Selected + 1) % n
	}
}

// FilterBackspace removes one character from the filter text.
func (m *Menu) FilterBackspace() {
	if m.Filter == "" {
		return
	}
	r := []rune(m.Filter)
	m.Filter = string(r[:len(r)-1])
	m.Selected = 0
}

// FilterInsert appends a character to the filter text.
func (m *Menu) FilterInsert(ch rune) {
	m.Filter += string(ch)
	m.Selected = 0
}

// MenuHost tracks the stashed non-menu lookup context across a menu's
// lifetime, plus the single open menu (if any).
type MenuHost struct {
	stack *LayerStack
	open  *Menu
}

// NewMenuHost binds a MenuHost to the stack it will push/pop the menu
// layer on.
func NewMenuHost(stack *LayerStack) *MenuHost {
	return &MenuHost{stack: stack}
}

// Open activates m as the current menu, pushing its keymap onto the
// layer stack. Fails with ErrMenuAlreadyOpen if one is already active —
// spec.md §4.G's open question, resolved as an error rather than an
// implicit close-and-replace.
func (h *MenuHost) Open(m *Menu) error {
	if h.open != nil {
		return ErrMenuAlreadyOpen()
	}
	m.Keymap.Name = menuLayerName
	h.stack.Push(m.Keymap)
	h.open = m
	return nil
}

// Close deactivates the open menu, if any, restoring the lookup context
// it stashed on Open.
func (h *MenuHost) Close() {
	if h.open == nil {
		return
	}
	h.stack.Pop(menuLayerName)
	h.open = nil
}

// Current returns the open menu, if any.
func (h *MenuHost) Current() (*Menu, bool) {
	return h.open, h.open != nil
}
