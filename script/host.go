// Package script implements the scripting host of spec.md §9's design
// note: a named Starlark program runs synchronously against the command
// API until it either finishes or calls block_on_key(), at which point
// control returns to the caller and the program's goroutine parks on a
// channel until the next key arrives. No language-level coroutine exists
// in Starlark, so the "block" is a real blocked goroutine instead — the
// same request/response shape the design note describes, built directly
// out of channels rather than invented machinery.
package script

import (
	"errors"
	"fmt"
	"sync"

	"go.starlark.net/starlark"

	"github.com/synless-editor/synless/engine"
)

// Commands is the command API a running program drives. runtime.Editor
// adapts itself to this interface, binding Execute to whatever document is
// currently visible, so script stays ignorant of document bookkeeping.
type Commands interface {
	Execute(cmd engine.Command) error
}

// Key is the scripting host's own key shape, kept separate from
// runtime.Key and keymap.Key so neither package has to import script.
type Key struct {
	Char  rune
	Named string
	Ctrl  bool
	Alt   bool
	Shift bool
}

// session tracks one program's goroutine while it is parked in
// block_on_key, waiting for BlockOnKey to deliver the next press.
type session struct {
	keyCh     chan Key
	resultCh  chan error
	blockedCh chan struct{}
}

// Host runs named Starlark programs against a Commands implementation.
type Host struct {
	commands Commands
	programs map[string]string

	mu   sync.Mutex
	sess *session
}

// NewHost builds a Host with no registered programs.
func NewHost(commands Commands) *Host {
	return &Host{commands: commands, programs: make(map[string]string)}
}

// Register binds name to Starlark source, overwriting any prior binding.
func (h *Host) Register(name, source string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.programs[name] = source
}

// Blocked reports whether a program is currently parked in block_on_key,
// so the runtime's event loop knows to route the next key to BlockOnKey
// instead of the ordinary keymap lookup.
func (h *Host) Blocked() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sess != nil
}

// RunProgram starts name from the top. Returns an error if another
// program is already blocked waiting for a key — only one scripted
// program may be in flight at a time (spec.md §9 never describes
// concurrent scripts).
func (h *Host) RunProgram(name string) error {
	h.mu.Lock()
	if h.sess != nil {
		h.mu.Unlock()
		return errors.New("script: a program is already waiting on a key")
	}
	src, ok := h.programs[name]
	h.mu.Unlock()
	if !ok {
		return fmt.Errorf("script: no such program %q", name)
	}
	return h.run(name, src)
}

// BlockOnKey delivers k to the program currently parked in block_on_key,
// resuming it until it next blocks or finishes.
func (h *Host) BlockOnKey(k Key) error {
	h.mu.Lock()
	sess := h.sess
	h.mu.Unlock()
	if sess == nil {
		return errors.New("script: no program is waiting on a key")
	}
	sess.keyCh <- k
	select {
	case err := <-sess.resultCh:
		h.mu.Lock()
		h.sess = nil
		h.mu.Unlock()
		return err
	case <-sess.blockedCh:
		return nil
	}
}

func (h *Host) run(name, src string) error {
	sess := &session{
		keyCh:     make(chan Key),
		resultCh:  make(chan error, 1),
		blockedCh: make(chan struct{}),
	}
	thread := &starlark.Thread{Name: name}
	predeclared := h.globals(sess)

	go func() {
		_, err := starlark.ExecFile(thread, name, src, predeclared)
		sess.resultCh <- err
	}()

	select {
	case err := <-sess.resultCh:
		return err
	case <-sess.blockedCh:
		h.mu.Lock()
		h.sess = sess
		h.mu.Unlock()
		return nil
	}
}
