package script

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-editor/synless/engine"
)

// fakeCommands records every command Execute receives, safe for the
// concurrent call a blocked program's goroutine makes.
type fakeCommands struct {
	mu   sync.Mutex
	cmds []engine.Command
}

func (f *fakeCommands) Execute(cmd engine.Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cmds = append(f.cmds, cmd)
	return nil
}

func (f *fakeCommands) last() (engine.Command, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.cmds) == 0 {
		return engine.Command{}, false
	}
	return f.cmds[len(f.cmds)-1], true
}

func TestRunProgramExecutesCommand(t *testing.T) {
	fc := &fakeCommands{}
	h := NewHost(fc)
	h.Register("go-prev", "prev()\n")

	require.NoError(t, h.RunProgram("go-prev"))
	require.False(t, h.Blocked())

	cmd, ok := fc.last()
	require.True(t, ok)
	require.Equal(t, engine.Prev(), cmd)
}

func TestBlockOnKeyResumesProgram(t *testing.T) {
	fc := &fakeCommands{}
	h := NewHost(fc)
	h.Register("echo-key", "k = block_on_key()\nif k.char == \"x\":\n    text_insert(\"y\")\n")

	require.NoError(t, h.RunProgram("echo-key"))
	require.True(t, h.Blocked(), "program should be parked in block_on_key")

	require.NoError(t, h.BlockOnKey(Key{Char: 'x'}))
	require.False(t, h.Blocked(), "program ran to completion after its key arrived")

	cmd, ok := fc.last()
	require.True(t, ok)
	require.Equal(t, engine.TextInsert('y'), cmd)
}

func TestRunProgramFailsWhileAnotherIsBlocked(t *testing.T) {
	fc := &fakeCommands{}
	h := NewHost(fc)
	h.Register("waits", "block_on_key()\n")
	h.Register("other", "next()\n")

	require.NoError(t, h.RunProgram("waits"))
	require.True(t, h.Blocked())

	err := h.RunProgram("other")
	require.Error(t, err)

	require.NoError(t, h.BlockOnKey(Key{Char: 'z'}))
}

func TestRunProgramUnknownName(t *testing.T) {
	h := NewHost(&fakeCommands{})
	require.Error(t, h.RunProgram("nope"))
}
