package script

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/synless-editor/synless/engine"
)

// globals builds the predeclared environment for one program run: the
// command-API builtins (one per engine.Command constructor that needs no
// forest.Node argument — spec.md §9 keeps scripts to navigation/edit/
// clipboard/bookmark/meta commands, not tree construction) plus
// block_on_key.
func (h *Host) globals(sess *session) starlark.StringDict {
	cmd := func(name string, build func() engine.Command) starlark.Value {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(name, args, kwargs); err != nil {
				return nil, err
			}
			if err := h.commands.Execute(build()); err != nil {
				return nil, err
			}
			return starlark.None, nil
		})
	}
	cmdRune := func(name string, build func(rune) engine.Command) starlark.Value {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var s string
			if err := starlark.UnpackArgs(name, args, kwargs, "ch", &s); err != nil {
				return nil, err
			}
			r := []rune(s)
			if len(r) != 1 {
				return nil, fmt.Errorf("script: %s wants a single character, got %q", name, s)
			}
			if err := h.commands.Execute(build(r[0])); err != nil {
				return nil, err
			}
			return starlark.None, nil
		})
	}
	cmdLabel := func(name string, build func(string) engine.Command) starlark.Value {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var label string
			if err := starlark.UnpackArgs(name, args, kwargs, "label?", &label); err != nil {
				return nil, err
			}
			if err := h.commands.Execute(build(label)); err != nil {
				return nil, err
			}
			return starlark.None, nil
		})
	}

	return starlark.StringDict{
		"prev":              cmd("prev", func() engine.Command { return engine.Prev() }),
		"next":              cmd("next", func() engine.Command { return engine.Next() }),
		"first":             cmd("first", func() engine.Command { return engine.First() }),
		"last":              cmd("last", func() engine.Command { return engine.Last() }),
		"before_first_child": cmd("before_first_child", func() engine.Command { return engine.BeforeFirstChild() }),
		"first_child":       cmd("first_child", func() engine.Command { return engine.FirstChild() }),
		"last_child":        cmd("last_child", func() engine.Command { return engine.LastChild() }),
		"parent":            cmd("parent", func() engine.Command { return engine.Parent() }),
		"prev_leaf":         cmd("prev_leaf", func() engine.Command { return engine.PrevLeaf() }),
		"next_leaf":         cmd("next_leaf", func() engine.Command { return engine.NextLeaf() }),
		"prev_text":         cmd("prev_text", func() engine.Command { return engine.PrevText() }),
		"next_text":         cmd("next_text", func() engine.Command { return engine.NextText() }),
		"first_insert_loc":  cmd("first_insert_loc", func() engine.Command { return engine.FirstInsertLoc() }),
		"enter_text":        cmd("enter_text", func() engine.Command { return engine.EnterText() }),
		"exit_text":         cmd("exit_text", func() engine.Command { return engine.ExitText() }),

		"backspace": cmd("backspace", func() engine.Command { return engine.Backspace() }),
		"delete":    cmd("delete", func() engine.Command { return engine.Delete() }),

		"text_left":      cmd("text_left", func() engine.Command { return engine.TextLeft() }),
		"text_right":     cmd("text_right", func() engine.Command { return engine.TextRight() }),
		"text_beginning": cmd("text_beginning", func() engine.Command { return engine.TextBeginning() }),
		"text_end":       cmd("text_end", func() engine.Command { return engine.TextEnd() }),
		"text_insert":    cmdRune("text_insert", func(r rune) engine.Command { return engine.TextInsert(r) }),
		"text_backspace": cmd("text_backspace", func() engine.Command { return engine.TextBackspace() }),
		"text_delete":    cmd("text_delete", func() engine.Command { return engine.TextDelete() }),

		"copy":       cmd("copy", func() engine.Command { return engine.Copy() }),
		"cut":        cmd("cut", func() engine.Command { return engine.Cut() }),
		"paste":      cmd("paste", func() engine.Command { return engine.Paste() }),
		"paste_swap": cmd("paste_swap", func() engine.Command { return engine.PasteSwap() }),
		"dup":        cmd("dup", func() engine.Command { return engine.Dup() }),
		"pop":        cmd("pop", func() engine.Command { return engine.Pop() }),

		"save_bookmark": cmdRune("save_bookmark", func(r rune) engine.Command { return engine.SaveBookmark(r) }),
		"goto_bookmark": cmdRune("goto_bookmark", func(r rune) engine.Command { return engine.GotoBookmark(r) }),

		"undo":       cmd("undo", func() engine.Command { return engine.Undo() }),
		"redo":       cmd("redo", func() engine.Command { return engine.Redo() }),
		"end_group":  cmdLabel("end_group", func(label string) engine.Command { return engine.EndGroupLabeled(label) }),

		"block_on_key": starlark.NewBuiltin("block_on_key", func(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs("block_on_key", args, kwargs); err != nil {
				return nil, err
			}
			sess.blockedCh <- struct{}{}
			k := <-sess.keyCh
			return keyStruct(k), nil
		}),
	}
}

// keyStruct exposes a received Key to Starlark as a struct(char=, named=,
// ctrl=, alt=, shift=), the same handful of fields frontend/term's Key
// carries.
func keyStruct(k Key) *starlarkstruct.Struct {
	return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"char":  starlark.String(string(k.Char)),
		"named": starlark.String(k.Named),
		"ctrl":  starlark.Bool(k.Ctrl),
		"alt":   starlark.Bool(k.Alt),
		"shift": starlark.Bool(k.Shift),
	})
}
