package shell

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-editor/synless/forest"
)

func TestGrammarDefinesHoleAndCmdConstructs(t *testing.T) {
	g, err := Grammar()
	require.NoError(t, err)

	name, ok := g.HoleConstruct()
	require.True(t, ok)
	require.Equal(t, "hole", name)

	cmd, err := g.LookupConstruct("cmd")
	require.NoError(t, err)
	require.Equal(t, 2, cmd.Arity.N())
	require.Equal(t, 'c', cmd.Key)
}

func TestExecSplicesCommandAndOutput(t *testing.T) {
	g, err := Grammar()
	require.NoError(t, err)
	a := forest.NewArena()

	n, err := Exec(a, g, "echo hello")
	require.NoError(t, err)
	require.Equal(t, 2, forest.ChildCount(n))

	command := forest.ChildAt(n, 0)
	output := forest.ChildAt(n, 1)
	require.Equal(t, "echo hello", forest.Text(command))
	require.Equal(t, "hello", forest.Text(output))
}

func TestExecCapturesFailingCommandOutput(t *testing.T) {
	g, err := Grammar()
	require.NoError(t, err)
	a := forest.NewArena()

	n, err := Exec(a, g, "echo oops >&2; exit 1")
	require.NoError(t, err)
	require.Equal(t, "oops", forest.Text(forest.ChildAt(n, 1)))
}
