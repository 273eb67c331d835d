package dsl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const jsonishSrc = `
#name jsonish;
#extension json;

sort value;

hole: texty value;
true: texty value key 't';
null: texty value;
list: listy(value) value key 'l';
pair: fixed(value, value) value;
`

func TestLoadJSONish(t *testing.T) {
	g, err := Load(strings.NewReader(jsonishSrc))
	require.NoError(t, err)
	require.Equal(t, "jsonish", g.Name)
	require.Equal(t, "json", g.FileExtension)

	list, err := g.LookupConstruct("list")
	require.NoError(t, err)
	require.Equal(t, 'l', list.Key)

	pair, err := g.LookupConstruct("pair")
	require.NoError(t, err)
	require.Equal(t, 2, pair.Arity.N())
}

func TestLoadRejectsUndefinedSort(t *testing.T) {
	src := `
#name bad;
#extension bad;
x: texty nosuchsort;
`
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
}

func TestLoadRejectsDuplicateConstruct(t *testing.T) {
	src := `
#name bad;
#extension bad;
sort value;
x: texty value;
x: texty value;
`
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
}
