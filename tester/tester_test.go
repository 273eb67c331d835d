package tester

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-editor/synless/lang"
)

func jsonishGrammar(t *testing.T) *lang.Grammar {
	t.Helper()
	g := lang.NewGrammar("jsonish", "json")
	require.NoError(t, g.DefineSort("value"))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "hole", Arity: lang.TextyArity(), Sort: lang.AnySort}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "true", Arity: lang.TextyArity(), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "null", Arity: lang.TextyArity(), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.DefineConstruct(&lang.Construct{Name: "list", Arity: lang.ListyArity(lang.NamedSort("value")), Sort: lang.NamedSort("value")}))
	require.NoError(t, g.SetHoleConstruct("hole"))
	return g
}

func TestParseTestCaseThreeParts(t *testing.T) {
	src := "a simple list\n---\nreplace_list()\n---\nlist\n  true \"true\"\n"
	c, err := ParseTestCase(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, "a simple list", c.Description)
	require.Equal(t, "replace_list()", c.Script)
	require.Equal(t, "list\n  true \"true\"", c.Want)
}

func TestParseTestCaseWrongPartCount(t *testing.T) {
	_, err := ParseTestCase(strings.NewReader("only one part, no delimiters"))
	require.Error(t, err)
}

func TestTesterRunPass(t *testing.T) {
	g := jsonishGrammar(t)
	tc := &TestCase{
		Description: "typing into the root hole's text",
		Script:      "enter_text()\ntext_insert(\"a\")\nexit_text()\n",
		Want:        `hole "a"`,
	}
	tr := &Tester{
		Grammar: g,
		Cases:   []*TestCaseWithMetadata{{TestCase: tc, FilePath: "scenario.synt"}},
	}
	rs := tr.Run()
	require.Len(t, rs, 1)
	require.NoError(t, rs[0].Error)
}

func TestTesterRunMismatchReportsDiff(t *testing.T) {
	g := jsonishGrammar(t)
	tc := &TestCase{
		Description: "expects the wrong construct",
		Script:      "",
		Want:        "not-hole",
	}
	tr := &Tester{
		Grammar: g,
		Cases:   []*TestCaseWithMetadata{{TestCase: tc, FilePath: "scenario.synt"}},
	}
	rs := tr.Run()
	require.Len(t, rs, 1)
	require.Error(t, rs[0].Error)
	require.NotEmpty(t, rs[0].Diff)
}

func TestTesterRunReportsUnreadableCase(t *testing.T) {
	tr := &Tester{
		Cases: []*TestCaseWithMetadata{{FilePath: "missing.synt", Error: errUnreadable}},
	}
	rs := tr.Run()
	require.Len(t, rs, 1)
	require.Equal(t, errUnreadable, rs[0].Error)
}

var errUnreadable = &testCaseReadError{}

type testCaseReadError struct{}

func (*testCaseReadError) Error() string { return "could not read test case" }
