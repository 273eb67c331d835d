package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	godebugpretty "github.com/kylelemons/godebug/pretty"

	"github.com/synless-editor/synless/engine"
	"github.com/synless-editor/synless/forest"
	"github.com/synless-editor/synless/lang"
	"github.com/synless-editor/synless/pretty"
	"github.com/synless-editor/synless/script"
)

// TestCaseWithMetadata pairs a parsed case with the file it came from,
// mirroring vartan's tester.TestCaseWithMetadata: a directory of test
// files can contain ones that fail to parse, and those are reported
// individually rather than aborting the whole run.
type TestCaseWithMetadata struct {
	TestCase *TestCase
	FilePath string
	Error    error
}

// ListTestCases walks testPath (a file or a directory) collecting every
// test case, recording a parse error per-file rather than failing the
// whole walk (vartan's tester.ListTestCases).
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{{FilePath: testPath, Error: err}}
	}
	if !fi.IsDir() {
		c, err := parseTestCaseFile(testPath)
		return []*TestCaseWithMetadata{{TestCase: c, FilePath: testPath, Error: err}}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{{FilePath: testPath, Error: err}}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cases = append(cases, ListTestCases(filepath.Join(testPath, e.Name()))...)
	}
	return cases
}

func parseTestCaseFile(path string) (*TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTestCase(f)
}

// TestResult is one case's outcome (vartan's tester.TestResult, with the
// tree diff list swapped for a single rendered-text diff).
type TestResult struct {
	TestCasePath string
	Error        error
	Diff         string
}

func (r *TestResult) String() string {
	if r.Error != nil {
		if r.Diff != "" {
			return fmt.Sprintf("Failed %v:\n    %v\n    %v", r.TestCasePath, r.Error, strings.ReplaceAll(r.Diff, "\n", "\n    "))
		}
		return fmt.Sprintf("Failed %v:\n    %v", r.TestCasePath, r.Error)
	}
	return fmt.Sprintf("Passed %v", r.TestCasePath)
}

// Tester runs every case against a fresh document built on Grammar,
// starting from a single hole node at the root (vartan's Tester, which
// runs every case against one compiled grammar).
type Tester struct {
	Grammar *lang.Grammar
	Cases   []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, t.runOne(c))
	}
	return rs
}

const docName = "test"

func (t *Tester) runOne(c *TestCaseWithMetadata) *TestResult {
	if c.Error != nil {
		return &TestResult{TestCasePath: c.FilePath, Error: c.Error}
	}

	a := forest.NewArena()
	root, err := forest.NewHole(a, t.Grammar)
	if err != nil {
		return &TestResult{TestCasePath: c.FilePath, Error: fmt.Errorf("building root: %w", err)}
	}
	e := engine.New(lang.NewRegistry())
	e.AddDocument(engine.NewDocument(docName, c.FilePath, t.Grammar, a, root))

	h := script.NewHost(&boundCommands{engine: e, doc: docName})
	h.Register("scenario", c.TestCase.Script)
	if err := h.RunProgram("scenario"); err != nil {
		return &TestResult{TestCasePath: c.FilePath, Error: fmt.Errorf("running scenario: %w", err)}
	}
	if h.Blocked() {
		return &TestResult{TestCasePath: c.FilePath, Error: fmt.Errorf("scenario blocked on block_on_key with no key supplied")}
	}

	got, err := t.render(e)
	if err != nil {
		return &TestResult{TestCasePath: c.FilePath, Error: err}
	}

	want := strings.TrimRight(c.TestCase.Want, "\n")
	if diff := godebugpretty.Compare(want, got); diff != "" {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("rendered output did not match"),
			Diff:         diff,
		}
	}
	return &TestResult{TestCasePath: c.FilePath}
}

func (t *Tester) render(e *engine.Engine) (string, error) {
	d, ok := e.Document(docName)
	if !ok {
		return "", fmt.Errorf("internal: document %q vanished", docName)
	}
	doc := pretty.NewDoc(d.Root, d.Loc)
	rec := pretty.NewRecordingScreen()
	pretty.NewLinePrinter().Print(doc, d.Root, rec)
	return renderFrame(rec), nil
}

// boundCommands implements script.Commands against a single named
// document, the same binding runtime.Editor.Execute does for the visible
// document.
type boundCommands struct {
	engine *engine.Engine
	doc    string
}

func (b *boundCommands) Execute(cmd engine.Command) error {
	return b.engine.Execute(b.doc, cmd)
}
