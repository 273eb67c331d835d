// Package tester is the §8 scenario runner: it loads text test-case files,
// drives a language's command engine through a scripted program, and diffs
// the rendered result against an expected rendering. Adapted from
// vartan's tester/tester.go and spec/test/parser.go, trimmed from
// CST-diffing to rendered-frame diffing since synless has no parser to
// round-trip through.
package tester

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
)

// TestCase is a single scenario: a scripted program run against a fresh
// document, and the rendering it must produce. The on-disk format keeps
// vartan's three-dash-delimited-parts shape (spec/test/parser.go's
// splitIntoParts), just with different part contents:
//
//	<description>
//	---
//	<script source, run by script.Host>
//	---
//	<expected rendering, one LinePrinter line per row>
type TestCase struct {
	Description string
	Script      string
	Want        string
}

var reDelim = regexp.MustCompile(`^\s*---+\s*$`)

// ParseTestCase reads a test case in the three-part format above.
func ParseTestCase(r io.Reader) (*TestCase, error) {
	parts, err := splitIntoParts(r)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("tester: expected 3 delimited parts (description, script, expected output), found %v", len(parts))
	}
	return &TestCase{
		Description: string(parts[0]),
		Script:      string(parts[1]),
		Want:        string(parts[2]),
	}, nil
}

func splitIntoParts(r io.Reader) ([][]byte, error) {
	var parts [][]byte
	s := bufio.NewScanner(r)
	for {
		buf, ok, err := readPart(s)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		parts = append(parts, buf)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return parts, nil
}

func readPart(s *bufio.Scanner) ([]byte, bool, error) {
	if !s.Scan() {
		return nil, false, s.Err()
	}
	var buf bytes.Buffer
	if reDelim.Match(s.Bytes()) {
		return buf.Bytes(), true, nil
	}
	buf.Write(s.Bytes())
	for s.Scan() {
		if reDelim.Match(s.Bytes()) {
			return buf.Bytes(), true, nil
		}
		buf.WriteByte('\n')
		buf.Write(s.Bytes())
	}
	return buf.Bytes(), true, nil
}
