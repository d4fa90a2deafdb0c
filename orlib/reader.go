// SPDX-License-Identifier: MIT
// Package orlib: line-oriented tokenizer shared by both formats.

package orlib

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// lineReader yields whitespace-separated fields line by line and keeps the
// 1-based number of the last line read. Blank lines are skipped.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	return &lineReader{sc: sc}
}

// fields returns the fields of the next non-blank line.
func (lr *lineReader) fields() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		if f := strings.Fields(lr.sc.Text()); len(f) > 0 {
			return f, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, lineErrorf(lr.line+1, err, "read")
	}

	return nil, lineErrorf(lr.line+1, ErrUnexpectedEOF, "")
}

// ints reads exactly count integers starting on a fresh line, continuing
// over as many lines as needed.
func (lr *lineReader) ints(count int, what string) ([]int, error) {
	out := make([]int, 0, count)
	for len(out) < count {
		f, err := lr.fields()
		if err != nil {
			return nil, err
		}
		if len(out)+len(f) > count {
			return nil, lineErrorf(lr.line, ErrEntryCount, "%s: want %d, got at least %d", what, count, len(out)+len(f))
		}
		for _, tok := range f {
			v, err := lr.atoi(tok, what)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}

func (lr *lineReader) atoi(tok, what string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, lineErrorf(lr.line, ErrSyntax, "%s: %q is not an integer", what, tok)
	}

	return v, nil
}
