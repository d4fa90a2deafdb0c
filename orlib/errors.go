// SPDX-License-Identifier: MIT
// Package orlib: sentinel errors.

package orlib

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF indicates input ending inside a header or block.
	ErrUnexpectedEOF = errors.New("orlib: unexpected end of input")

	// ErrSyntax indicates a malformed token or header.
	ErrSyntax = errors.New("orlib: malformed input")

	// ErrEntryCount indicates a line carrying more entries than its block needs.
	ErrEntryCount = errors.New("orlib: wrong number of entries")

	// ErrInstanceIndex indicates a requested instance index outside the file.
	ErrInstanceIndex = errors.New("orlib: instance index out of range")
)

// lineErrorf attaches the 1-based line number to err.
func lineErrorf(line int, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("line %d: %w", line, err)
	}

	return fmt.Errorf("line %d: %w: %s", line, err, fmt.Sprintf(format, args...))
}
