// SPDX-License-Identifier: MPL-2.0

package sanitize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrSingleQuote is the sentinel error wrapped by Error when a path contains a
// single quote.
var ErrSingleQuote = errors.New("path contains a single quote")

type (
	// Path is a working directory that is safe to embed inside single quotes in
	// a shell command. Only Sanitize can build a non-empty Path. The zero value
	// is the empty path.
	Path struct {
		s string
	}

	// Error is returned when a raw path cannot be sanitized.
	// It wraps ErrSingleQuote for errors.Is() compatibility.
	Error struct {
		Raw string
	}
)

// String returns the escaped path.
func (p Path) String() string { return p.s }

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("i3 does not support paths containing \"'\" (single quote): %q", e.Raw)
}

// Unwrap returns ErrSingleQuote.
func (e *Error) Unwrap() error { return ErrSingleQuote }

// Sanitize checks raw for characters that cannot be carried through an i3 exec
// command and escapes the ones that can. A nil logger discards the warning.
func Sanitize(raw string, logger *log.Logger) (Path, error) {
	if strings.ContainsRune(raw, '\'') {
		return Path{}, &Error{Raw: raw}
	}

	if !IsASCIIGraphic(raw) && logger != nil {
		logger.Warn("path contains characters outside printable ASCII; i3's handling of them is unverified, check you're in the right directory",
			"path", raw)
	}

	return Path{s: escapeControl(raw)}, nil
}

// IsASCIIGraphic reports whether every rune in s is a visible ASCII symbol
// (0x21 through 0x7E). Spaces are not graphic.
func IsASCIIGraphic(s string) bool {
	for _, r := range s {
		if r < '!' || r > '~' {
			return false
		}
	}
	return true
}

// escapeControl replaces tab, newline, double quote and backslash with their
// backslash escapes. Every other rune passes through.
func escapeControl(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			panic("sanitize: single quote reached escapeControl")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
