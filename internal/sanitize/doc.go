// SPDX-License-Identifier: MPL-2.0

// Package sanitize validates and escapes working-directory paths so they can be
// embedded verbatim inside a single-quoted argument of an i3 `exec` command.
//
// A single quote cannot be escaped inside single quotes, so paths containing one
// are rejected. Newline, tab, double quote and backslash are rewritten as their
// backslash escapes because i3 interprets them in its own command parser.
package sanitize
