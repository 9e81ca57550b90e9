// SPDX-License-Identifier: MPL-2.0

// Package terminal models the supported terminal emulators ("drivers") and
// renders the shell command that starts one of them in a given directory.
//
// A Driver is parsed from, and formatted back to, a textual identifier such as
// "urxvt" or "custom(st -d {path})". The same pair serves the command line and
// every config-file format, so the two can never disagree.
package terminal
