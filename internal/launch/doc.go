// SPDX-License-Identifier: MPL-2.0

// Package launch turns resolved settings and the current working directory into
// a single i3 `exec` command and hands it to an IPC sink.
//
// The pipeline is strictly sequential: read the working directory, sanitize it,
// render the terminal command, verify it is one shell command line, then send
// it. Any failure stops the pipeline before anything reaches the window manager.
package launch
