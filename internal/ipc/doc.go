// SPDX-License-Identifier: MPL-2.0

// Package ipc delivers rendered commands to the window manager.
//
// The production sink talks to i3 (or sway, which speaks the same protocol)
// over its IPC socket and asks it to run the command. DryRunSink prints the
// command instead, which is handy for checking what would be sent.
package ipc
