// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for i3ctl.
//
// This package implements the Cobra command hierarchy: the root command with
// its verbosity and config-directory flags, `term` which opens a terminal in
// the current directory through i3 IPC, and the `config` commands that locate,
// show and initialize the configuration file.
package cmd
