// SPDX-License-Identifier: MPL-2.0

// Command i3ctl opens a terminal in the current directory through i3 IPC.
package main

import cmd "github.com/i3ctl/i3ctl/cmd/i3ctl"

func main() {
	cmd.Execute()
}
