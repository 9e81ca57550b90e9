// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	InvalidTerminalId
	UnsupportedPathId
	NonUTF8PathId
	CustomTerminalId
	IPCConnectFailedId
	CommandRejectedId
	HostNotSupportedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

// Render renders the issue as styled terminal output. stylePath is a glamour
// style name ("dark", "light", "notty", ...) or a path to a JSON style.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.extLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load your configuration!

i3ctl reads ` + "`create_terminal`" + ` from, in increasing priority:

1. the built-in default (` + "`alacritty`" + `)
2. ` + "`config.toml`, `config.json`, `config.yaml`, `config.yml`, `config.cue` or `config`" + ` in the config directory
3. the ` + "`I3CTL_CREATE_TERMINAL`" + ` environment variable
4. the argument to ` + "`i3ctl term`" + `

## Things you can try:
- Print the config directory:
~~~
$ i3ctl config-location
~~~
- Check the file's syntax, or recreate it from the defaults:
~~~
$ i3ctl config init
~~~`,
	}

	invalidTerminalIssue = &Issue{
		id: InvalidTerminalId,
		mdMsg: `
# Unknown terminal!

A terminal must be one of ` + "`alacritty`, `urxvt`, `gnome-terminal`, `xterm`" + `,
or a template written as ` + "`custom(.. your command here ..)`" + `.

Names are case-sensitive and surrounding whitespace is not trimmed.

## Example:
~~~
$ i3ctl term urxvt
~~~`,
	}

	unsupportedPathIssue = &Issue{
		id: UnsupportedPathId,
		mdMsg: `
# Directory name not supported!

The current directory contains a single quote (` + "`'`" + `). The directory is passed
to the terminal inside single quotes, where a single quote cannot be escaped.

## Things you can try:
- Open the terminal from a parent directory and ` + "`cd`" + ` from there
- Rename the directory`,
	}

	nonUTF8PathIssue = &Issue{
		id: NonUTF8PathId,
		mdMsg: `
# Directory name is not valid UTF-8!

i3 commands are UTF-8 text, so a directory whose name is not valid UTF-8
cannot be passed to it without losing bytes.

## Things you can try:
- Open the terminal from a parent directory and ` + "`cd`" + ` from there`,
	}

	customTerminalIssue = &Issue{
		id: CustomTerminalId,
		mdMsg: `
# Custom terminals are not supported yet!

The ` + "`custom(...)`" + ` form is accepted in configuration so it can be stored and
shown, but i3ctl cannot launch it yet.

## Things you can try:
- Pick one of the built-in terminals:
~~~
$ i3ctl term alacritty
~~~`,
	}

	ipcConnectFailedIssue = &Issue{
		id: IPCConnectFailedId,
		mdMsg: `
# Could not talk to the window manager!

i3ctl sends its command over the i3 IPC socket.

## Things you can try:
- Make sure you are running inside an i3 or sway session
- Point i3ctl at the socket explicitly:
~~~
$ I3SOCK=$(i3 --get-socketpath) i3ctl term
~~~
- Check what would be sent without sending it:
~~~
$ i3ctl term --dry-run
~~~`,
		extLinks: []HttpLink{"https://i3wm.org/docs/ipc.html"},
	}

	commandRejectedIssue = &Issue{
		id: CommandRejectedId,
		mdMsg: `
# The window manager rejected the command!

i3 parsed the ` + "`exec`" + ` command but reported an error.

## Things you can try:
- Run with ` + "`-vv`" + ` to see the exact command that was sent
- Check that the terminal is installed and in i3's PATH`,
		extLinks: []HttpLink{"https://i3wm.org/docs/userguide.html#exec"},
	}

	hostNotSupportedIssue = &Issue{
		id: HostNotSupportedId,
		mdMsg: `
# Host not supported!

i3ctl controls i3 and sway, which only run on Linux and BSD systems.`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		invalidTerminalIssue.Id():  invalidTerminalIssue,
		unsupportedPathIssue.Id():  unsupportedPathIssue,
		nonUTF8PathIssue.Id():      nonUTF8PathIssue,
		customTerminalIssue.Id():   customTerminalIssue,
		ipcConnectFailedIssue.Id(): ipcConnectFailedIssue,
		commandRejectedIssue.Id():  commandRejectedIssue,
		hostNotSupportedIssue.Id(): hostNotSupportedIssue,
	}
)

// values returns every issue ordered by Id.
func values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, iss := range issues {
		out = append(out, iss)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
