// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/i3ctl/i3ctl/internal/config"
	"github.com/i3ctl/i3ctl/internal/ipc"
	"github.com/i3ctl/i3ctl/internal/issue"
	"github.com/i3ctl/i3ctl/internal/sanitize"
	"github.com/i3ctl/i3ctl/internal/terminal"

	"github.com/charmbracelet/log"
)

// ErrNonUTF8Path is returned when the working directory is not valid UTF-8.
var ErrNonUTF8Path = errors.New("working directory is not valid UTF-8")

type (
	// CwdProvider reports the directory the terminal should open in.
	CwdProvider interface {
		Getwd() (string, error)
	}

	// OSCwd is the production CwdProvider backed by os.Getwd.
	OSCwd struct{}

	// Request holds everything a single launch needs.
	Request struct {
		Cwd      CwdProvider
		Sink     ipc.Sink
		Settings config.Settings
		// Logger receives warnings and the rendered command. Nil discards.
		Logger *log.Logger
	}
)

// Getwd implements CwdProvider.
func (OSCwd) Getwd() (string, error) {
	return os.Getwd()
}

// Run opens the configured terminal in the current working directory.
// Nothing is sent to the sink unless every earlier step succeeds.
func Run(ctx context.Context, req Request) error {
	logger := req.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cwd, err := req.Cwd.Getwd()
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("read working directory").
			WithSuggestion("Make sure the current directory still exists").
			Wrap(err).
			BuildError()
	}
	if !utf8.ValidString(cwd) {
		return issue.NewErrorContext().
			WithOperation("read working directory").
			WithResource(fmt.Sprintf("%q", cwd)).
			WithSuggestion("Rename the directory so that its name is valid UTF-8").
			WithIssue(issue.NonUTF8PathId).
			Wrap(ErrNonUTF8Path).
			BuildError()
	}

	path, err := sanitize.Sanitize(cwd, logger)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("prepare working directory").
			WithResource(cwd).
			WithSuggestion("Open the terminal from a directory whose path has no single quote").
			WithIssue(issue.UnsupportedPathId).
			Wrap(err).
			BuildError()
	}

	driver := req.Settings.CreateTerminal
	rendered, err := driver.Render(path, logger)
	if err != nil {
		ec := issue.NewErrorContext().
			WithOperation("render terminal command").
			WithResource(driver.String()).
			Wrap(err)
		if driver.IsCustom() {
			ec.WithSuggestion(fmt.Sprintf("Templates such as %q cannot be launched yet", driver.Template())).
				WithSuggestion(fmt.Sprintf("Pick one of the built-in terminals: %v", terminal.Names())).
				WithIssue(issue.CustomTerminalId)
		}
		return ec.BuildError()
	}

	command := "exec " + rendered
	if err := terminal.VerifyCommand(command); err != nil {
		return issue.NewErrorContext().
			WithOperation("render terminal command").
			WithResource(command).
			WithIssue(issue.UnsupportedPathId).
			Wrap(err).
			BuildError()
	}
	logger.Debug("sending command", "command", command, "terminal", driver.String())

	if err := req.Sink.RunCommand(ctx, command); err != nil {
		return sendError(command, err)
	}
	return nil
}

func sendError(command string, err error) error {
	ec := issue.NewErrorContext().
		WithOperation("send command to window manager").
		WithResource(command).
		Wrap(err)

	switch {
	case errors.Is(err, ipc.ErrCommandFailed):
		ec.WithSuggestion("Check that the terminal is installed and on i3's PATH").
			WithIssue(issue.CommandRejectedId)
	case errors.Is(err, context.DeadlineExceeded):
		ec.WithSuggestion("The window manager did not answer in time; raise --timeout or pass --timeout 0").
			WithIssue(issue.IPCConnectFailedId)
	default:
		ec.WithSuggestion("Make sure i3 or sway is running and I3SOCK or SWAYSOCK points at its socket").
			WithIssue(issue.IPCConnectFailedId)
	}
	return ec.BuildError()
}
