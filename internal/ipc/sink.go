// SPDX-License-Identifier: MPL-2.0

package ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTransport is wrapped when the window manager cannot be reached.
	ErrTransport = errors.New("window manager IPC failed")
	// ErrCommandFailed is the sentinel error wrapped by CommandError.
	ErrCommandFailed = errors.New("window manager rejected command")
)

type (
	// Sink runs one command inside the window manager's command facility.
	Sink interface {
		RunCommand(ctx context.Context, command string) error
	}

	// CommandError is returned when the window manager received a command
	// but reported that running it failed. It wraps ErrCommandFailed.
	CommandError struct {
		Command string
		Message string
	}

	// DryRunSink writes commands to W instead of sending them.
	DryRunSink struct {
		W io.Writer
	}
)

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("window manager rejected command %q", e.Command)
	}
	return fmt.Sprintf("window manager rejected command %q: %s", e.Command, e.Message)
}

// Unwrap returns ErrCommandFailed for errors.Is() compatibility.
func (e *CommandError) Unwrap() error { return ErrCommandFailed }

// RunCommand prints command followed by a newline.
func (s DryRunSink) RunCommand(ctx context.Context, command string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.W, command); err != nil {
		return fmt.Errorf("failed to write command: %w", err)
	}
	return nil
}
