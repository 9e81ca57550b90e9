// SPDX-License-Identifier: MPL-2.0

package ipc

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.i3wm.org/i3/v4"
)

// Environment variables naming the IPC socket, checked in order.
var socketEnvVars = []string{"I3SOCK", "SWAYSOCK"}

var installHookOnce sync.Once

type (
	// I3Sink sends commands to i3 or sway through go.i3wm.org/i3.
	I3Sink struct {
		run func(command string) ([]i3.CommandResult, error)
	}

	runResult struct {
		results []i3.CommandResult
		err     error
	}
)

// NewI3Sink returns a sink connected to the running window manager. The socket
// is taken from $I3SOCK or $SWAYSOCK when set, otherwise from
// `i3 --get-socketpath`. A nil lookupEnv means os.LookupEnv.
func NewI3Sink(lookupEnv func(string) (string, bool)) *I3Sink {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	installHookOnce.Do(func() {
		fallback := i3.SocketPathHook
		i3.SocketPathHook = func() (string, error) {
			return socketPath(lookupEnv, fallback)
		}
	})
	return &I3Sink{run: i3.RunCommand}
}

// RunCommand sends command over IPC and waits for the reply or for ctx to end.
// The i3 client library has no cancellation, so an abandoned request finishes
// in the background.
func (s *I3Sink) RunCommand(ctx context.Context, command string) error {
	done := make(chan runResult, 1)
	go func() {
		results, err := s.run(command)
		done <- runResult{results: results, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: no reply from window manager: %w", ErrTransport, ctx.Err())
	case r := <-done:
		return checkResults(command, r.results, r.err)
	}
}

// checkResults turns an i3 reply into an error. Unsuccessful results take
// precedence over the library's own error because they carry i3's message.
func checkResults(command string, results []i3.CommandResult, err error) error {
	for _, r := range results {
		if !r.Success {
			return &CommandError{Command: command, Message: r.Error}
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return nil
}

// socketPath prefers an explicit socket from the environment and otherwise
// defers to fallback.
func socketPath(lookupEnv func(string) (string, bool), fallback func() (string, error)) (string, error) {
	for _, name := range socketEnvVars {
		if p, ok := lookupEnv(name); ok && p != "" {
			return p, nil
		}
	}
	return fallback()
}
