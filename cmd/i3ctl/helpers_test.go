// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/i3ctl/i3ctl/internal/ipc"
	"github.com/i3ctl/i3ctl/internal/testutil"

	"github.com/spf13/afero"
)

const testConfigDir = "/cfg"

type (
	fixedCwd string

	recordingSink struct {
		commands []string
		err      error
	}

	testEnv struct {
		app    *App
		fs     afero.Fs
		sink   *recordingSink
		stdout *bytes.Buffer
		stderr *bytes.Buffer
	}
)

func (c fixedCwd) Getwd() (string, error) { return string(c), nil }

func (s *recordingSink) RunCommand(_ context.Context, command string) error {
	s.commands = append(s.commands, command)
	return s.err
}

// newTestEnv builds an App over an in-memory filesystem, a fixed working
// directory and a recording sink. deps may override any field.
func newTestEnv(t *testing.T, cwd string, env map[string]string, override func(*Dependencies)) *testEnv {
	t.Helper()

	te := &testEnv{
		fs:     afero.NewMemMapFs(),
		sink:   &recordingSink{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	deps := Dependencies{
		NewSink:    func(func(string) (string, bool)) ipc.Sink { return te.sink },
		Cwd:        fixedCwd(cwd),
		Fs:         te.fs,
		LookupEnv:  testutil.MapEnv(env),
		ConfigDir:  func() (string, error) { return testConfigDir, nil },
		GOOS:       "linux",
		IssueStyle: "notty",
		Stdout:     te.stdout,
		Stderr:     te.stderr,
	}
	if override != nil {
		override(&deps)
	}

	app, err := NewApp(deps)
	if err != nil {
		t.Fatalf("NewApp() returned error: %v", err)
	}
	te.app = app
	return te
}

// run executes the command tree with args.
func (te *testEnv) run(args ...string) error {
	root := NewRootCommand(te.app)
	root.SetArgs(args)
	root.SetOut(te.stdout)
	root.SetErr(te.stderr)
	return root.ExecuteContext(context.Background())
}
