// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/i3ctl/i3ctl/internal/ipc"
	"github.com/i3ctl/i3ctl/internal/sanitize"
	"github.com/i3ctl/i3ctl/internal/terminal"
	"github.com/i3ctl/i3ctl/internal/testutil"
	"github.com/i3ctl/i3ctl/pkg/types"
)

func TestTerm_DryRunPrintsCommand(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "/home/alice/proj", nil, nil)
	if err := te.run("term", "--dry-run"); err != nil {
		t.Fatalf("run() returned error: %v", err)
	}

	want := "exec alacritty --working-directory '/home/alice/proj'\n"
	if got := te.stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if len(te.sink.commands) != 0 {
		t.Errorf("dry run should not reach the window manager, sent %q", te.sink.commands)
	}
}

func TestTerm_SelectsTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		env  map[string]string
		args []string
		want string
	}{
		{
			name: "default",
			want: "exec alacritty --working-directory '/srv'",
		},
		{
			name: "config file",
			file: `create_terminal = "urxvt"`,
			want: "exec urxvt --chdir '/srv'",
		},
		{
			name: "environment beats file",
			file: `create_terminal = "urxvt"`,
			env:  map[string]string{"I3CTL_CREATE_TERMINAL": "gnome-terminal"},
			want: "exec gnome-terminal --working-directory='/srv'",
		},
		{
			name: "argument beats environment",
			env:  map[string]string{"I3CTL_CREATE_TERMINAL": "gnome-terminal"},
			args: []string{"urxvt"},
			want: "exec urxvt --chdir '/srv'",
		},
		{
			name: "xterm",
			args: []string{"xterm"},
			want: "exec xterm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t, "/srv", tt.env, nil)
			if tt.file != "" {
				testutil.MustWriteFile(t, te.fs, filepath.Join(testConfigDir, "config.toml"), tt.file)
			}

			if err := te.run(append([]string{"term"}, tt.args...)...); err != nil {
				t.Fatalf("run() returned error: %v\nstderr: %s", err, te.stderr.String())
			}
			if len(te.sink.commands) != 1 || te.sink.commands[0] != tt.want {
				t.Errorf("sent %q, want [%q]", te.sink.commands, tt.want)
			}
		})
	}
}

func TestTerm_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cwd        string
		args       []string
		sinkErr    error
		wantErr    error
		wantStderr string
	}{
		{
			name:       "single quote in directory",
			cwd:        "/tmp/a'b",
			wantErr:    sanitize.ErrSingleQuote,
			wantStderr: "single quote",
		},
		{
			name:       "unknown terminal",
			cwd:        "/tmp",
			args:       []string{"kitty"},
			wantErr:    terminal.ErrInvalidDriver,
			wantStderr: "custom(.. your command here ..)",
		},
		{
			name:       "custom terminal",
			cwd:        "/tmp",
			args:       []string{"custom(kitty -d {})"},
			wantErr:    terminal.ErrNotImplemented,
			wantStderr: "not implemented",
		},
		{
			name:       "window manager rejects command",
			cwd:        "/tmp",
			sinkErr:    &ipc.CommandError{Command: "exec alacritty", Message: "unknown command"},
			wantErr:    ipc.ErrCommandFailed,
			wantStderr: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t, tt.cwd, nil, nil)
			te.sink.err = tt.sinkErr

			err := te.run(append([]string{"term"}, tt.args...)...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("run() error = %v, want errors.Is %v", err, tt.wantErr)
			}

			var exitErr *ExitError
			if !errors.As(err, &exitErr) || exitErr.Code != types.ExitFailure || !exitErr.Reported {
				t.Errorf("run() error = %#v, want a reported ExitError with code 1", err)
			}
			if !strings.Contains(te.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", te.stderr.String(), tt.wantStderr)
			}
			if tt.sinkErr == nil && len(te.sink.commands) != 0 {
				t.Errorf("nothing should be sent, sent %q", te.sink.commands)
			}
		})
	}
}

func TestTerm_VerboseRendersIssue(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "/tmp/a'b", nil, nil)
	if err := te.run("-v", "term"); err == nil {
		t.Fatal("run() should fail")
	}
	if !strings.Contains(te.stderr.String(), "Directory name not supported") {
		t.Errorf("verbose stderr should render the issue, got %q", te.stderr.String())
	}
	if !strings.Contains(te.stderr.String(), "Error chain:") {
		t.Errorf("verbose stderr should show the error chain, got %q", te.stderr.String())
	}
}

func TestTerm_DebugLogsCommand(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "/srv", nil, nil)
	if err := te.run("-vv", "term"); err != nil {
		t.Fatalf("run() returned error: %v", err)
	}
	if !strings.Contains(te.stderr.String(), "exec alacritty") {
		t.Errorf("-vv should log the command, stderr = %q", te.stderr.String())
	}
}

func TestTerm_TooManyArgs(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "/srv", nil, nil)
	if err := te.run("term", "urxvt", "xterm"); err == nil {
		t.Fatal("two terminal arguments should be rejected")
	}
	if len(te.sink.commands) != 0 {
		t.Errorf("nothing should be sent, sent %q", te.sink.commands)
	}
}

func TestCompleteTerminals(t *testing.T) {
	t.Parallel()

	got, _ := completeTerminals(nil, nil, "")
	if strings.Join(got, ",") != strings.Join(terminal.Names(), ",") {
		t.Errorf("completeTerminals() = %v, want %v", got, terminal.Names())
	}
	if got, _ := completeTerminals(nil, []string{"urxvt"}, ""); len(got) != 0 {
		t.Errorf("completeTerminals() after first arg = %v, want none", got)
	}
}
