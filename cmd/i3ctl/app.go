// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/i3ctl/i3ctl/internal/config"
	"github.com/i3ctl/i3ctl/internal/ipc"
	"github.com/i3ctl/i3ctl/internal/issue"
	"github.com/i3ctl/i3ctl/internal/launch"
	"github.com/i3ctl/i3ctl/internal/terminal"
	"github.com/i3ctl/i3ctl/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every Cobra handler receives an App and reaches the
	// filesystem, environment, window manager and working directory through it.
	App struct {
		Config    config.Provider
		NewSink   SinkFactory
		Cwd       launch.CwdProvider
		Fs        afero.Fs
		LookupEnv func(string) (string, bool)
		ConfigDir func() (string, error)
		GOOS      string
		// IssueStyle is the glamour style used to render issue help in verbose mode.
		IssueStyle string
		stdout     io.Writer
		stderr     io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp. Tests supply fakes to
	// keep the window manager and the real filesystem out of the picture.
	Dependencies struct {
		Config     config.Provider
		NewSink    SinkFactory
		Cwd        launch.CwdProvider
		Fs         afero.Fs
		LookupEnv  func(string) (string, bool)
		ConfigDir  func() (string, error)
		GOOS       string
		IssueStyle string
		Stdout     io.Writer
		Stderr     io.Writer
	}

	// SinkFactory connects to the window manager. It is called only when a
	// command is actually sent.
	SinkFactory func(lookupEnv func(string) (string, bool)) ipc.Sink
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.NewSink == nil {
		deps.NewSink = func(lookupEnv func(string) (string, bool)) ipc.Sink {
			return ipc.NewI3Sink(lookupEnv)
		}
	}
	if deps.Cwd == nil {
		deps.Cwd = launch.OSCwd{}
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.LookupEnv == nil {
		deps.LookupEnv = os.LookupEnv
	}
	if deps.ConfigDir == nil {
		deps.ConfigDir = config.ConfigDir
	}
	if deps.GOOS == "" {
		deps.GOOS = runtime.GOOS
	}
	if deps.IssueStyle == "" {
		deps.IssueStyle = "dark"
	}

	return &App{
		Config:     deps.Config,
		NewSink:    deps.NewSink,
		Cwd:        deps.Cwd,
		Fs:         deps.Fs,
		LookupEnv:  deps.LookupEnv,
		ConfigDir:  deps.ConfigDir,
		GOOS:       deps.GOOS,
		IssueStyle: deps.IssueStyle,
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
	}, nil
}

// configDir returns the --config-dir override or the platform default.
func (a *App) configDir(opts *rootOptions) (string, error) {
	if opts.configDir != "" {
		return opts.configDir, nil
	}
	dir, err := a.ConfigDir()
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("locate config directory").
			WithSuggestion("Pass --config-dir to choose the directory explicitly").
			WithIssue(issue.HostNotSupportedId).
			Wrap(err).
			BuildError()
	}
	return dir, nil
}

// resolve runs the settings resolver for one subcommand invocation.
func (a *App) resolve(ctx context.Context, opts *rootOptions, cli config.CLIOptions) (*config.Resolution, error) {
	dir, err := a.configDir(opts)
	if err != nil {
		return nil, err
	}

	res, err := a.Config.Resolve(ctx, config.ResolveOptions{
		ConfigDir: dir,
		Fs:        a.Fs,
		LookupEnv: a.LookupEnv,
		CLI:       cli,
	})
	if err != nil {
		return nil, configError(err)
	}
	return res, nil
}

// reportError prints err to stderr and converts it into an already-reported
// ExitError. In verbose mode the linked issue is rendered below the message.
func (a *App) reportError(opts *rootOptions, err error) error {
	verbose := opts.verbose > 0
	fmt.Fprintf(a.stderr, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))

	if verbose {
		if iss, ok := issue.IssueOf(err); ok {
			rendered, renderErr := iss.Render(a.IssueStyle)
			if renderErr != nil {
				opts.logger(a.stderr).Warn("failed to render issue", "issue", iss.Id(), "error", renderErr)
			} else {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	}

	return &ExitError{Code: types.ExitFailure, Err: err, Reported: true}
}

// configError attaches user guidance to a resolver failure.
func configError(err error) error {
	var re *config.ResolveError
	if !errors.As(err, &re) {
		return err
	}

	ec := issue.NewErrorContext().
		WithOperation("resolve settings").
		WithResource(re.Origin).
		Wrap(err)
	if errors.Is(err, terminal.ErrInvalidDriver) {
		ec.WithSuggestion(fmt.Sprintf("Use one of %v or custom(.. your command here ..)", terminal.Names())).
			WithIssue(issue.InvalidTerminalId)
	} else {
		ec.WithSuggestion("Run 'i3ctl config-location' and check the config file syntax").
			WithIssue(issue.ConfigLoadFailedId)
	}
	return ec.BuildError()
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// newLogger builds the logger handed to the core packages. The level follows
// the -v count and -q flag.
func newLogger(w io.Writer, verbosity int, quiet bool) *log.Logger {
	level := log.WarnLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbosity >= 2:
		level = log.DebugLevel
	case verbosity == 1:
		level = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "i3ctl",
	})
}
