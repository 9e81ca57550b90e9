// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/i3ctl/i3ctl/internal/issue"
	"github.com/i3ctl/i3ctl/pkg/platform"
	"github.com/i3ctl/i3ctl/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose   int
	quiet     bool
	configDir string
}

// logger returns a logger honoring the verbosity flags.
func (o *rootOptions) logger(w io.Writer) *log.Logger {
	return newLogger(w, o.verbose, o.quiet)
}

// NewRootCommand builds the i3ctl command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "i3ctl",
		Short: "Open a terminal in the current directory through i3 IPC",
		Long: TitleStyle.Render("i3ctl") + SubtitleStyle.Render(" - open a terminal in the current directory through i3 IPC") + `

i3ctl asks i3 (or sway) to exec a terminal emulator whose working
directory is the directory you ran it from. The terminal is chosen from,
in increasing priority: the built-in default (alacritty), the config file,
the I3CTL_CREATE_TERMINAL environment variable, and the argument to 'term'.

` + SubtitleStyle.Render("Examples:") + `
  i3ctl term                 Open the configured terminal here
  i3ctl term urxvt           Open urxvt here
  i3ctl term --dry-run       Print the i3 command instead of sending it
  i3ctl config show          Show the resolved settings and their source`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.Check(app.GOOS); err != nil {
				return app.reportError(opts, issue.NewErrorContext().
					WithOperation("start i3ctl").
					WithResource(app.GOOS).
					WithIssue(issue.HostNotSupportedId).
					Wrap(err).
					BuildError())
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "directory holding the config file (default is the platform config directory)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(newTermCommand(app, opts))
	rootCmd.AddCommand(newConfigLocationCommand(app, opts))
	rootCmd.AddCommand(newConfigCommand(app, opts))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the production App and runs the command tree.
// This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:")+" "+err.Error())
		os.Exit(int(types.ExitFailure))
	}

	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	code := exitCode(fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	))
	if !code.IsSuccess() {
		os.Exit(int(code))
	}
}

// errorHandler prints errors that the command handlers have not already
// reported.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Reported {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// exitCode maps an error returned from the command tree to a process exit code.
func exitCode(err error) types.ExitCode {
	if err == nil {
		return types.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code.OrFailure()
	}
	return types.ExitFailure
}
