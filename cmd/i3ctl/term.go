// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"time"

	"github.com/i3ctl/i3ctl/internal/config"
	"github.com/i3ctl/i3ctl/internal/ipc"
	"github.com/i3ctl/i3ctl/internal/launch"
	"github.com/i3ctl/i3ctl/internal/terminal"

	"github.com/spf13/cobra"
)

// defaultTimeout bounds how long `term` waits for the window manager.
const defaultTimeout = 10 * time.Second

type termOptions struct {
	terminal string
	dryRun   bool
	timeout  time.Duration
}

// newTermCommand creates the `i3ctl term` command.
func newTermCommand(app *App, root *rootOptions) *cobra.Command {
	opts := termOptions{}

	cmd := &cobra.Command{
		Use:   "term [terminal]",
		Short: "Open a terminal in the current directory",
		Long: `Open a terminal emulator in the current working directory.

The optional argument selects the terminal for this invocation only:
alacritty, urxvt, gnome-terminal, xterm, or custom(.. your command here ..).
Without it the config file, I3CTL_CREATE_TERMINAL, or the default applies.

xterm has no working-directory option, so it always opens in i3's own
working directory.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTerminals,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.terminal = args[0]
			}
			return runTerm(cmd.Context(), app, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the i3 command instead of sending it")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "how long to wait for the window manager (0 waits forever)")

	return cmd
}

func runTerm(ctx context.Context, app *App, root *rootOptions, opts termOptions) error {
	logger := root.logger(app.stderr)

	res, err := app.resolve(ctx, root, config.CLIOptions{
		Subcommand: config.SubcommandTerm,
		Terminal:   opts.terminal,
	})
	if err != nil {
		return app.reportError(root, err)
	}
	logger.Info("resolved terminal", "terminal", res.Settings.CreateTerminal, "source", res.Source, "origin", res.Origin)

	var sink ipc.Sink
	if opts.dryRun {
		sink = ipc.DryRunSink{W: app.stdout}
	} else {
		sink = app.NewSink(app.LookupEnv)
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	if err := launch.Run(ctx, launch.Request{
		Cwd:      app.Cwd,
		Sink:     sink,
		Settings: res.Settings,
		Logger:   logger,
	}); err != nil {
		return app.reportError(root, err)
	}
	return nil
}

// completeTerminals offers the built-in terminal names for the first argument.
func completeTerminals(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return terminal.Names(), cobra.ShellCompDirectiveNoFileComp
}
