// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/i3ctl/i3ctl/internal/config"
	"github.com/i3ctl/i3ctl/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigLocationCommand creates `i3ctl config-location`.
func newConfigLocationCommand(app *App, root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config-location",
		Short: "Print the configuration directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.configDir(root)
			if err != nil {
				return app.reportError(root, err)
			}
			fmt.Fprintln(app.stdout, dir)
			return nil
		},
	}
}

// newConfigCommand creates the `i3ctl config` command tree.
func newConfigCommand(app *App, root *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage i3ctl configuration",
		Long: `Manage i3ctl configuration.

The config file lives in the directory printed by 'i3ctl config-location':
  - Linux/BSD: $XDG_CONFIG_HOME/i3ctl or ~/.config/i3ctl
  - macOS: ~/Library/Application Support/i3ctl

It may be written as config.toml, config.json, config.yaml, config.yml,
config.cue, or a bare 'config' file in TOML syntax.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the resolved settings and where they came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app, root)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app, root)
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, root *rootOptions) error {
	res, err := app.resolve(ctx, root, config.CLIOptions{Subcommand: config.SubcommandConfigShow})
	if err != nil {
		return app.reportError(root, err)
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	out := app.stdout

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if res.ConfigFile != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), res.ConfigFile)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
		if dir, dirErr := app.configDir(root); dirErr == nil {
			for _, candidate := range config.CandidatePaths(dir) {
				fmt.Fprintf(out, "  %s\n", SubtitleStyle.Render("not found: "+candidate))
			}
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s %s\n",
		keyStyle.Render(config.KeyCreateTerminal),
		valueStyle.Render(res.Settings.CreateTerminal.String()),
		SubtitleStyle.Render(fmt.Sprintf("(%s: %s)", res.Source, res.Origin)),
	)

	body, err := config.EncodeTOML(res.Settings)
	if err != nil {
		return app.reportError(root, err)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, SubtitleStyle.Render("As TOML:"))
	fmt.Fprint(out, string(body))

	return nil
}

func initConfig(app *App, root *rootOptions) error {
	dir, err := app.configDir(root)
	if err != nil {
		return app.reportError(root, err)
	}

	path, created, err := config.WriteDefault(app.Fs, dir)
	if err != nil {
		return app.reportError(root, issue.NewErrorContext().
			WithOperation("create config file").
			WithResource(dir).
			WithSuggestion("Check that the directory is writable, or pass --config-dir").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError())
	}

	if !created {
		fmt.Fprintf(app.stdout, "%s Config file already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}
