// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/i3ctl/i3ctl/internal/terminal"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// ResolveOptions are the explicit inputs to Resolve.
type ResolveOptions struct {
	// ConfigDir is the directory searched for the config file. When empty no
	// config file is read.
	ConfigDir string
	// Fs is the filesystem the config file is read from. Defaults to the OS filesystem.
	Fs afero.Fs
	// LookupEnv reads environment variables. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// CLI is the command-line layer.
	CLI CLIOptions
}

// Resolve layers defaults, the config file, the environment and the command
// line, in that order, and returns the resulting settings. Every layer's value
// is parsed as it is applied so an error names the layer it came from.
func Resolve(ctx context.Context, opts ResolveOptions) (*Resolution, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("resolve config canceled: %w", ctx.Err())
	default:
	}

	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}

	v := viper.New()
	res := &Resolution{Source: SourceDefault, Origin: "built-in default"}

	// (a) defaults
	v.SetDefault(KeyCreateTerminal, terminal.Default().String())

	// (b) config file
	if opts.ConfigDir != "" {
		path, f, err := findConfigFile(opts.Fs, opts.ConfigDir)
		if err != nil {
			return nil, &ResolveError{Source: SourceFile, Origin: opts.ConfigDir, Err: err}
		}
		if path != "" {
			values, err := readConfigFile(opts.Fs, path, f)
			if err != nil {
				return nil, &ResolveError{Source: SourceFile, Origin: path, Err: err}
			}
			if raw, ok := lookupKey(values, KeyCreateTerminal); ok {
				s, isString := raw.(string)
				if !isString {
					return nil, &ResolveError{
						Source: SourceFile,
						Origin: path,
						Err:    fmt.Errorf("%s must be a string, got %T", KeyCreateTerminal, raw),
					}
				}
				if _, err := terminal.Parse(s); err != nil {
					return nil, &ResolveError{Source: SourceFile, Origin: path, Err: err}
				}
				res.Source, res.Origin = SourceFile, path
			}
			if err := v.MergeConfigMap(values); err != nil {
				return nil, &ResolveError{Source: SourceFile, Origin: path, Err: err}
			}
			res.ConfigFile = path
		}
	}

	// (c) environment; empty values count as unset
	envKey := EnvKey(KeyCreateTerminal)
	if s, ok := opts.LookupEnv(envKey); ok && s != "" {
		if _, err := terminal.Parse(s); err != nil {
			return nil, &ResolveError{Source: SourceEnv, Origin: "environment variable " + envKey, Err: err}
		}
		if err := v.MergeConfigMap(map[string]any{KeyCreateTerminal: s}); err != nil {
			return nil, &ResolveError{Source: SourceEnv, Origin: "environment variable " + envKey, Err: err}
		}
		res.Source, res.Origin = SourceEnv, envKey
	}

	// (d) command line
	if err := applyCLI(v, opts.CLI, res); err != nil {
		return nil, err
	}

	driver, err := terminal.Parse(v.GetString(KeyCreateTerminal))
	if err != nil {
		return nil, &ResolveError{Source: res.Source, Origin: res.Origin, Err: err}
	}
	res.Settings = Settings{CreateTerminal: driver}

	return res, nil
}

// applyCLI overrides settings carried by the invoked subcommand. Only
// `term <terminal>` carries one; every other subcommand leaves v untouched.
func applyCLI(v *viper.Viper, cli CLIOptions, res *Resolution) error {
	switch cli.Subcommand {
	case SubcommandTerm:
		if cli.Terminal == "" {
			return nil
		}
		if _, err := terminal.Parse(cli.Terminal); err != nil {
			return &ResolveError{Source: SourceFlag, Origin: "command line", Err: err}
		}
		v.Set(KeyCreateTerminal, cli.Terminal)
		res.Source, res.Origin = SourceFlag, "command line"
	default:
		// nothing to merge
	}
	return nil
}

// lookupKey finds key in values ignoring case, matching Viper's key handling.
func lookupKey(values map[string]any, key string) (any, bool) {
	if v, ok := values[key]; ok {
		return v, true
	}
	for k, v := range values {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}
