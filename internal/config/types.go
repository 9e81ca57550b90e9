// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/i3ctl/i3ctl/internal/terminal"
)

const (
	// SourceDefault means the built-in default was used.
	SourceDefault Source = "default"
	// SourceFile means the value came from the config file.
	SourceFile Source = "file"
	// SourceEnv means the value came from an I3CTL_* environment variable.
	SourceEnv Source = "env"
	// SourceFlag means the value came from a command-line argument.
	SourceFlag Source = "flag"
)

const (
	// SubcommandNone is used when no subcommand carries settings.
	SubcommandNone Subcommand = iota
	// SubcommandTerm is `i3ctl term`, which may select a terminal.
	SubcommandTerm
	// SubcommandConfigLocation is `i3ctl config-location`.
	SubcommandConfigLocation
	// SubcommandConfigShow is `i3ctl config show`.
	SubcommandConfigShow
	// SubcommandConfigInit is `i3ctl config init`.
	SubcommandConfigInit
)

// ErrInvalidConfig is the sentinel error wrapped by ResolveError.
var ErrInvalidConfig = errors.New("invalid configuration")

type (
	// Source names the layer that supplied a setting.
	Source string

	// Subcommand identifies the CLI subcommand being run.
	Subcommand int

	// Settings holds the resolved configuration.
	Settings struct {
		// CreateTerminal is the terminal opened by `i3ctl term`.
		CreateTerminal terminal.Driver `json:"create_terminal" toml:"create_terminal" yaml:"create_terminal"`
	}

	// Resolution is the outcome of Resolve: the settings plus where they came from.
	Resolution struct {
		Settings Settings
		// Source is the layer that supplied create_terminal.
		Source Source
		// Origin describes the source in more detail: the config file path,
		// the environment variable name, or "command line".
		Origin string
		// ConfigFile is the config file that was read, or "" if none exists.
		ConfigFile string
	}

	// CLIOptions is the command-line layer. Only SubcommandTerm with a
	// non-empty Terminal overrides anything.
	CLIOptions struct {
		Subcommand Subcommand
		Terminal   string
	}

	// ResolveError is returned when a layer holds an unusable value or the
	// config file cannot be read. It wraps both ErrInvalidConfig and the cause.
	ResolveError struct {
		Source Source
		Origin string
		Err    error
	}
)

// Default returns the built-in settings.
func Default() Settings {
	return Settings{CreateTerminal: terminal.Default()}
}

// String returns the name of the source.
func (s Source) String() string { return string(s) }

// Error implements the error interface.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("invalid configuration from %s: %v", e.Origin, e.Err)
}

// Unwrap returns ErrInvalidConfig and the underlying cause, so both
// errors.Is(err, ErrInvalidConfig) and errors.As on the cause work.
func (e *ResolveError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}
