// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/i3ctl/i3ctl/pkg/platform"
)

const (
	// AppName is the application name.
	AppName = "i3ctl"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// EnvPrefix prefixes every environment variable read by Resolve.
	EnvPrefix = "I3CTL"

	// KeyCreateTerminal is the setting holding the terminal identifier.
	KeyCreateTerminal = "create_terminal"
)

// ConfigDir returns the i3ctl configuration directory: on macOS
// ~/Library/Application Support/i3ctl, elsewhere $XDG_CONFIG_HOME/i3ctl
// (defaulting to ~/.config/i3ctl).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	return configDirFor(runtime.GOOS, os.LookupEnv, os.UserHomeDir)
}

func configDirFor(goos string, lookupEnv func(string) (string, bool), homeDir func() (string, error)) (string, error) {
	var base string

	switch goos {
	case platform.Windows:
		return "", platform.ErrUnsupported
	case platform.Darwin:
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default: // Linux and BSDs
		if xdg, ok := lookupEnv("XDG_CONFIG_HOME"); ok && filepath.IsAbs(xdg) {
			base = xdg
			break
		}
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, AppName), nil
}

// EnvKey returns the environment variable consulted for a settings key,
// e.g. I3CTL_CREATE_TERMINAL for create_terminal.
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}
