// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const defaultConfigHeader = `# i3ctl configuration file.
#
# create_terminal selects the terminal opened by "i3ctl term" when no
# terminal argument is given: one of "alacritty", "urxvt", "gnome-terminal",
# "xterm", or "custom(.. your command here ..)".
#
# Every key can be overridden with an I3CTL_<KEY> environment variable,
# e.g. I3CTL_CREATE_TERMINAL=urxvt.

`

// EncodeTOML renders settings as a TOML document.
func EncodeTOML(s Settings) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault creates dir/config.toml holding the default settings. If any
// config file already exists in dir it is left alone and its path returned
// with created == false.
func WriteDefault(fsys afero.Fs, dir string) (path string, created bool, err error) {
	existing, _, err := findConfigFile(fsys, dir)
	if err != nil {
		return "", false, err
	}
	if existing != "" {
		return existing, false, nil
	}

	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	body, err := EncodeTOML(Default())
	if err != nil {
		return "", false, err
	}

	path = filepath.Join(dir, ConfigFileName+".toml")
	content := append([]byte(defaultConfigHeader), body...)
	if err := afero.WriteFile(fsys, path, content, 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}

	return path, true, nil
}
